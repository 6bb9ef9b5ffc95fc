package cards

// ElementalCard covers the guardian and shield variants. The catalog carries
// exactly one guardian and one shield per element; that cross-catalog rule is
// checked by the integrity report, not here.
type ElementalCard struct {
	BaseCard

	Element Element
}

// NewGuardianCard validates and returns a guardian card
func NewGuardianCard(card ElementalCard) (*ElementalCard, error) {
	card.CardType = TypeGuardian
	if !card.Element.Valid() {
		return nil, validationError(card.CardNumber, "guardian cards must have an element")
	}
	return &card, nil
}

// NewShieldCard validates and returns a shield card
func NewShieldCard(card ElementalCard) (*ElementalCard, error) {
	card.CardType = TypeShield
	if !card.Element.Valid() {
		return nil, validationError(card.CardNumber, "shield cards must have an element")
	}
	return &card, nil
}
