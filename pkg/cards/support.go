package cards

// SupportCard is a support variant of a catalog entry
type SupportCard struct {
	BaseCard

	IsSecretRare bool
}

// NewSupportCard validates and returns a support card
func NewSupportCard(card SupportCard) (*SupportCard, error) {
	card.CardType = TypeSupport
	return &card, nil
}
