package cards

// CharacterCard is a character variant of a catalog entry.
//
// Age, height and weight are stored as strings to match the printed card
// text exactly. Box toppers carry no gameplay attributes at all; every
// other character variant must carry all of them.
type CharacterCard struct {
	BaseCard

	PowerLevel        *int
	Element           *Element
	Age               *string
	Height            *string
	Weight            *string
	ElementalStrength *Element
	ElementalWeakness *Element

	IsBoxTopper bool
	IsMascot    bool
}

// NewCharacterCard validates and returns a character card. The zero return
// on error is deliberate: an invalid card is never partially constructed.
func NewCharacterCard(card CharacterCard) (*CharacterCard, error) {
	card.CardType = TypeCharacter
	if err := card.Validate(); err != nil {
		return nil, err
	}
	return &card, nil
}

// Validate checks the character-specific invariants
func (c *CharacterCard) Validate() error {
	if c.IsBoxTopper {
		if c.PowerLevel != nil || c.Age != nil || c.Height != nil || c.Weight != nil ||
			c.ElementalStrength != nil || c.ElementalWeakness != nil {
			return validationError(c.CardNumber, "box topper cards cannot have gameplay attributes")
		}
		return nil
	}

	if c.PowerLevel == nil || c.Element == nil || c.Age == nil || c.Height == nil ||
		c.Weight == nil || c.ElementalStrength == nil || c.ElementalWeakness == nil {
		return validationError(c.CardNumber, "regular character cards must have all gameplay attributes")
	}

	if c.IsMascot {
		if *c.PowerLevel != 1 {
			return validationError(c.CardNumber, "mascot cards must have power level 1")
		}
	} else if *c.PowerLevel != 8 && *c.PowerLevel != 9 && *c.PowerLevel != 10 {
		return validationError(c.CardNumber, "regular character cards must have power level 8, 9, or 10")
	}

	// The level 10 variant is only ever printed as a holo
	if *c.PowerLevel == 10 && !c.IsHolo {
		return validationError(c.CardNumber, "level 10 cards must be holographic")
	}

	return nil
}

// IsPlayable reports whether the card can be used in gameplay.
// Box toppers are collectible-only.
func (c CharacterCard) IsPlayable() bool {
	return !c.IsBoxTopper
}
