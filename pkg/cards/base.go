package cards

import "fmt"

// Element represents the elemental affinity printed on a card
type Element string

const (
	ElementFire     Element = "FIRE"
	ElementWater    Element = "WATER"
	ElementGrass    Element = "GRASS"
	ElementElectric Element = "ELECTRIC"
	ElementPlatinum Element = "PLATINUM"
)

// Elements returns every element in catalog order
func Elements() []Element {
	return []Element{ElementFire, ElementWater, ElementGrass, ElementElectric, ElementPlatinum}
}

// Valid reports whether the element is one of the printed affinities
func (e Element) Valid() bool {
	switch e {
	case ElementFire, ElementWater, ElementGrass, ElementElectric, ElementPlatinum:
		return true
	}
	return false
}

// CardType represents the card taxonomy
type CardType string

const (
	TypeCharacter CardType = "CHARACTER"
	TypeSupport   CardType = "SUPPORT"
	TypeGuardian  CardType = "GUARDIAN"
	TypeShield    CardType = "SHIELD"
	TypePromo     CardType = "PROMO"
)

// CardTypes returns every card type in catalog order
func CardTypes() []CardType {
	return []CardType{TypeCharacter, TypeSupport, TypeGuardian, TypeShield, TypePromo}
}

// Valid reports whether the card type is part of the taxonomy
func (t CardType) Valid() bool {
	switch t {
	case TypeCharacter, TypeSupport, TypeGuardian, TypeShield, TypePromo:
		return true
	}
	return false
}

// Acquisition represents how a card entered the collection
type Acquisition string

const (
	AcquisitionPulled Acquisition = "PULLED"
	AcquisitionTraded Acquisition = "TRADED"
	AcquisitionGifted Acquisition = "GIFTED"
)

// Valid reports whether the acquisition method is known
func (a Acquisition) Valid() bool {
	switch a {
	case AcquisitionPulled, AcquisitionTraded, AcquisitionGifted:
		return true
	}
	return false
}

// ValidationError is returned when a card fails its construction-time
// invariants. Invalid cards are never partially constructed or stored.
type ValidationError struct {
	CardNumber string
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.CardNumber == "" {
		return fmt.Sprintf("invalid card: %s", e.Reason)
	}
	return fmt.Sprintf("invalid card %s: %s", e.CardNumber, e.Reason)
}

func validationError(cardNumber, reason string) *ValidationError {
	return &ValidationError{CardNumber: cardNumber, Reason: reason}
}

// BaseCard holds the attributes common to every physical card in the catalog
type BaseCard struct {
	Name        string
	CardType    CardType
	Talent      string
	Edition     string
	CardNumber  string
	Illustrator string
	ImagePath   string

	// Print variant flags
	IsHolo     bool
	IsPromo    bool
	IsMisprint bool
}

// IsPlayable reports whether the card can be used in gameplay.
// Only box-topper character variants override this.
func (c BaseCard) IsPlayable() bool {
	return true
}
