package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func strPtr(s string) *string    { return &s }
func elemPtr(e Element) *Element { return &e }

// fullCharacter returns a character card with every gameplay attribute set
func fullCharacter(level int, holo bool) CharacterCard {
	return CharacterCard{
		BaseCard: BaseCard{
			Name:        "Fream",
			CardNumber:  "CH-001A",
			Edition:     "First",
			Illustrator: "A. Painter",
			IsHolo:      holo,
		},
		PowerLevel:        intPtr(level),
		Element:           elemPtr(ElementFire),
		Age:               strPtr("17"),
		Height:            strPtr("5'6\""),
		Weight:            strPtr("130 lbs"),
		ElementalStrength: elemPtr(ElementGrass),
		ElementalWeakness: elemPtr(ElementWater),
	}
}

func TestNewCharacterCard_ValidLevels(t *testing.T) {
	for _, level := range []int{8, 9} {
		card, err := NewCharacterCard(fullCharacter(level, false))
		require.NoError(t, err)
		assert.Equal(t, TypeCharacter, card.CardType)
		assert.True(t, card.IsPlayable())
	}
}

func TestNewCharacterCard_RejectsOutOfRangePowerLevel(t *testing.T) {
	for _, level := range []int{0, 1, 7, 11} {
		_, err := NewCharacterCard(fullCharacter(level, false))
		require.Error(t, err, "power level %d should be rejected", level)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "CH-001A", vErr.CardNumber)
	}
}

func TestNewCharacterCard_LevelTenMustBeHolo(t *testing.T) {
	_, err := NewCharacterCard(fullCharacter(10, false))
	require.Error(t, err)

	card, err := NewCharacterCard(fullCharacter(10, true))
	require.NoError(t, err)
	assert.True(t, card.IsHolo)
}

func TestNewCharacterCard_MascotMustBeLevelOne(t *testing.T) {
	mascot := fullCharacter(1, false)
	mascot.IsMascot = true
	_, err := NewCharacterCard(mascot)
	require.NoError(t, err)

	mascot.PowerLevel = intPtr(8)
	_, err = NewCharacterCard(mascot)
	require.Error(t, err)
}

func TestNewCharacterCard_BoxTopperCarriesNoGameplayAttributes(t *testing.T) {
	topper := CharacterCard{
		BaseCard:    BaseCard{Name: "Fream", CardNumber: "CH-004A"},
		IsBoxTopper: true,
	}
	card, err := NewCharacterCard(topper)
	require.NoError(t, err)
	assert.False(t, card.IsPlayable())

	topper.PowerLevel = intPtr(8)
	_, err = NewCharacterCard(topper)
	require.Error(t, err)
}

func TestNewCharacterCard_RegularNeedsAllAttributes(t *testing.T) {
	partial := fullCharacter(8, false)
	partial.Height = nil
	_, err := NewCharacterCard(partial)
	require.Error(t, err)
}

func TestNewGuardianCard_RequiresValidElement(t *testing.T) {
	card, err := NewGuardianCard(ElementalCard{
		BaseCard: BaseCard{Name: "Fire Guardian", CardNumber: "GD-001"},
		Element:  ElementFire,
	})
	require.NoError(t, err)
	assert.Equal(t, TypeGuardian, card.CardType)

	_, err = NewGuardianCard(ElementalCard{
		BaseCard: BaseCard{Name: "Bad Guardian", CardNumber: "GD-002"},
		Element:  Element("LAVA"),
	})
	require.Error(t, err)
}

func TestNewShieldCard_RequiresValidElement(t *testing.T) {
	card, err := NewShieldCard(ElementalCard{
		BaseCard: BaseCard{Name: "Water Shield", CardNumber: "SH-002"},
		Element:  ElementWater,
	})
	require.NoError(t, err)
	assert.Equal(t, TypeShield, card.CardType)

	_, err = NewShieldCard(ElementalCard{
		BaseCard: BaseCard{Name: "Bad Shield", CardNumber: "SH-003"},
	})
	require.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := validationError("CH-001A", "something is off")
	assert.Equal(t, "invalid card CH-001A: something is off", err.Error())

	anonymous := validationError("", "no number yet")
	assert.Equal(t, "invalid card: no number yet", anonymous.Error())
}
