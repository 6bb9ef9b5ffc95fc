package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablewing/cardkeep/pkg/cards"
)

func TestGetCardByNumber(t *testing.T) {
	m := newSeededManager(t)

	card, err := m.GetCardByNumber("CH-001A")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, "Fream", card.Name)
	require.NotNil(t, card.CharacterDetails)
	assert.Equal(t, 8, *card.CharacterDetails.PowerLevel)
}

func TestGetCardByNumber_AbsenceIsNotAnError(t *testing.T) {
	m := newSeededManager(t)

	card, err := m.GetCardByNumber("CH-999Z")
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestGetCardsByType(t *testing.T) {
	m := newSeededManager(t)

	characters, err := m.GetCardsByType(cards.TypeCharacter)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-002A", "CH-003A", "CH-004A", "CH-005A"}, cardNumbers(characters))

	promos, err := m.GetCardsByType(cards.TypePromo)
	require.NoError(t, err)
	assert.Equal(t, []string{"PR-0001"}, cardNumbers(promos))
}

func TestGetCardsByElement(t *testing.T) {
	m := newSeededManager(t)

	fire, err := m.GetCardsByElement(cards.ElementFire, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-002A", "CH-003A", "GD-001", "SH-001"}, cardNumbers(fire))

	// Supports carry no element; includeSupport widens the result with all of them
	withSupport, err := m.GetCardsByElement(cards.ElementFire, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-002A", "CH-003A", "GD-001", "SH-001", "SP-001A", "SP-002A"},
		cardNumbers(withSupport))
}

func TestGetCardsByCharacterName(t *testing.T) {
	m := newSeededManager(t)

	exact, err := m.GetCardsByCharacterName("Fream", true)
	require.NoError(t, err)
	assert.Len(t, exact, 4)

	partial, err := m.GetCardsByCharacterName("rea", false)
	require.NoError(t, err)
	assert.Len(t, partial, 5) // Fream variants plus Convention Fream

	caseInsensitive, err := m.GetCardsByCharacterName("FREAM", false)
	require.NoError(t, err)
	assert.Len(t, caseInsensitive, 5)

	none, err := m.GetCardsByCharacterName("FREAM", true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCardsByIllustrator(t *testing.T) {
	m := newSeededManager(t)

	exact, err := m.GetCardsByIllustrator("A. Painter", true)
	require.NoError(t, err)
	assert.Len(t, exact, 4)

	partial, err := m.GetCardsByIllustrator("painter", false)
	require.NoError(t, err)
	assert.Len(t, partial, 4)

	none, err := m.GetCardsByIllustrator("painter", true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCharacterVariants(t *testing.T) {
	m := newSeededManager(t)

	playable, err := m.GetCharacterVariants("Fream", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-002A", "CH-003A"}, cardNumbers(playable))

	all, err := m.GetCharacterVariants("Fream", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-002A", "CH-003A", "CH-004A"}, cardNumbers(all))
}

func TestGetCardsByPowerLevel(t *testing.T) {
	m := newSeededManager(t)

	eights, err := m.GetCardsByPowerLevel(8, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "CH-005A"}, cardNumbers(eights))

	widened, err := m.GetCardsByPowerLevel(8, true)
	require.NoError(t, err)
	// Every non-character card rides along
	assert.Equal(t, []string{"CH-001A", "CH-005A", "GD-001", "PR-0001", "SH-001", "SP-001A", "SP-002A"},
		cardNumbers(widened))
}

func TestGetCollectedCards(t *testing.T) {
	m := newSeededManager(t)

	collected, err := m.GetCollectedCards()
	require.NoError(t, err)
	assert.Empty(t, collected)

	require.True(t, m.BulkUpdateCollection([]string{"CH-001A", "GD-001"}, true))

	collected, err = m.GetCollectedCards()
	require.NoError(t, err)
	assert.Equal(t, []string{"CH-001A", "GD-001"}, cardNumbers(collected))
}
