package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

func TestGetCollectionStats_EmptyCatalog(t *testing.T) {
	m := newTestManager(t)

	stats, err := m.GetCollectionStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCards)
	assert.Zero(t, stats.TotalCollected)
	assert.Zero(t, stats.CompletionPercentage)
}

func TestGetCollectionStats(t *testing.T) {
	m := newSeededManager(t)

	require.True(t, m.BulkUpdateCollection([]string{"CH-001A", "CH-002A", "SP-001A", "GD-001", "PR-0001"}, true))
	require.True(t, m.UpdateCollectionStatus("CH-003A", true, StatusUpdate{IsHolo: true}))

	stats, err := m.GetCollectionStats()
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.TotalCards)
	assert.Equal(t, int64(6), stats.TotalCollected)
	assert.InDelta(t, 60.0, stats.CompletionPercentage, 0.001)
	assert.Equal(t, int64(3), stats.CollectedByType[cards.TypeCharacter])
	assert.Equal(t, int64(1), stats.CollectedByType[cards.TypeSupport])
	assert.Equal(t, int64(1), stats.CollectedByType[cards.TypeGuardian])
	assert.Equal(t, int64(0), stats.CollectedByType[cards.TypeShield])
	assert.Equal(t, int64(1), stats.CollectedByType[cards.TypePromo])
	assert.Equal(t, int64(1), stats.TotalHolos)
	assert.Equal(t, int64(1), stats.TotalSecretRares)
}

func TestGetMissingCards(t *testing.T) {
	m := newSeededManager(t)

	missing, err := m.GetMissingCards()
	require.NoError(t, err)
	assert.Len(t, missing, 10)

	require.True(t, m.BulkUpdateCollection([]string{"CH-001A"}, true))
	// An uncollected status row still counts as missing
	require.True(t, m.UpdateCollectionStatus("SH-001", false, StatusUpdate{}))

	missing, err = m.GetMissingCards()
	require.NoError(t, err)
	assert.Len(t, missing, 9)
	assert.NotContains(t, cardNumbers(missing), "CH-001A")
	assert.Contains(t, cardNumbers(missing), "SH-001")
}

func TestGetCompleteSets(t *testing.T) {
	m := newSeededManager(t)

	sets, err := m.GetCompleteSets()
	require.NoError(t, err)
	assert.Empty(t, sets)

	// Kaida has a single variant, so collecting it completes the set
	require.True(t, m.BulkUpdateCollection([]string{"CH-005A"}, true))
	// Fream stays incomplete without the box topper
	require.True(t, m.BulkUpdateCollection([]string{"CH-001A", "CH-002A", "CH-003A"}, true))

	sets, err = m.GetCompleteSets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kaida"}, sets)

	require.True(t, m.BulkUpdateCollection([]string{"CH-004A"}, true))
	sets, err = m.GetCompleteSets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Fream", "Kaida"}, sets)
}

func TestGetRecentAcquisitions(t *testing.T) {
	m := newSeededManager(t)

	numbers := []string{"CH-001A", "CH-002A", "SP-001A"}
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, number := range numbers {
		require.True(t, m.BulkUpdateCollection([]string{number}, true))
		when := base.AddDate(0, 0, i)
		card, err := m.GetCardByNumber(number)
		require.NoError(t, err)
		require.NoError(t, m.db.Model(&models.CollectionStatus{}).
			Where("card_id = ?", card.ID).
			Update("date_acquired", when).Error)
	}

	recent, err := m.GetRecentAcquisitions(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"SP-001A", "CH-002A"}, cardNumbers(recent))

	// A non-positive limit falls back to the default
	all, err := m.GetRecentAcquisitions(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
