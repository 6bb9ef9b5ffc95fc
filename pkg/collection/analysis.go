package collection

import (
	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// CollectionStats summarizes collection progress against the catalog
type CollectionStats struct {
	TotalCollected       int64
	TotalCards           int64
	CompletionPercentage float64
	CollectedByType      map[cards.CardType]int64
	TotalHolos           int64
	TotalSecretRares     int64
}

// GetCollectionStats computes collection progress statistics: overall
// completion, per-type counts, and holo / secret-rare tallies among the
// collected cards.
func (m *Manager) GetCollectionStats() (*CollectionStats, error) {
	stats := &CollectionStats{
		CollectedByType: make(map[cards.CardType]int64),
	}

	if err := m.db.Model(&models.Card{}).Count(&stats.TotalCards).Error; err != nil {
		return nil, err
	}

	collected := m.db.Model(&models.Card{}).
		Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Where("collection_statuses.is_collected = ?", true)
	if err := collected.Count(&stats.TotalCollected).Error; err != nil {
		return nil, err
	}

	for _, cardType := range cards.CardTypes() {
		var count int64
		err := m.db.Model(&models.Card{}).
			Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
			Where("collection_statuses.is_collected = ? AND cards.card_type = ?", true, cardType).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats.CollectedByType[cardType] = count
	}

	err := m.db.Model(&models.Card{}).
		Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Where("collection_statuses.is_collected = ? AND collection_statuses.is_holo = ?", true, true).
		Count(&stats.TotalHolos).Error
	if err != nil {
		return nil, err
	}

	err = m.db.Model(&models.Card{}).
		Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Joins("JOIN support_details ON support_details.card_id = cards.id").
		Where("collection_statuses.is_collected = ? AND support_details.is_secret_rare = ?", true, true).
		Count(&stats.TotalSecretRares).Error
	if err != nil {
		return nil, err
	}

	// Guard the empty catalog; completion of nothing is zero, not a division error
	if stats.TotalCards > 0 {
		stats.CompletionPercentage = float64(stats.TotalCollected) / float64(stats.TotalCards) * 100
	}

	return stats, nil
}

// GetMissingCards returns every catalog card not marked as collected,
// including cards that have no ownership record at all.
func (m *Manager) GetMissingCards() ([]models.Card, error) {
	var result []models.Card
	err := withDetails(m.db).
		Joins("LEFT JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Where("collection_statuses.is_collected IS NULL OR collection_statuses.is_collected = ?", false).
		Order("cards.card_number").
		Find(&result).Error
	return result, err
}

// GetCompleteSets returns the character names whose every catalog variant
// (box topper included) is marked collected.
func (m *Manager) GetCompleteSets() ([]string, error) {
	var names []string
	err := m.db.Model(&models.Card{}).
		Joins("JOIN character_details ON character_details.card_id = cards.id").
		Joins("LEFT JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Group("cards.name").
		Having("COUNT(*) = SUM(CASE WHEN collection_statuses.is_collected THEN 1 ELSE 0 END)").
		Order("cards.name").
		Pluck("cards.name", &names).Error
	return names, err
}

// GetRecentAcquisitions returns collected cards ordered by acquisition date
// descending, truncated to limit (default 10 when limit is not positive).
func (m *Manager) GetRecentAcquisitions(limit int) ([]models.Card, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var result []models.Card
	err := withDetails(m.db).
		Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Where("collection_statuses.is_collected = ?", true).
		Order("collection_statuses.date_acquired DESC").
		Limit(limit).
		Find(&result).Error
	return result, err
}
