package collection

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// CardFilter is the multi-criteria filter of GetFilteredCards. Every field
// is optional; nil or empty means "no constraint". Filters combine with AND;
// filters that only make sense for one card type (power level, secret rare,
// box topper, mascot) pass every card of the other types through untouched.
type CardFilter struct {
	CardTypes    []cards.CardType
	Elements     []cards.Element
	PowerLevels  []int
	IsHolo       *bool
	IsCollected  *bool
	IsSecretRare *bool
	IsBoxTopper  *bool
	IsMascot     *bool
}

// scopes folds the filter into an ordered list of independent predicates.
// Each scope is a self-contained WHERE fragment, so combinations stay a
// plain AND-fold instead of nested conditionals.
func (f CardFilter) scopes() []func(*gorm.DB) *gorm.DB {
	var list []func(*gorm.DB) *gorm.DB

	if len(f.CardTypes) > 0 {
		types := f.CardTypes
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("cards.card_type IN ?", types)
		})
	}

	if len(f.Elements) > 0 {
		elements := f.Elements
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(tx.Session(&gorm.Session{NewDB: true}).
				Where("cards.card_type = ? AND character_details.element IN ?", cards.TypeCharacter, elements).
				Or("cards.card_type IN ? AND elemental_details.element IN ?",
					[]cards.CardType{cards.TypeGuardian, cards.TypeShield}, elements))
		})
	}

	if len(f.PowerLevels) > 0 {
		levels := f.PowerLevels
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(tx.Session(&gorm.Session{NewDB: true}).
				Where("character_details.power_level IN ?", levels).
				Or("cards.card_type <> ?", cards.TypeCharacter))
		})
	}

	if f.IsCollected != nil {
		want := *f.IsCollected
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("collection_statuses.is_collected = ?", want)
		})
	}

	if f.IsHolo != nil {
		want := *f.IsHolo
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where("collection_statuses.is_holo = ?", want)
		})
	}

	if f.IsSecretRare != nil {
		want := *f.IsSecretRare
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(tx.Session(&gorm.Session{NewDB: true}).
				Where("cards.card_type = ? AND support_details.is_secret_rare = ?", cards.TypeSupport, want).
				Or("cards.card_type <> ?", cards.TypeSupport))
		})
	}

	if f.IsBoxTopper != nil {
		want := *f.IsBoxTopper
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(tx.Session(&gorm.Session{NewDB: true}).
				Where("cards.card_type = ? AND character_details.is_box_topper = ?", cards.TypeCharacter, want).
				Or("cards.card_type <> ?", cards.TypeCharacter))
		})
	}

	if f.IsMascot != nil {
		want := *f.IsMascot
		list = append(list, func(tx *gorm.DB) *gorm.DB {
			return tx.Where(tx.Session(&gorm.Session{NewDB: true}).
				Where("cards.card_type = ? AND character_details.is_mascot = ?", cards.TypeCharacter, want).
				Or("cards.card_type <> ?", cards.TypeCharacter))
		})
	}

	return list
}

// filterBase joins every extension table once so the filter scopes can
// reference them freely. The joins are all 1:1, so no row duplication.
func (m *Manager) filterBase() *gorm.DB {
	return withDetails(m.db).Model(&models.Card{}).
		Joins("LEFT JOIN character_details ON character_details.card_id = cards.id").
		Joins("LEFT JOIN support_details ON support_details.card_id = cards.id").
		Joins("LEFT JOIN elemental_details ON elemental_details.card_id = cards.id").
		Joins("LEFT JOIN collection_statuses ON collection_statuses.card_id = cards.id")
}

// GetFilteredCards returns the cards matching every criterion of the filter
func (m *Manager) GetFilteredCards(filter CardFilter) ([]models.Card, error) {
	var result []models.Card
	err := m.filterBase().
		Scopes(filter.scopes()...).
		Order("cards.card_number").
		Find(&result).Error
	return result, err
}

// SearchCards searches cards by name with optional filters. Name matching
// is case-insensitive and partial. An empty query matches every card.
func (m *Manager) SearchCards(query string, cardType *cards.CardType, element *cards.Element, collectedOnly bool) ([]models.Card, error) {
	filter := CardFilter{}
	if cardType != nil {
		filter.CardTypes = []cards.CardType{*cardType}
	}
	if element != nil {
		filter.Elements = []cards.Element{*element}
	}
	if collectedOnly {
		collected := true
		filter.IsCollected = &collected
	}

	var result []models.Card
	err := m.filterBase().
		Where("LOWER(cards.name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Scopes(filter.scopes()...).
		Order("cards.card_number").
		Find(&result).Error
	return result, err
}
