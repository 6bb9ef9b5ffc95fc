package collection

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// GetCardByNumber retrieves a single card by its unique card number.
// Returns (nil, nil) when no card carries that number.
func (m *Manager) GetCardByNumber(cardNumber string) (*models.Card, error) {
	var card models.Card
	err := withDetails(m.db).First(&card, "card_number = ?", cardNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetCardsByType retrieves all cards of the given type
func (m *Manager) GetCardsByType(cardType cards.CardType) ([]models.Card, error) {
	var result []models.Card
	err := withDetails(m.db).
		Where("card_type = ?", cardType).
		Order("card_number").
		Find(&result).Error
	return result, err
}

// GetCardsByElement retrieves all cards of a specific element. Character
// cards are matched through their character details, guardian and shield
// cards through their elemental details. Support cards carry no element and
// are excluded unless includeSupport is set, in which case all of them are
// returned alongside the elemental matches.
func (m *Manager) GetCardsByElement(element cards.Element, includeSupport bool) ([]models.Card, error) {
	elementMatches := m.db.
		Where("cards.card_type = ? AND character_details.element = ?", cards.TypeCharacter, element).
		Or("cards.card_type IN ? AND elemental_details.element = ?",
			[]cards.CardType{cards.TypeGuardian, cards.TypeShield}, element)
	if includeSupport {
		elementMatches = elementMatches.Or("cards.card_type = ?", cards.TypeSupport)
	}

	var result []models.Card
	err := withDetails(m.db).
		Joins("LEFT JOIN character_details ON character_details.card_id = cards.id").
		Joins("LEFT JOIN elemental_details ON elemental_details.card_id = cards.id").
		Where(elementMatches).
		Order("cards.card_number").
		Find(&result).Error
	return result, err
}

// GetCardsByIllustrator retrieves all cards by a specific illustrator.
// With exactMatch false, performs case-insensitive partial matching.
func (m *Manager) GetCardsByIllustrator(illustrator string, exactMatch bool) ([]models.Card, error) {
	tx := withDetails(m.db)
	if exactMatch {
		tx = tx.Where("illustrator = ?", illustrator)
	} else {
		tx = tx.Where("LOWER(illustrator) LIKE ?", "%"+strings.ToLower(illustrator)+"%")
	}

	var result []models.Card
	err := tx.Order("card_number").Find(&result).Error
	return result, err
}

// GetCardsByCharacterName retrieves all cards matching a character name.
// With exactMatch false, performs case-insensitive partial matching.
func (m *Manager) GetCardsByCharacterName(name string, exactMatch bool) ([]models.Card, error) {
	tx := withDetails(m.db)
	if exactMatch {
		tx = tx.Where("name = ?", name)
	} else {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var result []models.Card
	err := tx.Order("card_number").Find(&result).Error
	return result, err
}

// GetCharacterVariants retrieves every character-card variant of one
// character (mascot, level 8/9/10), optionally excluding the box topper.
func (m *Manager) GetCharacterVariants(characterName string, includeBoxTopper bool) ([]models.Card, error) {
	tx := withDetails(m.db).
		Joins("JOIN character_details ON character_details.card_id = cards.id").
		Where("cards.name = ? AND cards.card_type = ?", characterName, cards.TypeCharacter)
	if !includeBoxTopper {
		tx = tx.Where("character_details.is_box_topper = ?", false)
	}

	var result []models.Card
	err := tx.Order("cards.card_number").Find(&result).Error
	return result, err
}

// GetCardsByPowerLevel retrieves character cards of a specific power level.
// Other card types carry no power level and are excluded unless
// includeNonCharacter widens the result.
func (m *Manager) GetCardsByPowerLevel(powerLevel int, includeNonCharacter bool) ([]models.Card, error) {
	tx := withDetails(m.db).
		Joins("LEFT JOIN character_details ON character_details.card_id = cards.id")

	characterMatch := m.db.Where(
		"cards.card_type = ? AND character_details.power_level = ?", cards.TypeCharacter, powerLevel)
	if includeNonCharacter {
		tx = tx.Where(characterMatch.Or("cards.card_type <> ?", cards.TypeCharacter))
	} else {
		tx = tx.Where(characterMatch)
	}

	var result []models.Card
	err := tx.Order("cards.card_number").Find(&result).Error
	return result, err
}

// GetCollectedCards returns all cards marked as collected
func (m *Manager) GetCollectedCards() ([]models.Card, error) {
	var result []models.Card
	err := withDetails(m.db).
		Joins("JOIN collection_statuses ON collection_statuses.card_id = cards.id").
		Where("collection_statuses.is_collected = ?", true).
		Order("cards.card_number").
		Find(&result).Error
	return result, err
}
