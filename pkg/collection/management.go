package collection

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// StatusUpdate carries the optional fields of UpdateCollectionStatus.
// A nil Acquisition or empty Notes means "leave the stored value alone";
// earlier behavior of clobbering prior values on every call was a bug.
type StatusUpdate struct {
	IsHolo      bool
	Acquisition *cards.Acquisition
	Notes       string
}

// UpdateCollectionStatus updates the ownership record of one card, creating
// it if this is the first status-changing operation for the card.
// Returns false when the card number does not exist.
func (m *Manager) UpdateCollectionStatus(cardNumber string, isCollected bool, update StatusUpdate) bool {
	card, ok := m.cardWithStatus(cardNumber)
	if !ok {
		return false
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		status := card.CollectionStatus
		if status == nil {
			status = &models.CollectionStatus{CardID: card.ID}
		}

		status.IsCollected = isCollected
		status.IsHolo = update.IsHolo
		if update.Acquisition != nil {
			status.Acquisition = update.Acquisition
		}
		if update.Notes != "" {
			status.Notes = update.Notes
		}

		return tx.Save(status).Error
	})
	if err != nil {
		m.logger.Error("Failed to update collection status", err, map[string]interface{}{
			"card_number": cardNumber,
		})
		return false
	}
	return true
}

// BulkUpdateCollection applies a collected flag to a list of card numbers in
// one transaction. Cards entering the collection for the first time get a
// date-acquired stamp. If any number does not resolve, nothing is written.
func (m *Manager) BulkUpdateCollection(cardNumbers []string, isCollected bool) bool {
	unique := make([]string, 0, len(cardNumbers))
	seen := make(map[string]bool, len(cardNumbers))
	for _, n := range cardNumbers {
		if !seen[n] {
			seen[n] = true
			unique = append(unique, n)
		}
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var matched []models.Card
		if err := tx.Preload("CollectionStatus").
			Where("card_number IN ?", unique).
			Find(&matched).Error; err != nil {
			return err
		}
		if len(matched) != len(unique) {
			return fmt.Errorf("resolved %d of %d card numbers", len(matched), len(unique))
		}

		now := time.Now()
		for i := range matched {
			status := matched[i].CollectionStatus
			if status == nil {
				status = &models.CollectionStatus{CardID: matched[i].ID}
			}

			status.IsCollected = isCollected
			if isCollected && status.DateAcquired == nil {
				status.DateAcquired = &now
			}

			if err := tx.Save(status).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		m.logger.Error("Bulk collection update failed", err, map[string]interface{}{
			"card_count": len(unique),
		})
		return false
	}
	return true
}

// RecordTrade records both sides of a card trade: the acquired card becomes
// collected with acquisition TRADED, the traded-away card becomes
// not-collected, and both get a note naming the counterpart. The whole
// trade is atomic; an unresolvable card number writes nothing.
func (m *Manager) RecordTrade(acquiredNumber, tradedNumber string, tradeDate *time.Time) bool {
	when := time.Now()
	if tradeDate != nil {
		when = *tradeDate
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		acquired, err := findCardWithStatus(tx, acquiredNumber)
		if err != nil {
			return err
		}
		traded, err := findCardWithStatus(tx, tradedNumber)
		if err != nil {
			return err
		}

		acquiredStatus := acquired.CollectionStatus
		if acquiredStatus == nil {
			acquiredStatus = &models.CollectionStatus{CardID: acquired.ID}
		}
		tradedStatus := traded.CollectionStatus
		if tradedStatus == nil {
			tradedStatus = &models.CollectionStatus{CardID: traded.ID}
		}

		method := cards.AcquisitionTraded
		acquiredStatus.IsCollected = true
		acquiredStatus.Acquisition = &method
		acquiredStatus.DateAcquired = &when
		acquiredStatus.Notes = appendNote(acquiredStatus.Notes, when,
			fmt.Sprintf("Acquired in trade for %s (%s)", traded.Name, traded.CardNumber))

		tradedStatus.IsCollected = false
		tradedStatus.Notes = appendNote(tradedStatus.Notes, when,
			fmt.Sprintf("Traded for %s (%s)", acquired.Name, acquired.CardNumber))

		if err := tx.Save(acquiredStatus).Error; err != nil {
			return err
		}
		return tx.Save(tradedStatus).Error
	})
	if err != nil {
		m.logger.Error("Failed to record trade", err, map[string]interface{}{
			"acquired": acquiredNumber,
			"traded":   tradedNumber,
		})
		return false
	}
	return true
}

// AddCardNote appends a timestamped note line to a card's ownership record,
// creating the record if absent. Returns false for an unknown card number.
func (m *Manager) AddCardNote(cardNumber, note string) bool {
	card, ok := m.cardWithStatus(cardNumber)
	if !ok {
		return false
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		status := card.CollectionStatus
		if status == nil {
			status = &models.CollectionStatus{CardID: card.ID}
		}

		status.Notes = appendNote(status.Notes, time.Now(), note)
		return tx.Save(status).Error
	})
	if err != nil {
		m.logger.Error("Failed to add note", err, map[string]interface{}{
			"card_number": cardNumber,
		})
		return false
	}
	return true
}

// UpdateCardCondition toggles the misprint flag on a card's ownership
// record, creating the record if absent. Returns false for an unknown
// card number.
func (m *Manager) UpdateCardCondition(cardNumber string, isMisprint bool) bool {
	card, ok := m.cardWithStatus(cardNumber)
	if !ok {
		return false
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		status := card.CollectionStatus
		if status == nil {
			status = &models.CollectionStatus{CardID: card.ID}
		}

		status.IsMisprint = isMisprint
		return tx.Save(status).Error
	})
	if err != nil {
		m.logger.Error("Failed to update card condition", err, map[string]interface{}{
			"card_number": cardNumber,
		})
		return false
	}
	return true
}

// cardWithStatus resolves a card number with its ownership record, logging
// storage failures. The bool distinguishes "not found or failed" for the
// mutation paths, which only report success or failure.
func (m *Manager) cardWithStatus(cardNumber string) (*models.Card, bool) {
	card, err := findCardWithStatus(m.db, cardNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		m.logger.Error("Card lookup failed", err, map[string]interface{}{
			"card_number": cardNumber,
		})
		return nil, false
	}
	return card, true
}

func findCardWithStatus(tx *gorm.DB, cardNumber string) (*models.Card, error) {
	var card models.Card
	err := tx.Preload("CollectionStatus").First(&card, "card_number = ?", cardNumber).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// appendNote keeps notes append-only: every line carries a timestamp prefix
func appendNote(existing string, when time.Time, note string) string {
	line := fmt.Sprintf("[%s] %s", when.Format(noteTimestampLayout), note)
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}
