package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/cards"
	"github.com/sablewing/cardkeep/pkg/database/models"
)

// MergeStrategy controls how an import treats already-collected cards
type MergeStrategy string

const (
	// MergeSkip leaves already-collected cards untouched
	MergeSkip MergeStrategy = "skip"
	// MergeUpdate overwrites fields on already-collected cards
	MergeUpdate MergeStrategy = "update"
	// MergeReplace clears every ownership record before importing
	MergeReplace MergeStrategy = "replace"
)

// ExportCard is the wire shape of one collected card in an export document
type ExportCard struct {
	CardNumber   string  `json:"card_number"`
	Name         string  `json:"name"`
	DateAcquired *string `json:"date_acquired"`
	IsHolo       bool    `json:"is_holo"`
	IsMisprint   bool    `json:"is_misprint"`
	Acquisition  *string `json:"acquisition"`
	Notes        string  `json:"notes,omitempty"`
}

// exportDocument is the top-level export JSON shape. Cards is a pointer so
// an import can tell a missing "cards" key from an empty collection.
type exportDocument struct {
	ExportedAt string        `json:"exported_at"`
	Cards      *[]ExportCard `json:"cards"`
}

// ImportStats counts the outcomes of an import
type ImportStats struct {
	Imported int
	Skipped  int
	Failed   int
	Updated  int
}

// ExportCollection writes all collected cards to a JSON document with a
// top-level export timestamp. Notes are included only when requested.
func (m *Manager) ExportCollection(exportPath string, includeNotes bool) bool {
	collected, err := m.GetCollectedCards()
	if err != nil {
		m.logger.Error("Export failed", err, map[string]interface{}{"path": exportPath})
		return false
	}

	exportCards := make([]ExportCard, 0, len(collected))
	for i := range collected {
		card := &collected[i]
		status := card.CollectionStatus

		entry := ExportCard{
			CardNumber: card.CardNumber,
			Name:       card.Name,
			IsHolo:     status.IsHolo,
			IsMisprint: status.IsMisprint,
		}
		if status.DateAcquired != nil {
			formatted := status.DateAcquired.Format(time.RFC3339)
			entry.DateAcquired = &formatted
		}
		if status.Acquisition != nil {
			name := string(*status.Acquisition)
			entry.Acquisition = &name
		}
		if includeNotes {
			entry.Notes = status.Notes
		}
		exportCards = append(exportCards, entry)
	}

	document := exportDocument{
		ExportedAt: time.Now().Format(time.RFC3339),
		Cards:      &exportCards,
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		m.logger.Error("Export failed", err, map[string]interface{}{"path": exportPath})
		return false
	}
	if err := os.WriteFile(exportPath, data, 0o644); err != nil {
		m.logger.Error("Export failed", err, map[string]interface{}{"path": exportPath})
		return false
	}

	return true
}

// ImportCollection reads an export document back, resolving each card by
// number. Unknown numbers count as failed. A document without a "cards" key
// fails hard before any row is touched.
func (m *Manager) ImportCollection(importPath string, strategy MergeStrategy) (ImportStats, error) {
	stats := ImportStats{}

	data, err := os.ReadFile(importPath)
	if err != nil {
		return stats, err
	}

	var document exportDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return stats, fmt.Errorf("invalid import file: %w", err)
	}
	if document.Cards == nil {
		return stats, errors.New("invalid import file format: missing cards")
	}

	err = m.db.Transaction(func(tx *gorm.DB) error {
		if strategy == MergeReplace {
			if err := tx.Where("1 = 1").Delete(&models.CollectionStatus{}).Error; err != nil {
				return err
			}
		}

		for _, entry := range *document.Cards {
			outcome, err := importCard(tx, entry, strategy)
			if err != nil {
				m.logger.Warn("Failed to import card", map[string]interface{}{
					"card_number": entry.CardNumber,
					"error":       err.Error(),
				})
				stats.Failed++
				continue
			}
			switch outcome {
			case importOutcomeImported:
				stats.Imported++
			case importOutcomeSkipped:
				stats.Skipped++
			case importOutcomeUpdated:
				stats.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, err
	}

	return stats, nil
}

type importOutcome int

const (
	importOutcomeImported importOutcome = iota
	importOutcomeSkipped
	importOutcomeUpdated
)

func importCard(tx *gorm.DB, entry ExportCard, strategy MergeStrategy) (importOutcome, error) {
	card, err := findCardWithStatus(tx, entry.CardNumber)
	if err != nil {
		return 0, fmt.Errorf("unknown card number: %w", err)
	}

	outcome := importOutcomeImported
	status := card.CollectionStatus
	if status != nil && status.IsCollected {
		if strategy == MergeSkip {
			return importOutcomeSkipped, nil
		}
		if strategy == MergeUpdate {
			outcome = importOutcomeUpdated
		}
	}
	if status == nil {
		status = &models.CollectionStatus{CardID: card.ID}
	}

	status.IsCollected = true
	status.IsHolo = entry.IsHolo
	status.IsMisprint = entry.IsMisprint

	if entry.DateAcquired != nil && *entry.DateAcquired != "" {
		when, err := parseImportTime(*entry.DateAcquired)
		if err != nil {
			return 0, err
		}
		status.DateAcquired = &when
	}

	if entry.Acquisition != nil && *entry.Acquisition != "" {
		method := cards.Acquisition(*entry.Acquisition)
		if !method.Valid() {
			return 0, fmt.Errorf("unknown acquisition method %q", *entry.Acquisition)
		}
		status.Acquisition = &method
	}

	if entry.Notes != "" {
		status.Notes = entry.Notes
	}

	if err := tx.Save(status).Error; err != nil {
		return 0, err
	}
	return outcome, nil
}

// parseImportTime accepts RFC 3339 timestamps and the zone-less variant
// older exports used
func parseImportTime(value string) (time.Time, error) {
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
