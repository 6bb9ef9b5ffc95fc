// Package collection is the data-access facade for the card tracker.
// All reads and writes to the catalog and ownership tables go through the
// Manager; it is the only component aware of both at once.
//
// Lookup operations return (value, error) where absence is a nil or empty
// value, never an error. Mutations return a bare bool: any internal failure
// rolls the transaction back, is logged, and surfaces as false.
package collection

import (
	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/logging"
)

const (
	// defaultVariantThreshold is the number of printed variants a character
	// name may have before the duplicate report flags it.
	defaultVariantThreshold = 8

	// defaultRecentLimit caps GetRecentAcquisitions when no limit is given
	defaultRecentLimit = 10

	// noteTimestampLayout prefixes every appended note line
	noteTimestampLayout = "2006-01-02 15:04"
)

// Manager handles all database operations for the card tracker
type Manager struct {
	db     *gorm.DB
	logger logging.Logger

	dbPath           string
	imageDir         string
	variantThreshold int
}

// Options configures a Manager. DatabasePath and ImageDir are only needed
// for backups; VariantThreshold falls back to the default when zero.
type Options struct {
	DatabasePath     string
	ImageDir         string
	VariantThreshold int
}

// NewManager creates a collection manager on top of an open database handle.
// The schema is expected to be migrated already.
func NewManager(db *gorm.DB, opts Options) *Manager {
	threshold := opts.VariantThreshold
	if threshold <= 0 {
		threshold = defaultVariantThreshold
	}

	return &Manager{
		db:               db,
		logger:           logging.GetGlobalLoggerFactory().CreateLogger("collection"),
		dbPath:           opts.DatabasePath,
		imageDir:         opts.ImageDir,
		variantThreshold: threshold,
	}
}

// DB exposes the underlying handle for schema-level work such as seeding
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// withDetails preloads every 1:1 extension of a card row
func withDetails(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("CharacterDetails").
		Preload("SupportDetails").
		Preload("ElementalDetails").
		Preload("CollectionStatus")
}
