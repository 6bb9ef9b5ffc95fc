package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sablewing/cardkeep/pkg/database/models"
)

// RunMigration creates any missing tables for the catalog and collection
// schema. AutoMigrate never drops columns or tables, so running against an
// existing database file is safe and idempotent.
func RunMigration(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Card{},
		&models.CharacterDetails{},
		&models.SupportDetails{},
		&models.ElementalDetails{},
		&models.CollectionStatus{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
