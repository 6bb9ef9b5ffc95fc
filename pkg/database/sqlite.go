package database

import (
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormDB opens the SQLite database file at the given path, creating
// parent directories on demand. Opening an existing file keeps its data.
func NewGormDB(path string) (*gorm.DB, error) {
	if path == "" {
		return nil, errors.New("database path is not set")
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Cascade constraints in the schema only work when SQLite is told to
	// enforce foreign keys on this connection.
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return db, nil
}
