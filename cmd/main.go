package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/sablewing/cardkeep/internal/commands"
	"github.com/sablewing/cardkeep/internal/config"
	"github.com/sablewing/cardkeep/pkg/collection"
	"github.com/sablewing/cardkeep/pkg/database"
	"github.com/sablewing/cardkeep/pkg/database/migration"
	"github.com/sablewing/cardkeep/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.GetGlobalLoggerFactory().CreateLogger("main")

	db, err := database.NewGormDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := migration.RunMigration(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Database ready", map[string]interface{}{
		"path": cfg.DatabasePath,
	})

	manager := collection.NewManager(db, collection.Options{
		DatabasePath:     cfg.DatabasePath,
		ImageDir:         cfg.ImageDir,
		VariantThreshold: cfg.VariantThreshold,
	})

	commands.Initialize(manager, cfg)
	return commands.Execute()
}
