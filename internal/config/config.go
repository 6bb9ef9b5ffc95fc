package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds the application configuration
type Config struct {
	DatabasePath     string `toml:"database_path"`
	ImageDir         string `toml:"image_dir"`
	BackupDir        string `toml:"backup_dir"`
	BackupSchedule   string `toml:"backup_schedule"`
	CatalogPath      string `toml:"catalog_path"`
	LogLevel         string `toml:"log_level"`
	VariantThreshold int    `toml:"variant_threshold"`
}

// defaultConfigFile is looked up in the working directory when
// CARDKEEP_CONFIG is unset
const defaultConfigFile = "cardkeep.toml"

// LoadConfig builds the configuration in three layers: defaults, an
// optional TOML file, then environment variable overrides. A missing config
// file is fine; a malformed one is not.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DatabasePath: "data/cardkeep.db",
		ImageDir:     "data/card_images",
		BackupDir:    "backups",
		CatalogPath:  "data/catalog.yaml",
		LogLevel:     "info",
	}

	path := os.Getenv("CARDKEEP_CONFIG")
	if path == "" {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if os.Getenv("CARDKEEP_CONFIG") != "" {
		// An explicitly named config file must exist
		return nil, fmt.Errorf("config file %s not found", path)
	}

	applyEnvOverrides(cfg)

	if cfg.VariantThreshold < 0 {
		return nil, fmt.Errorf("variant_threshold must not be negative, got %d", cfg.VariantThreshold)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CARDKEEP_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("CARDKEEP_IMAGE_DIR"); v != "" {
		cfg.ImageDir = v
	}
	if v := os.Getenv("CARDKEEP_BACKUP_DIR"); v != "" {
		cfg.BackupDir = v
	}
	if v := os.Getenv("CARDKEEP_BACKUP_SCHEDULE"); v != "" {
		cfg.BackupSchedule = v
	}
	if v := os.Getenv("CARDKEEP_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("CARDKEEP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CARDKEEP_VARIANT_THRESHOLD"); v != "" {
		if threshold, err := strconv.Atoi(v); err == nil {
			cfg.VariantThreshold = threshold
		}
	}
}
