package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the rest of the test from an empty directory so no stray
// cardkeep.toml is picked up
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "data/cardkeep.db", cfg.DatabasePath)
	assert.Equal(t, "data/card_images", cfg.ImageDir)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, "data/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.VariantThreshold)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cardkeep.toml")
	content := `
database_path = "/var/lib/cardkeep/cards.db"
log_level = "debug"
variant_threshold = 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CARDKEEP_CONFIG", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/cardkeep/cards.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 12, cfg.VariantThreshold)
	// Unset keys keep their defaults
	assert.Equal(t, "backups", cfg.BackupDir)
}

func TestLoadConfig_ExplicitMissingFileErrors(t *testing.T) {
	t.Setenv("CARDKEEP_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadConfig_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cardkeep.toml")
	require.NoError(t, os.WriteFile(path, []byte("database_path = [broken"), 0o644))
	t.Setenv("CARDKEEP_CONFIG", path)

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_EnvOverridesWin(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CARDKEEP_DB_PATH", "/tmp/other.db")
	t.Setenv("CARDKEEP_BACKUP_SCHEDULE", "0 3 * * *")
	t.Setenv("CARDKEEP_VARIANT_THRESHOLD", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, "0 3 * * *", cfg.BackupSchedule)
	assert.Equal(t, 5, cfg.VariantThreshold)
}

func TestLoadConfig_NegativeThresholdRejected(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CARDKEEP_VARIANT_THRESHOLD", "-3")

	_, err := LoadConfig()
	require.Error(t, err)
}
