package collection

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// BackupDatabase copies the database file, optionally the card image
// directory, and a fresh collection export into a timestamped directory
// under backupDir. Any failing step aborts the whole backup.
func (m *Manager) BackupDatabase(backupDir string, includeImages bool) bool {
	if m.dbPath == "" {
		m.logger.Error("Backup failed", fmt.Errorf("manager has no database path configured"), nil)
		return false
	}

	timestamp := time.Now().Format("20060102_150405")
	target := filepath.Join(backupDir, "backup_"+timestamp)
	if err := os.MkdirAll(target, 0o755); err != nil {
		m.logger.Error("Backup failed", err, map[string]interface{}{"dir": target})
		return false
	}

	if err := copyFile(m.dbPath, filepath.Join(target, filepath.Base(m.dbPath))); err != nil {
		m.logger.Error("Backup failed", err, map[string]interface{}{"dir": target})
		return false
	}

	if includeImages && m.imageDir != "" {
		if _, err := os.Stat(m.imageDir); err == nil {
			if err := copyDir(m.imageDir, filepath.Join(target, "card_images")); err != nil {
				m.logger.Error("Backup failed", err, map[string]interface{}{"dir": target})
				return false
			}
		}
	}

	if !m.ExportCollection(filepath.Join(target, "collection.json"), true) {
		return false
	}

	m.logger.Info("Backup created", map[string]interface{}{"dir": target})
	return true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}
