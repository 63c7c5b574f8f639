// Package backup writes timestamped snapshots of the theme library.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thatcatcamp/themebuilder/internal/library"
	"gorm.io/gorm"
)

const (
	snapshotPrefix = "themes-"
	snapshotSuffix = ".yaml"
	timeLayout     = "2006-01-02-150405"
)

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string // e.g. ~/.themebuilder/backups
	Keep       int    // snapshots retained after pruning, 0 keeps all
	db         *gorm.DB
	now        func() time.Time
}

// NewBackupManager creates a new backup manager
func NewBackupManager(database *gorm.DB, backupPath string, keep int) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Keep:       keep,
		db:         database,
		now:        time.Now,
	}
}

// CreateSnapshot exports the library to a new file and prunes old ones.
// It returns the path written.
func (m *BackupManager) CreateSnapshot() (string, error) {
	if err := os.MkdirAll(m.BackupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := snapshotPrefix + m.now().UTC().Format(timeLayout) + snapshotSuffix
	path := filepath.Join(m.BackupPath, name)

	// Write to a temp file first so a failed export never leaves a partial snapshot
	tmp, err := os.CreateTemp(m.BackupPath, ".snapshot-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := library.Export(m.db, tmp, library.FormatYAML); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to finalize snapshot: %w", err)
	}

	if err := m.Prune(); err != nil {
		return path, err
	}
	return path, nil
}

// ListSnapshots returns snapshot file names, oldest first.
func (m *BackupManager) ListSnapshots() ([]string, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), snapshotPrefix) && strings.HasSuffix(e.Name(), snapshotSuffix) {
			names = append(names, e.Name())
		}
	}
	// The timestamp layout sorts lexically
	sort.Strings(names)
	return names, nil
}

// Prune deletes the oldest snapshots beyond Keep.
func (m *BackupManager) Prune() error {
	if m.Keep <= 0 {
		return nil
	}
	names, err := m.ListSnapshots()
	if err != nil {
		return err
	}
	for len(names) > m.Keep {
		if err := os.Remove(filepath.Join(m.BackupPath, names[0])); err != nil {
			return fmt.Errorf("failed to prune %s: %w", names[0], err)
		}
		names = names[1:]
	}
	return nil
}
