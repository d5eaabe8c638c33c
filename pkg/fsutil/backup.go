package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupMode selects where backups go.
type BackupMode string

const (
	// BackupModeSidecar writes path + BackupSuffix next to the file.
	BackupModeSidecar BackupMode = "sidecar"

	// BackupModeNone disables backups.
	BackupModeNone BackupMode = "none"
)

// BackupSuffix is appended to sidecar backup file names.
const BackupSuffix = ".gocsfix.bak"

// BackupConfig controls backup creation before a fixed file is written.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// BackupPath returns where the backup of path lives, or "" for BackupModeNone.
// Unknown modes fall back to sidecar.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies path to its backup location. An existing backup is
// never overwritten, so repeated runs keep the oldest original. Returns
// whether a backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}
	backupPath := BackupPath(path, cfg.Mode)
	if backupPath == "" {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat original for backup: %w", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup copies the backup of path back over it. Returns false when
// no backup exists.
func RestoreBackup(ctx context.Context, path string, mode BackupMode) (bool, error) {
	backupPath := BackupPath(path, mode)
	if backupPath == "" {
		return false, nil
	}

	stat, err := os.Stat(backupPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat backup: %w", err)
	}
	content, err := os.ReadFile(backupPath)
	if err != nil {
		return false, fmt.Errorf("read backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stat.Mode()); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return true, nil
}
