package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveExport moves an existing export file into an "archive" directory next
// to it, with a timestamp in the name. It returns the new path, or "" when
// there was nothing to archive.
func ArchiveExport(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat export file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("export path is a directory: %s", path)
	}

	// Get parent directory and create archive path
	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", name, timestamp, ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive export file: %w", err)
	}

	return archivePath, nil
}

// RestoreExport moves an archived export back to path, replacing anything a
// failed run left there
func RestoreExport(archivePath, path string) error {
	if err := os.Rename(archivePath, path); err != nil {
		return fmt.Errorf("failed to restore archived export: %w", err)
	}
	return nil
}
