package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"listfmt/internal/logger"
)

// Save writes the workbook to dir under the fixed format file name and
// returns the path. The file appears complete or not at all.
func Save(dir string, payload []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".listfmt-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Info("Saved workbook", "path", path, "size", len(payload))
	return path, nil
}
