package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileNameWithoutExt extracts the base filename without its extension.
func FileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}

// SanitizeFileName replaces characters that are unsafe in filenames.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// WriteBlobWithTimestamp archives raw upload bytes into the upload
// directory under a timestamped, sanitized name and returns the path.
func WriteBlobWithTimestamp(data []byte, originalName, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(originalName)
	baseName := strings.TrimSuffix(filepath.Base(originalName), ext)
	timestamp := time.Now().Unix()
	fileName := SanitizeFileName(fmt.Sprintf("%s_%d%s", baseName, timestamp, ext))
	destPath := filepath.Join(uploadDir, fileName)

	if err := os.WriteFile(destPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return destPath, nil
}
