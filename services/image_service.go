package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// allowed upload subdirectories; anything else falls back to "misc" so a
// crafted subdir can't escape the uploads root.
var uploadSubdirs = map[string]bool{
	"products": true,
	"slides":   true,
	"blogs":    true,
	"misc":     true,
}

// SaveBase64Image decodes a (possibly data-URL prefixed) base64 image and
// writes it under uploads/<subdir>/. It returns the relative path stored in
// the record's image_url field, e.g. "products/1712345678.jpg".
func SaveBase64Image(b64 string, subdir string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	if !uploadSubdirs[subdir] {
		subdir = "misc"
	}

	dir := filepath.Join("uploads", subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := fmt.Sprintf("%d.jpg", time.Now().UnixNano())
	fullpath := filepath.Join(dir, filename)

	if err := os.WriteFile(fullpath, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}
