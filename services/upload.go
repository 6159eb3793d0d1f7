package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

// ObjectKey builds the storage key for an upload: folder, millisecond
// timestamp prefix, sanitized base name, original extension preserved.
func ObjectKey(folder, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	clean := unsafeFilenameChars.ReplaceAllString(base, "_")
	ext = strings.TrimPrefix(ext, ".")
	if ext != "" {
		return fmt.Sprintf("%s/%d_%s.%s", folder, time.Now().UnixMilli(), clean, ext)
	}
	return fmt.Sprintf("%s/%d_%s", folder, time.Now().UnixMilli(), clean)
}
