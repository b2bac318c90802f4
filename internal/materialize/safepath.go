package materialize

import (
	"path/filepath"
	"strings"
)

// SafePath normalizes a candidate path from untrusted response text and
// reports whether it stays inside the destination root. It resolves
// ./.. segments and separators without touching the filesystem. Unsafe
// paths are absolute paths and any path that still points at a parent
// after normalization.
func SafePath(path string) (string, bool) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "" || clean == "." {
		return "", false
	}
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", false
	}
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", false
	}
	return clean, true
}
