package testcase

import (
	"path/filepath"
	"strings"

	"github.com/mizutani/ojtest/internal/logger"
)

// IsBackupOrHiddenFile reports whether path looks like an editor backup or a
// hidden file. The classification uses the stem of the base name (extension
// stripped): it is backup/hidden when the stem ends with '~', or starts and
// ends with '#', or starts with '.'.
func IsBackupOrHiddenFile(path string) bool {
	s := stem(path)
	return strings.HasSuffix(s, "~") ||
		(strings.HasPrefix(s, "#") && strings.HasSuffix(s, "#")) ||
		strings.HasPrefix(s, ".")
}

// DropBackupOrHiddenFiles returns the subset of paths that are not backup or
// hidden files. Every dropped path is reported at WARN level; filtering
// itself never fails.
func DropBackupOrHiddenFiles(paths []string, log logger.Logger) []string {
	result := make([]string, 0, len(paths))
	for _, path := range paths {
		if IsBackupOrHiddenFile(path) {
			log.Warnf("ignored a backup file: %s", path)
			continue
		}
		result = append(result, path)
	}
	return result
}

// stem returns the base name of path with its extension stripped. A base name
// consisting only of a leading dot and an extension-like tail (".hidden") has
// no extension to strip.
func stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}
