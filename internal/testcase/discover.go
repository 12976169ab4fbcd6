package testcase

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mizutani/ojtest/internal/logger"
	"github.com/mizutani/ojtest/internal/percent"
)

// globTable substitutes every placeholder with a wildcard when the format is
// expanded into a discovery glob.
var globTable = map[rune]string{
	's': "*",
	'e': "*",
}

// GlobWithFormat expands the format under directory into a glob pattern and
// returns every matching path, sorted lexicographically for deterministic
// processing order. Each hit is reported at DEBUG level.
func GlobWithFormat(directory, format string, log logger.Logger) ([]string, error) {
	pattern, err := percent.Glob(directory, format, globTable)
	if err != nil {
		return nil, err
	}

	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to expand glob %q: %w", pattern, err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		log.Debugf("testcase globbed: %s", path)
	}
	return paths, nil
}

// PathFromFormat composes the path of the file holding the given role of the
// named test case, e.g. ("sample-1", "out") under format "%s.%e" becomes
// directory/sample-1.out.
func PathFromFormat(directory, format, name, ext string) (string, error) {
	rendered, err := percent.Render(format, map[rune]string{'s': name, 'e': ext})
	if err != nil {
		return "", err
	}
	return filepath.Join(directory, rendered), nil
}
