package testcase

import (
	"errors"
	"fmt"

	"github.com/mizutani/ojtest/internal/logger"
	"github.com/mizutani/ojtest/internal/percent"
)

// Fatal discovery errors. All of them abort the scan with no partial result;
// they are deterministic input-validation failures, never retried.
var (
	// ErrUnrecognizedFile indicates a candidate path that does not conform
	// to the active format, which usually means the format string or the
	// directory is wrong.
	ErrUnrecognizedFile = errors.New("unrecognizable file found")

	// ErrDanglingOutput indicates an output file with no paired input file
	// under the same test-case name.
	ErrDanglingOutput = errors.New("dangling output case")

	// ErrNoCasesFound indicates a scan that produced zero test cases.
	ErrNoCasesFound = errors.New("no cases found")

	// ErrDuplicateFile indicates two candidate paths claiming the same
	// (name, extension) slot. With an anchored match over resolved paths
	// this cannot happen; hitting it is an internal-consistency failure.
	ErrDuplicateFile = errors.New("duplicate file for test case")
)

// matchTable is the placeholder table used to extract fields from candidate
// paths: %s captures the test-case name, %e the extension tag.
var matchTable = map[rune]string{
	's': ".+",
	'e': ExtIn + "|" + ExtOut,
}

// ConstructRelationship groups candidate paths into test cases. Every path is
// matched against the format joined under directory; the extracted name and
// extension tag decide which case the file belongs to and which role it
// fills.
//
// Any path that does not match, any test case lacking an input file, and an
// empty result are all fatal. On success the number of discovered cases is
// reported at INFO level.
func ConstructRelationship(paths []string, directory, format string, log logger.Logger) (map[string]Case, error) {
	resolvedDir, err := resolvePath(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory %s: %w", directory, err)
	}

	tests := make(map[string]Case)
	for _, path := range paths {
		resolved, err := resolvePath(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
		}

		m, err := percent.Match(resolvedDir, format, resolved, matchTable)
		if err != nil {
			return nil, err
		}
		if m == nil {
			log.Errorf("unrecognizable file found: %s", path)
			return nil, fmt.Errorf("%w: %s", ErrUnrecognizedFile, path)
		}

		name, ext := m['s'], m['e']
		if tests[name] == nil {
			tests[name] = make(Case)
		}
		if existing, ok := tests[name][ext]; ok {
			return nil, fmt.Errorf("%w: %s and %s both fill %q of case %q",
				ErrDuplicateFile, existing, path, ext, name)
		}
		tests[name][ext] = path
	}

	for _, c := range tests {
		if _, ok := c[ExtIn]; !ok {
			log.Errorf("dangling output case: %s", c[ExtOut])
			return nil, fmt.Errorf("%w: %s", ErrDanglingOutput, c[ExtOut])
		}
	}

	if len(tests) == 0 {
		log.Errorf("no cases found")
		return nil, ErrNoCasesFound
	}

	log.Infof("%d cases found", len(tests))
	return tests, nil
}
