// Package testcase discovers and pairs test-case files for a judge run.
//
// Given a directory and a printf-style format string such as "%s.%e", the
// package expands the format into a glob pattern to locate candidate files,
// filters out backup and hidden files, extracts the test-case name and
// extension tag from each path, and groups the files into logical test cases
// keyed by name.
package testcase

import "path/filepath"

// Extension tags identifying a file's role within a test case.
const (
	// ExtIn tags the input file of a test case.
	ExtIn = "in"
	// ExtOut tags the expected-output file of a test case.
	ExtOut = "out"
)

// Case maps an extension tag (ExtIn or ExtOut) to the path filling that role.
// Every case has an ExtIn entry; the ExtOut entry is optional.
type Case map[string]string

// resolvePath returns the absolute, symlink-free form of path. Two
// syntactically different spellings of the same file resolve to the same
// string, so resolved paths are safe to use as matching keys.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
