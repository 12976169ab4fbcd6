package testcase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobWithFormat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.in", "a.out", "a.in", "README")
	log := &recordingLogger{}

	got, err := GlobWithFormat(dir, "%s.%e", log)
	require.NoError(t, err)

	// README has no dot, so "*.*" skips it; results are sorted.
	want := []string{
		filepath.Join(dir, "a.in"),
		filepath.Join(dir, "a.out"),
		filepath.Join(dir, "b.in"),
	}
	assert.Equal(t, want, got)

	// Each hit is reported at debug level.
	assert.Len(t, log.debugs, 3)
}

func TestGlobWithFormat_DirectoryFormat(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		filepath.Join("test_a", "in.txt"),
		filepath.Join("test_b", "in.txt"),
		"stray.txt",
	)
	log := &recordingLogger{}

	got, err := GlobWithFormat(dir, "test_%s/%e.txt", log)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "test_a", "in.txt"),
		filepath.Join(dir, "test_b", "in.txt"),
	}
	assert.Equal(t, want, got)
}

func TestGlobWithFormat_NoMatches(t *testing.T) {
	dir := t.TempDir()
	log := &recordingLogger{}

	got, err := GlobWithFormat(dir, "%s.%e", log)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGlobWithFormat_TrailingPercent(t *testing.T) {
	log := &recordingLogger{}

	_, err := GlobWithFormat(t.TempDir(), "%s.%", log)

	assert.Error(t, err)
}

func TestPathFromFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		caseName string
		ext      string
		want     string
	}{
		{
			name:     "flat layout",
			format:   "%s.%e",
			caseName: "sample-1",
			ext:      ExtIn,
			want:     filepath.Join("test", "sample-1.in"),
		},
		{
			name:     "directory layout",
			format:   "test_%s/%e.txt",
			caseName: "a",
			ext:      ExtOut,
			want:     filepath.Join("test", "test_a", "out.txt"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathFromFormat("test", tt.format, tt.caseName, tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestDiscoveryPipeline exercises the full flow: glob, filter, relate.
func TestDiscoveryPipeline(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.in", "a.out", "b.in", ".hidden.in", "foo~")
	log := &recordingLogger{}

	globbed, err := GlobWithFormat(dir, "%s.%e", log)
	require.NoError(t, err)

	kept := DropBackupOrHiddenFiles(globbed, log)
	tests, err := ConstructRelationship(kept, dir, "%s.%e", log)
	require.NoError(t, err)

	assert.Len(t, tests, 2)
	assert.Equal(t, filepath.Join(dir, "a.in"), tests["a"][ExtIn])
	assert.Equal(t, filepath.Join(dir, "a.out"), tests["a"][ExtOut])
	assert.Equal(t, filepath.Join(dir, "b.in"), tests["b"][ExtIn])

	// The hidden file was globbed but dropped with a warning.
	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], ".hidden.in")
}
