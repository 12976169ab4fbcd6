package testcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBackupOrHiddenFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "foo~", want: true},
		{path: ".hidden", want: true},
		{path: "#buffer#", want: true},
		{path: "normal.txt", want: false},
		{path: "sample-1.in", want: false},
		{path: "test/.hidden.in", want: true},
		{path: "test/sample-1.in", want: false},
		// The '~' check applies to the stem, not the extension.
		{path: "backup~.in", want: true},
		{path: "a.in~", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBackupOrHiddenFile(tt.path))
		})
	}
}

func TestDropBackupOrHiddenFiles(t *testing.T) {
	log := &recordingLogger{}
	paths := []string{"a.in", "foo~", ".hidden", "#buffer#", "b.in"}

	got := DropBackupOrHiddenFiles(paths, log)

	assert.Equal(t, []string{"a.in", "b.in"}, got)

	// Every dropped path is reported as a warning.
	assert.Len(t, log.warns, 3)
	assert.Contains(t, log.warns[0], "foo~")
	assert.Contains(t, log.warns[1], ".hidden")
	assert.Contains(t, log.warns[2], "#buffer#")
}

func TestDropBackupOrHiddenFiles_Empty(t *testing.T) {
	log := &recordingLogger{}

	got := DropBackupOrHiddenFiles(nil, log)

	assert.Empty(t, got)
	assert.Empty(t, log.warns)
}
