package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_Output(t *testing.T) {
	buf := new(bytes.Buffer)
	cl := NewConsoleLogger(buf, "debug")

	cl.Debugf("globbed %d files", 3)
	cl.Infof("%d cases found", 2)
	cl.Warnf("ignored a backup file: %s", "a.in~")
	cl.Errorf("unrecognizable file found: %s", "weird.txt")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)

	// Plain format for non-TTY writers: "[HH:MM:SS] [LEVEL] message"
	linePattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[(DEBUG|INFO|WARN|ERROR)\] .+$`)
	for _, line := range lines {
		assert.Regexp(t, linePattern, line)
	}

	assert.Contains(t, lines[0], "[DEBUG] globbed 3 files")
	assert.Contains(t, lines[1], "[INFO] 2 cases found")
	assert.Contains(t, lines[2], "[WARN] ignored a backup file: a.in~")
	assert.Contains(t, lines[3], "[ERROR] unrecognizable file found: weird.txt")
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLines int
	}{
		{name: "debug shows everything", logLevel: "debug", wantLines: 4},
		{name: "info hides debug", logLevel: "info", wantLines: 3},
		{name: "warn hides debug and info", logLevel: "warn", wantLines: 2},
		{name: "error shows only errors", logLevel: "error", wantLines: 1},
		{name: "invalid level defaults to info", logLevel: "bogus", wantLines: 3},
		{name: "empty level defaults to info", logLevel: "", wantLines: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			cl := NewConsoleLogger(buf, tt.logLevel)

			cl.Debugf("d")
			cl.Infof("i")
			cl.Warnf("w")
			cl.Errorf("e")

			got := strings.Count(buf.String(), "\n")
			assert.Equal(t, tt.wantLines, got)
		})
	}
}

func TestConsoleLogger_NilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "debug")

	// Must not panic.
	cl.Infof("into the void")
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()

	// Must not panic; output is discarded.
	n.Debugf("d")
	n.Infof("i")
	n.Warnf("w")
	n.Errorf("e")
}
