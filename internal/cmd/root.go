// Package cmd wires the ojtest command-line interface. The commands are thin
// glue: argument parsing, config loading, and output formatting around the
// discovery pipeline in internal/testcase.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for ojtest
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ojtest",
		Short: "Test-case file discovery for competitive programming",
		Long: `ojtest locates and pairs test-case files for a judge run.

A printf-style format string such as "%s.%e" describes how test-case files
are named: %s stands for the case name and %e for the extension tag
("in" or "out"). ojtest expands the format into a glob pattern, skips
backup and hidden files, and groups the remaining files into test cases.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewCasesCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
