package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mizutani/ojtest/internal/config"
	"github.com/mizutani/ojtest/internal/history"
	"github.com/mizutani/ojtest/internal/logger"
	"github.com/mizutani/ojtest/internal/testcase"
)

// NewCasesCommand creates the cases command
func NewCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases [directory]",
		Short: "Discover and pair test-case files",
		Long: `Discover test-case files in a directory and pair them into cases.

The directory defaults to the configured one (usually "test"). Files are
located by expanding the format string into a glob pattern, backup and
hidden files are skipped with a warning, and the remaining files are grouped
by case name. Every case needs an input file; an output file without a
matching input aborts the scan.

Configuration is loaded from .ojtest/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  ojtest cases
  ojtest cases mycases --format "%s.%e"
  ojtest cases --format "test_%s/%e.txt" --log-level debug
  ojtest cases --no-history`,
		Args: cobra.MaximumNArgs(1),
		RunE: casesCommand,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .ojtest/config.yaml)")
	cmd.Flags().String("format", "", `Test-case file name format, %s = name, %e = in|out`)
	cmd.Flags().String("log-level", "", "Logging verbosity (debug, info, warn, error)")
	cmd.Flags().Bool("no-history", false, "Do not record this scan in the history database")

	return cmd
}

// casesCommand implements the cases command logic
func casesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		cfg.Directory = args[0]
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	tests, err := discoverCases(cfg, log)
	if err != nil {
		return err
	}

	printCases(cmd, tests)

	if cfg.History.Enabled {
		recordScan(cfg, len(tests), log)
	}
	return nil
}

// discoverCases runs the discovery pipeline: glob, filter, relate.
func discoverCases(cfg *config.Config, log logger.Logger) (map[string]testcase.Case, error) {
	paths, err := testcase.GlobWithFormat(cfg.Directory, cfg.Format, log)
	if err != nil {
		return nil, err
	}
	paths = testcase.DropBackupOrHiddenFiles(paths, log)
	return testcase.ConstructRelationship(paths, cfg.Directory, cfg.Format, log)
}

// printCases writes the discovered cases, sorted by name, to the command's
// standard output.
func printCases(cmd *cobra.Command, tests map[string]testcase.Case) {
	names := make([]string, 0, len(tests))
	for name := range tests {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintf(out, "%s:\n", name)
		fmt.Fprintf(out, "  in:  %s\n", tests[name][testcase.ExtIn])
		if outPath, ok := tests[name][testcase.ExtOut]; ok {
			fmt.Fprintf(out, "  out: %s\n", outPath)
		}
	}
}

// recordScan stores the scan in the history database. Recording is best
// effort; failures are reported as warnings and never fail the command.
func recordScan(cfg *config.Config, caseCount int, log logger.Logger) {
	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		log.Warnf("failed to open history database: %v", err)
		return
	}
	defer store.Close()

	directory, err := filepath.Abs(cfg.Directory)
	if err != nil {
		directory = cfg.Directory
	}

	rec := history.ScanRecord{
		Directory: directory,
		Format:    cfg.Format,
		CaseCount: caseCount,
	}
	if err := store.RecordScan(context.Background(), rec); err != nil {
		log.Warnf("failed to record scan: %v", err)
	}
}

// loadConfigFromFlags loads the config file named by --config (or the
// default location) and merges changed flags over it.
func loadConfigFromFlags(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var format, logLevel *string
	if cmd.Flags().Changed("format") {
		v, _ := cmd.Flags().GetString("format")
		format = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	cfg.MergeWithFlags(format, nil, logLevel, nil)

	return cfg, nil
}
