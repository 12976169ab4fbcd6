package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizutani/ojtest/internal/history"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent test-case scans",
		Long: `Show recent discovery runs recorded in the history database.

Each successful "ojtest cases" run records the scanned directory, the format
string, and the number of cases found (unless --no-history was given).`,
		Args: cobra.NoArgs,
		RunE: historyCommand,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .ojtest/config.yaml)")
	cmd.Flags().Int("limit", 10, "Maximum number of records to show")

	return cmd
}

// historyCommand implements the history command logic
func historyCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be > 0, got %d", limit)
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	records, err := store.RecentScans(context.Background(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "no scans recorded")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-3d cases  %-12s  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.CaseCount, rec.Format, rec.Directory)
	}
	return nil
}
