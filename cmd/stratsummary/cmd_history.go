package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stratsummary/internal/history"
)

var historyFlags struct {
	dbPath string
	limit  int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded pipeline runs",
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyFlags.dbPath, "db", history.DefaultDBPath, "Run history DB path")
	f.IntVar(&historyFlags.limit, "limit", 20, "Maximum number of runs to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := history.Open(historyFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	runs, err := store.Recent(historyFlags.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded. Run 'stratsummary run' first.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "When\tTotal\tMatched\tOutput\n")
	fmt.Fprintf(w, "----\t-----\t-------\t------\n")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.At, r.Total, r.Filtered, r.OutputPath)
	}
	w.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d runs\n", len(runs))
	return nil
}
