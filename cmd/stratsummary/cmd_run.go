package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stratsummary/internal/history"
	"stratsummary/internal/pipeline"
)

var runFlags struct {
	dbPath string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the summary pipeline once",
	Long: `Load the private patterns dataset, filter the configured race,
aggregate counts, and publish the privacy-safe summary to the datasite's
public folder. Any failure aborts the run without committing output.`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.dbPath, "db", history.DefaultDBPath, "Run history DB path")
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	paths, err := resolvePaths(cfg)
	if err != nil {
		return err
	}

	res, err := pipeline.Run(paths, cfg)
	if err != nil {
		return err
	}

	store, err := history.Open(runFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	if _, err := store.Record(res.Summary.Total, res.Summary.Filtered, res.OutputPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Summary written to: %s\n", res.OutputPath)
	fmt.Fprintf(out, "Patterns: %d total, %d %s\n", res.Summary.Total, res.Summary.Filtered, cfg.Category)
	return nil
}
