package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stratsummary/internal/datasite"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolved paths and dataset/output state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	paths, err := resolvePaths(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Root:     %s\n", paths.Root)
	fmt.Fprintf(out, "Datasite: %s\n", paths.Datasite)
	fmt.Fprintf(out, "Category: %s\n", cfg.Category)
	fmt.Fprintf(out, "Schema:   %s\n", cfg.Schema)

	fmt.Fprintf(out, "Dataset (%s):\n", filepath.Dir(paths.Patterns))
	for _, name := range datasite.DatasetFiles {
		fmt.Fprintf(out, "  %-20s %s\n", name, fileState(filepath.Join(filepath.Dir(paths.Patterns), name)))
	}

	fmt.Fprintf(out, "Output:   %s (%s)\n", paths.Output, fileState(paths.Output))
	return nil
}

func fileState(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "missing"
	}
	return fmt.Sprintf("%d bytes", info.Size())
}
