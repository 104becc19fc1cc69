// Package pipeline wires the load, filter, aggregate, and write steps
// into one run-to-completion pass. Any step failing aborts the run; no
// partial output is ever committed.
package pipeline

import (
	"stratsummary/internal/datasite"
	"stratsummary/internal/logging"
	"stratsummary/internal/pattern"
	"stratsummary/internal/summary"
)

// Result reports what one successful run produced.
type Result struct {
	Summary    summary.Summary
	OutputPath string
}

// Run executes one pass over the dataset at paths.Patterns and publishes
// the summary at paths.Output.
func Run(paths datasite.Paths, cfg datasite.Config) (Result, error) {
	log := logging.New("pipeline")

	ds, err := pattern.Load(paths.Patterns)
	if err != nil {
		return Result{}, err
	}
	log.Debug("dataset loaded", "path", paths.Patterns, "records", len(ds))

	filtered := summary.Filter(ds, cfg.Category)
	s := summary.Aggregate(ds, filtered, summary.Options{
		WithExamples: cfg.Schema == datasite.SchemaExtended,
		ExampleCap:   cfg.ExampleCap,
	})

	payload, err := s.Marshal(cfg.Schema)
	if err != nil {
		return Result{}, err
	}
	if err := summary.Write(paths.Output, payload); err != nil {
		return Result{}, err
	}

	log.Info("summary written",
		"output", paths.Output,
		"total", s.Total,
		"matched", s.Filtered,
		"category", cfg.Category,
	)
	return Result{Summary: s, OutputPath: paths.Output}, nil
}
