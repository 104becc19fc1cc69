// Package summary carries the privacy boundary of the app: it turns a
// full pattern dataset into an aggregate-only artifact. Nothing outside
// the explicit example whitelist (id, race, strategy_type, sample_count,
// confidence, opening_sequence_units) may cross from a Record into a Summary.
package summary

import (
	"strings"

	"stratsummary/internal/pattern"
)

// unknownStrategy labels filtered records with no strategy_type in the
// breakdown.
const unknownStrategy = "unknown"

// Filter returns the subset of ds whose race equals category ignoring
// case. Records without a race never match. Pure: ds is not modified.
func Filter(ds pattern.Dataset, category string) pattern.Dataset {
	out := pattern.Dataset{}
	for id, rec := range ds {
		if rec.Race != "" && strings.EqualFold(rec.Race, category) {
			out[id] = rec
		}
	}
	return out
}

// Example is a redacted projection of one filtered record. These six
// fields are the whitelist; adding a field here widens what leaves the
// trust boundary.
type Example struct {
	ID           string   `json:"id"`
	Race         string   `json:"race"`
	StrategyType string   `json:"strategy_type"`
	SampleCount  int      `json:"sample_count"`
	Confidence   float64  `json:"confidence"`
	OpeningUnits []string `json:"opening_sequence_units"`
}

// Summary is the aggregate result of one pipeline pass.
type Summary struct {
	Total     int
	Filtered  int
	Breakdown map[string]int
	Examples  []Example
}

// Options controls aggregation extras.
type Options struct {
	// WithExamples includes up to ExampleCap redacted examples.
	WithExamples bool
	ExampleCap   int
}

// Aggregate computes the summary for a dataset and its filtered subset.
// The breakdown is a single-pass frequency count over strategy types;
// examples, when requested, are the filtered records with the smallest
// ids so repeated runs over unchanged input produce identical output.
func Aggregate(ds, filtered pattern.Dataset, opts Options) Summary {
	s := Summary{
		Total:     len(ds),
		Filtered:  len(filtered),
		Breakdown: make(map[string]int, len(filtered)),
	}

	for _, rec := range filtered {
		label := rec.StrategyType
		if label == "" {
			label = unknownStrategy
		}
		s.Breakdown[label]++
	}

	if opts.WithExamples {
		limit := opts.ExampleCap
		s.Examples = make([]Example, 0, limit)
		for _, id := range filtered.SortedIDs() {
			if len(s.Examples) >= limit {
				break
			}
			rec := filtered[id]
			s.Examples = append(s.Examples, Example{
				ID:           rec.ID,
				Race:         rec.Race,
				StrategyType: rec.StrategyType,
				SampleCount:  rec.SampleCount,
				Confidence:   rec.Confidence,
				OpeningUnits: rec.OpeningUnits,
			})
		}
	}

	return s
}
