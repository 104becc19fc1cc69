// Package pattern defines the strategy-pattern record model and loads
// the private patterns.json dataset.
//
// Source records are loosely typed: most fields may be absent or null.
// Instead of defaulting at every access site, each field is resolved to
// an explicit default exactly once at load time, and Record carries only
// plain values after that. Records are never mutated once loaded.
package pattern

import "sort"

// Record is one strategy pattern after field resolution.
//
// OpeningUnits is the projection of signature.opening_sequence down to
// the unit name of each step. Step timing, coordinates, and opponent
// details are discarded at load and never reach a Record.
type Record struct {
	ID           string
	Race         string
	StrategyType string
	OpeningUnits []string
	SampleCount  int
	Confidence   float64
}

// Dataset maps record id to record, loaded in full into memory.
type Dataset map[string]Record

// SortedIDs returns the dataset's ids in ascending order. Map iteration
// order is randomized, so anything that picks "the first N records"
// (example selection) goes through this for run-to-run stability.
func (d Dataset) SortedIDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
