package summary

import (
	"encoding/json"
	"fmt"

	"stratsummary/internal/datasite"
)

// legacyDoc is the original deployment's output: counts only, with the
// long-form total field name.
type legacyDoc struct {
	Total     int            `json:"total_patterns_in_dataset"`
	Count     int            `json:"protoss_pattern_count"`
	Breakdown map[string]int `json:"protoss_strategy_breakdown"`
}

// extendedDoc is the second deployment's output: short total field name
// plus a capped list of redacted examples.
type extendedDoc struct {
	Total     int            `json:"total_patterns"`
	Count     int            `json:"protoss_pattern_count"`
	Breakdown map[string]int `json:"protoss_strategy_breakdown"`
	Examples  []Example      `json:"example_protoss_patterns"`
}

// Marshal renders the summary under the named output schema, indented
// two spaces. An empty summary renders {} and [] rather than null so
// consumers can treat the fields uniformly.
func (s Summary) Marshal(schema string) ([]byte, error) {
	breakdown := s.Breakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}

	switch schema {
	case datasite.SchemaLegacy:
		return json.MarshalIndent(legacyDoc{
			Total:     s.Total,
			Count:     s.Filtered,
			Breakdown: breakdown,
		}, "", "  ")
	case datasite.SchemaExtended:
		examples := s.Examples
		if examples == nil {
			examples = []Example{}
		}
		return json.MarshalIndent(extendedDoc{
			Total:     s.Total,
			Count:     s.Filtered,
			Breakdown: breakdown,
			Examples:  examples,
		}, "", "  ")
	}
	return nil, fmt.Errorf("unknown output schema %q", schema)
}
