package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound reports that the patterns file is absent at the resolved path.
var ErrNotFound = errors.New("patterns file not found")

// ErrMalformed reports that the patterns file exists but is not a valid
// JSON mapping of id to pattern.
var ErrMalformed = errors.New("patterns file malformed")

// rawRecord mirrors the on-disk shape. Pointers distinguish absent/null
// from zero values; fields outside this struct (timestamps, comments,
// opponent info) are dropped by the decoder and never loaded.
type rawRecord struct {
	Race         *string       `json:"race"`
	StrategyType *string       `json:"strategy_type"`
	Signature    *rawSignature `json:"signature"`
	SampleCount  *float64      `json:"sample_count"`
	Confidence   *float64      `json:"confidence"`
}

type rawSignature struct {
	OpeningSequence []rawStep `json:"opening_sequence"`
}

type rawStep struct {
	Unit string `json:"unit"`
}

// Load reads a patterns.json file into a Dataset. An absent file yields
// an error wrapping ErrNotFound with the attempted path; unparseable
// content yields one wrapping ErrMalformed. No other side effects.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read patterns: %w", err)
	}

	var raw map[string]rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ds := make(Dataset, len(raw))
	for id, r := range raw {
		ds[id] = resolve(id, r)
	}
	return ds, nil
}

// resolve applies the per-field defaulting rules: absent or null strings
// become empty, absent numbers become zero, and the opening sequence is
// projected down to unit names only.
func resolve(id string, r rawRecord) Record {
	rec := Record{ID: id}
	if r.Race != nil {
		rec.Race = *r.Race
	}
	if r.StrategyType != nil {
		rec.StrategyType = *r.StrategyType
	}
	if r.SampleCount != nil {
		rec.SampleCount = int(*r.SampleCount)
	}
	if r.Confidence != nil {
		rec.Confidence = *r.Confidence
	}
	if r.Signature != nil && len(r.Signature.OpeningSequence) > 0 {
		units := make([]string, 0, len(r.Signature.OpeningSequence))
		for _, step := range r.Signature.OpeningSequence {
			units = append(units, step.Unit)
		}
		rec.OpeningUnits = units
	}
	return rec
}
