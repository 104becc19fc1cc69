package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"stratsummary/internal/datasite"
	"stratsummary/internal/pattern"
)

// seedDatasite builds a minimal SyftBox tree and returns the resolved paths.
func seedDatasite(t *testing.T, cfg datasite.Config, patterns string) datasite.Paths {
	t.Helper()
	root := t.TempDir()
	paths := datasite.Resolve(root, cfg)
	if patterns != "" {
		if err := os.MkdirAll(filepath.Dir(paths.Patterns), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(paths.Patterns, []byte(patterns), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

const scenarioJSON = `{
	"p1": {"race": "Protoss", "strategy_type": "economic_expansion"},
	"p2": {"race": "Terran", "strategy_type": "rush"},
	"p3": {"race": "protoss"}
}`

func TestRun_LegacyOutput(t *testing.T) {
	cfg, err := datasite.Config{}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	paths := seedDatasite(t, cfg, scenarioJSON)

	res, err := Run(paths, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Summary.Total != 3 || res.Summary.Filtered != 2 {
		t.Errorf("counts = %d/%d, want 3/2", res.Summary.Total, res.Summary.Filtered)
	}

	data, err := os.ReadFile(paths.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	if doc["total_patterns_in_dataset"].(float64) != 3 {
		t.Errorf("total = %v", doc["total_patterns_in_dataset"])
	}
	if doc["protoss_pattern_count"].(float64) != 2 {
		t.Errorf("count = %v", doc["protoss_pattern_count"])
	}
	breakdown := doc["protoss_strategy_breakdown"].(map[string]any)
	want := map[string]any{"economic_expansion": float64(1), "unknown": float64(1)}
	if diff := cmp.Diff(want, breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
	if _, ok := doc["example_protoss_patterns"]; ok {
		t.Error("legacy schema must not include examples")
	}
}

func TestRun_ExtendedOutput(t *testing.T) {
	cfg, err := datasite.Config{
		DatasetPath: filepath.Join("semi-public", "team-project", "data"),
		Schema:      datasite.SchemaExtended,
	}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	paths := seedDatasite(t, cfg, scenarioJSON)

	if _, err := Run(paths, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(paths.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var doc struct {
		Total    int              `json:"total_patterns"`
		Examples []map[string]any `json:"example_protoss_patterns"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Total != 3 {
		t.Errorf("total = %d", doc.Total)
	}
	if len(doc.Examples) != 2 {
		t.Errorf("examples len = %d, want 2", len(doc.Examples))
	}
}

func TestRun_MissingInput(t *testing.T) {
	cfg, err := datasite.Config{}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	paths := seedDatasite(t, cfg, "")

	_, err = Run(paths, cfg)
	if !errors.Is(err, pattern.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, statErr := os.Stat(paths.Output); !os.IsNotExist(statErr) {
		t.Error("no output file may be created on a failed run")
	}
}

func TestRun_MalformedInput(t *testing.T) {
	cfg, err := datasite.Config{}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	paths := seedDatasite(t, cfg, "not json at all")

	if _, err := Run(paths, cfg); !errors.Is(err, pattern.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg, err := datasite.Config{Schema: datasite.SchemaExtended}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	paths := seedDatasite(t, cfg, scenarioJSON)

	if _, err := Run(paths, cfg); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(paths.Output)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Run(paths, cfg); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(paths.Output)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("reruns over unchanged input differ:\n%s\nvs\n%s", first, second)
	}
}
