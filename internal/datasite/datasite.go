// Package datasite resolves where the app reads its private dataset and
// publishes its public summary inside a SyftBox installation.
//
// A SyftBox tree looks like:
//
//	SyftBox/
//	  apps/<app-id>/          <- this binary lives here
//	  datasites/<owner>/
//	    semi-public/...       <- private dataset (trust boundary: inside)
//	    public/...            <- published summaries (trust boundary: outside)
//
// All locations are computed from the installation root, so the app
// carries no absolute paths.
package datasite

import (
	"fmt"
	"path/filepath"
)

// Output schema variants. Two deployments of this app exist in the wild;
// they differ only in the output field names and whether truncated
// examples are included.
const (
	SchemaLegacy   = "legacy"
	SchemaExtended = "extended"
)

// DefaultExampleCap bounds the number of redacted example patterns
// included under the extended schema.
const DefaultExampleCap = 10

// Config is the deployment configuration for one pipeline run. It is
// built once (from defaults or a config file) and passed in explicitly;
// the core packages hold no global state.
type Config struct {
	// Owner is the datasite owner's email, i.e. the folder name under
	// datasites/.
	Owner string `json:"owner" yaml:"owner"`

	// DatasetPath is the dataset directory relative to the datasite root.
	DatasetPath string `json:"dataset_path" yaml:"dataset_path"`

	// OutputPath is the summary file relative to the datasite root.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Category is the race the pipeline filters on, matched case-insensitively.
	Category string `json:"category" yaml:"category"`

	// Schema selects the output variant: "legacy" or "extended".
	Schema string `json:"schema" yaml:"schema"`

	// ExampleCap bounds the example list under the extended schema.
	ExampleCap int `json:"example_cap" yaml:"example_cap"`
}

// Default returns the configuration of the original deployment: the
// psistorm datasite, the team-project dataset, and the legacy output
// schema with no examples.
func Default() Config {
	return Config{
		Owner:       "kj@psistorm.com",
		DatasetPath: filepath.Join("semi-public", "team-project"),
		OutputPath:  filepath.Join("public", "protoss_summary.json"),
		Category:    "protoss",
		Schema:      SchemaLegacy,
		ExampleCap:  DefaultExampleCap,
	}
}

// Normalize fills zero-value fields from Default and validates the
// schema name. A partially specified config file is therefore enough to
// describe a deployment variant.
func (c Config) Normalize() (Config, error) {
	def := Default()
	if c.Owner == "" {
		c.Owner = def.Owner
	}
	if c.DatasetPath == "" {
		c.DatasetPath = def.DatasetPath
	}
	if c.OutputPath == "" {
		c.OutputPath = def.OutputPath
	}
	if c.Category == "" {
		c.Category = def.Category
	}
	if c.Schema == "" {
		c.Schema = def.Schema
	}
	if c.ExampleCap <= 0 {
		c.ExampleCap = def.ExampleCap
	}
	if c.Schema != SchemaLegacy && c.Schema != SchemaExtended {
		return c, fmt.Errorf("unknown output schema %q (want %q or %q)", c.Schema, SchemaLegacy, SchemaExtended)
	}
	return c, nil
}

// Paths holds every filesystem location one run touches, resolved once
// up front so the pipeline never does path math of its own.
type Paths struct {
	Root     string // SyftBox installation root
	Datasite string // datasites/<owner>
	Patterns string // dataset patterns.json (private side)
	Output   string // published summary file (public side)
}

// PatternsFile is the dataset file this app consumes. The dataset
// directory also holds comments.json and learning_stats.json, which the
// pipeline never reads.
const PatternsFile = "patterns.json"

// DatasetFiles lists the files a complete dataset directory contains,
// for status reporting.
var DatasetFiles = []string{PatternsFile, "comments.json", "learning_stats.json"}

// Resolve computes all run paths from the installation root and config.
func Resolve(root string, cfg Config) Paths {
	site := filepath.Join(root, "datasites", cfg.Owner)
	return Paths{
		Root:     root,
		Datasite: site,
		Patterns: filepath.Join(site, cfg.DatasetPath, PatternsFile),
		Output:   filepath.Join(site, cfg.OutputPath),
	}
}

// RootFromApp derives the SyftBox root from the app's install directory,
// which SyftBox places at <root>/apps/<app-id>.
func RootFromApp(appDir string) string {
	return filepath.Dir(filepath.Dir(appDir))
}
