// Package config loads the repository-level gitch configuration file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for at the repository root.
const FileName = ".gitch.yaml"

// Config is the root configuration structure, keyed kebab-case.
type Config struct {
	// FirstCommitIsEmpty requires the repository's first commit to
	// introduce no changes.
	FirstCommitIsEmpty bool `yaml:"first-commit-is-empty"`
	// StartingFrom bounds checks to commits at or after this commit id.
	StartingFrom string                 `yaml:"starting-from"`
	Summary      SummaryConfig          `yaml:"summary"`
	Trailers     map[string]TrailerRule `yaml:"trailers"`
	Diff         DiffConfig             `yaml:"diff"`
}

// SummaryConfig holds checks applied to the commit summary line.
type SummaryConfig struct {
	// FirstWordCapitalization is "upper", "lower" or empty (no check).
	FirstWordCapitalization string `yaml:"first-word-capitalization"`
	// FirstWordIsSimpleVerb is recognized so configs carrying the key fail
	// with a clear message instead of an unknown-key error; the check
	// itself is not supported.
	FirstWordIsSimpleVerb bool `yaml:"first-word-is-simple-verb"`
}

// TrailerRule constrains one trailer token.
type TrailerRule struct {
	// Mandatory requires the trailer on every checked commit.
	Mandatory bool `yaml:"mandatory"`
	// Singular forbids multiple distinct values for the token.
	Singular bool `yaml:"singular"`
	// Values restricts the trailer to this set; empty allows anything.
	Values []string `yaml:"values"`
}

// DiffConfig holds patch rendering defaults.
type DiffConfig struct {
	// Algorithm is histogram, myers or myers-minimal.
	Algorithm string `yaml:"algorithm"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Diff: DiffConfig{Algorithm: "histogram"},
	}
}

// Load reads and strictly decodes a configuration file: unknown keys are
// an error, matching the schema's closed shape.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Find locates the configuration file at the repository root. The second
// return value is false when none exists.
func Find(root string) (string, bool) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (c *Config) validate() error {
	switch c.Summary.FirstWordCapitalization {
	case "", "upper", "lower":
	default:
		return fmt.Errorf("summary.first-word-capitalization must be \"upper\" or \"lower\", got %q",
			c.Summary.FirstWordCapitalization)
	}
	if c.Summary.FirstWordIsSimpleVerb {
		return fmt.Errorf("summary.first-word-is-simple-verb is not supported")
	}
	return nil
}
