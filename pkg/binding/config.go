package binding

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/rivet-ui/rivet/pkg/errors"
)

// ConventionConfig mirrors one convention override in rivet.yaml.
// Empty fields keep the registered value.
type ConventionConfig struct {
	Property string `yaml:"property,omitempty"`
	Trigger  string `yaml:"trigger,omitempty"`
	Observe  string `yaml:"observe,omitempty"`
}

// Config represents the optional rivet.yaml binding configuration.
type Config struct {
	// Conventions overrides registered conventions, keyed by the widget
	// type's short name (e.g. "TextField").
	Conventions map[string]ConventionConfig `yaml:"conventions"`
}

// LoadOptional reads rivet.yaml from dir if present. A missing file
// yields an empty configuration, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "rivet.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &errors.RivetError{
			Op:   "binding.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to read rivet.yaml: %w", err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.RivetError{
			Op:   "binding.LoadOptional",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("failed to parse rivet.yaml: %w", err),
		}
	}
	return &cfg, nil
}

// ApplyOverrides merges the configured overrides into the convention
// registry and returns the names that matched no registered widget type,
// sorted for stable reporting.
func (c *Config) ApplyOverrides() []string {
	if c == nil || len(c.Conventions) == 0 {
		return nil
	}
	var unknown []string
	for name, override := range c.Conventions {
		matched := Override(name, Convention{
			Property: override.Property,
			Trigger:  override.Trigger,
			Observe:  override.Observe,
		})
		if !matched {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
