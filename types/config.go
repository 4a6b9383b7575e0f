// Package types holds configuration types for rulekit.yaml.
package types

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level rulekit.yaml configuration.
type Config struct {
	BundleID string   `yaml:"bundle_id"`
	Version  string   `yaml:"version"`
	Agent    string   `yaml:"agent,omitempty"` // cursor, windsurf, custom
	Paths    PathsRef `yaml:"paths,omitempty"`
	Eval     EvalRef  `yaml:"eval,omitempty"`
}

// PathsRef overrides the default bundle layout locations.
type PathsRef struct {
	BundleDir string `yaml:"bundle_dir,omitempty"` // default: ".cursor"
	Memory    string `yaml:"memory,omitempty"`     // default: "<bundle_dir>/memory/memory.md"
}

// EvalRef configures the model evaluation harness.
type EvalRef struct {
	Provider    string `yaml:"provider,omitempty"` // openai, ollama
	BaseURL     string `yaml:"base_url,omitempty"`
	Model       string `yaml:"model,omitempty"`
	BaseModel   string `yaml:"base_model,omitempty"`    // comparison model name
	BaseBaseURL string `yaml:"base_base_url,omitempty"` // comparison endpoint
	Suite       string `yaml:"suite,omitempty"`         // default: "eval-suite.yaml"
}

// BundleDir returns the configured bundle directory, defaulting to ".cursor".
func (c *Config) BundleDir() string {
	if c.Paths.BundleDir != "" {
		return c.Paths.BundleDir
	}
	return ".cursor"
}

// MemoryPath returns the configured memory file path relative to the project root.
func (c *Config) MemoryPath() string {
	if c.Paths.Memory != "" {
		return c.Paths.Memory
	}
	return filepath.Join(c.BundleDir(), "memory", "memory.md")
}

// SuitePath returns the configured eval suite path, defaulting to "eval-suite.yaml".
func (c *Config) SuitePath() string {
	if c.Eval.Suite != "" {
		return c.Eval.Suite
	}
	return "eval-suite.yaml"
}

// ParseConfig parses raw YAML bytes into a Config and validates required fields.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing rulekit config: %w", err)
	}

	if cfg.BundleID == "" {
		return nil, fmt.Errorf("rulekit config: bundle_id is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("rulekit config: version is required")
	}

	return &cfg, nil
}
