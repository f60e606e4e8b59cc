// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-matcher/internal/matching"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume    string `json:"resume,omitempty"`     // Path to resume text file
	Job       string `json:"job,omitempty"`        // Path to job description text file
	ResumeDir string `json:"resume_dir,omitempty"` // Directory of resumes for batch runs
	Output    string `json:"output,omitempty"`     // Path to write the JSON result to

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`  // Print a human-readable analysis summary
	Validate bool `json:"validate,omitempty"` // Check emitted JSON against the result schema

	// Scoring overrides the default calibration when present.
	Scoring *matching.ScoringConfig `json:"scoring,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the scoring calibration's ranges with the validator and
// that referenced paths exist. Required-field enforcement happens after flag
// merging in the CLI, not here.
func (c *Config) ValidateConfig() error {
	if c.Scoring != nil {
		validate := validator.New()
		if err := validate.Struct(c.Scoring); err != nil {
			return fmt.Errorf("config error: invalid scoring calibration: %w", err)
		}
	}

	for _, path := range []string{c.Resume, c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}
	if c.ResumeDir != "" {
		info, err := os.Stat(c.ResumeDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: resume directory not found: %s", c.ResumeDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: resume_dir is not a directory: %s", c.ResumeDir)
		}
	}
	return nil
}

// ScoringOrDefault returns the configured calibration, or the default one
// when the config carries no override.
func (c *Config) ScoringOrDefault() matching.ScoringConfig {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return matching.DefaultScoringConfig()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.Validate {
		result.Validate = defaults.Validate
	}
	if result.Scoring == nil {
		result.Scoring = defaults.Scoring
	}

	return result
}
