// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the tool configuration, loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume file
	Job    string `json:"job,omitempty"`     // Path to job posting file
	JobURL string `json:"job_url,omitempty"` // URL to fetch job posting from

	// Output
	Output string `json:"output,omitempty"` // Path to write JSON results to

	// Behavior
	Port       int  `json:"port,omitempty"`        // HTTP server port
	UseBrowser bool `json:"use_browser,omitempty"` // Headless-browser fallback for SPA job pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// DefaultPort is used when no port is configured.
const DefaultPort = 8080

// LoadConfig loads configuration from a JSON file.
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

// Validate checks the configuration for contradictions and bad values.
// Required fields are enforced by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for name, path := range map[string]string{"resume": c.Resume, "job": c.Job} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Bool fields are not merged: unset and false are the same in
// JSON, so CLI flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	return result
}
