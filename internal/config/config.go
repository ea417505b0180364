// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Inputs
	File string `json:"file,omitempty"` // Path to an export archive (.zip) or profile document (.pdf, .html)
	URL  string `json:"url,omitempty"`  // Profile URL for the fallback fetch path

	// Output
	Out string `json:"out,omitempty"` // Path to write the imported resume JSON to

	// Collaborators
	FetchEndpoint string `json:"fetch_endpoint,omitempty"` // URL-fallback import service endpoint
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL for the hand-off store

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for `serve`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultPort is used by `serve` when neither the config file nor the flag
// sets one.
const DefaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.File != "" && c.URL != "" {
		return fmt.Errorf("config error: 'file' and 'url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.File)
		}
		ext := strings.ToLower(filepath.Ext(c.File))
		switch ext {
		case ".zip", ".pdf", ".html", ".htm":
		default:
			return fmt.Errorf("config error: unsupported input file type %q", ext)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.File == "" {
		result.File = defaults.File
	}
	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.FetchEndpoint == "" {
		result.FetchEndpoint = defaults.FetchEndpoint
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv overlays values from environment variables onto the config.
// Environment values win over file values, flags win over both.
func (c *Config) FromEnv() {
	if v := os.Getenv("PROFILE_IMPORTER_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PROFILE_IMPORTER_FETCH_ENDPOINT"); v != "" {
		c.FetchEndpoint = v
	}
}
