// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/cover-letter-agent/internal/types"
)

// Environment variable names consumed by the CLI.
const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvOpenAIModel   = "OPENAI_MODEL"
	EnvOpenAIBaseURL = "OPENAI_BASE_URL"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvSearchAPIKey  = "JOB_SEARCH_API_KEY"
	EnvSearchBaseURL = "JOB_SEARCH_BASE_URL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Inputs
	Profile string `json:"profile,omitempty"` // Path to the free-text profile file

	// Search
	Location   string `json:"location,omitempty"`    // Search location override ("Remote" for remote-only)
	MaxResults int    `json:"max_results,omitempty"` // Maximum listings to fetch (1-100)

	// Output
	Output string `json:"output,omitempty"` // Output path; empty writes to stdout
	Format string `json:"format,omitempty"` // "text" or "json"

	// LLM
	Provider string  `json:"provider,omitempty"`    // "openai" (default) or "gemini"
	APIKey   string  `json:"api_key,omitempty"`     // LLM API key
	Model    string  `json:"model,omitempty"`       // Model identifier override
	BaseURL  string  `json:"base_url,omitempty"`    // OpenAI-compatible base URL override
	Temp     float64 `json:"temperature,omitempty"` // Sampling temperature

	// Job search provider
	SearchAPIKey  string `json:"search_api_key,omitempty"`
	SearchBaseURL string `json:"search_base_url,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed stage summaries
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

// Validate checks that the configuration has valid values. Runs after the
// config file, CLI flags, and environment have been merged, and before any
// network call is made.
func (c *Config) Validate() error {
	if c.Profile == "" {
		return &ConfigurationError{Setting: "profile", Message: "profile file path is required"}
	}
	if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
		return &ConfigurationError{Setting: "profile", Message: fmt.Sprintf("file not found: %s", c.Profile)}
	}

	if c.MaxResults <= 0 {
		return &ConfigurationError{Setting: "max_results", Message: "must be a positive integer"}
	}
	if c.MaxResults > types.MaxResultsLimit {
		return &ConfigurationError{
			Setting: "max_results",
			Message: fmt.Sprintf("must not exceed %d", types.MaxResultsLimit),
		}
	}

	switch c.Format {
	case "text", "json":
	default:
		return &ConfigurationError{Setting: "format", Message: fmt.Sprintf("unsupported format %q", c.Format)}
	}

	switch c.Provider {
	case "openai", "gemini":
	default:
		return &ConfigurationError{Setting: "provider", Message: fmt.Sprintf("unsupported provider %q", c.Provider)}
	}

	if c.APIKey == "" {
		return &ConfigurationError{Setting: "api_key", Message: "LLM API key is required (flag, config, or environment)"}
	}

	if c.Temp < 0 || c.Temp > 2 {
		return &ConfigurationError{Setting: "temperature", Message: "must be between 0 and 2"}
	}

	return nil
}

// ApplyEnvironment fills credentials and endpoint settings from environment
// variables for any field not already set by flag or config file.
func (c *Config) ApplyEnvironment() {
	if c.APIKey == "" {
		switch c.Provider {
		case "gemini":
			c.APIKey = os.Getenv(EnvGeminiAPIKey)
		default:
			c.APIKey = os.Getenv(EnvOpenAIAPIKey)
		}
	}
	if c.Model == "" {
		c.Model = os.Getenv(EnvOpenAIModel)
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv(EnvOpenAIBaseURL)
	}
	if c.SearchAPIKey == "" {
		c.SearchAPIKey = os.Getenv(EnvSearchAPIKey)
	}
	if c.SearchBaseURL == "" {
		c.SearchBaseURL = os.Getenv(EnvSearchBaseURL)
	}
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Location == "" {
		result.Location = defaults.Location
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.Temp == 0 {
		result.Temp = defaults.Temp
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags always win for bools)

	return result
}
