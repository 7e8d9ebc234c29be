// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/parsing"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/validation"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey            = "GEMINI_API_KEY"
	EnvPort              = "PORT"
	EnvMaxConcurrentRuns = "MAX_CONCURRENT_RUNS"
)

// DefaultPort is the HTTP port used by serve when none is configured.
const DefaultPort = 8080

// DefaultMaxConcurrentRuns bounds simultaneous tailoring runs in the server.
const DefaultMaxConcurrentRuns = 4

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	ProfileURL string `json:"profile_url,omitempty"` // LinkedIn profile URL
	JobURL     string `json:"job_url,omitempty"`     // Job posting URL
	Template   string `json:"template,omitempty"`    // Preview template ID, see rendering.Templates

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Demo       bool   `json:"demo,omitempty"`        // Use the sample profile and job posting
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Scraping and extraction
	ScrapeAttempts   int      `json:"scrape_attempts,omitempty"`    // Attempts per scrape (>= 2)
	ScrapeBackoff    string   `json:"scrape_backoff,omitempty"`     // Base delay between attempts, e.g. "1s"
	MinContentLength int      `json:"min_content_length,omitempty"` // Shortest scraped text worth extracting
	JobURLSubstrings []string `json:"job_url_substrings,omitempty"` // Extra substrings accepted in job URLs

	// Server
	Port              int `json:"port,omitempty"`
	MaxConcurrentRuns int `json:"max_concurrent_runs,omitempty"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Template:          rendering.DefaultTemplate,
		ScrapeAttempts:    ingestion.DefaultAttempts,
		ScrapeBackoff:     ingestion.DefaultBaseDelay.String(),
		MinContentLength:  parsing.DefaultMinContentLength,
		Port:              DefaultPort,
		MaxConcurrentRuns: DefaultMaxConcurrentRuns,
	}
}

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
	if c.ScrapeAttempts < 0 || c.ScrapeAttempts == 1 {
		return fmt.Errorf("config error: 'scrape_attempts' must be at least 2")
	}
	if c.MinContentLength < 0 {
		return fmt.Errorf("config error: 'min_content_length' must be non-negative")
	}
	if c.MaxConcurrentRuns < 0 {
		return fmt.Errorf("config error: 'max_concurrent_runs' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.ScrapeBackoff != "" {
		d, err := time.ParseDuration(c.ScrapeBackoff)
		if err != nil {
			return fmt.Errorf("config error: invalid 'scrape_backoff': %w", err)
		}
		if d < 0 {
			return fmt.Errorf("config error: 'scrape_backoff' must be non-negative")
		}
	}

	if c.Template != "" {
		if _, ok := rendering.Lookup(c.Template); !ok {
			return fmt.Errorf("config error: unknown template: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ProfileURL == "" {
		result.ProfileURL = defaults.ProfileURL
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ScrapeBackoff == "" {
		result.ScrapeBackoff = defaults.ScrapeBackoff
	}

	// Int fields: use default if zero
	if result.ScrapeAttempts == 0 {
		result.ScrapeAttempts = defaults.ScrapeAttempts
	}
	if result.MinContentLength == 0 {
		result.MinContentLength = defaults.MinContentLength
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxConcurrentRuns == 0 {
		result.MaxConcurrentRuns = defaults.MaxConcurrentRuns
	}

	// Substrings add up rather than replace
	if len(defaults.JobURLSubstrings) > 0 {
		result.JobURLSubstrings = append(append([]string(nil), defaults.JobURLSubstrings...), result.JobURLSubstrings...)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv fills empty fields from the environment.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.Port == 0 {
		c.Port = envInt(EnvPort)
	}
	if c.MaxConcurrentRuns == 0 {
		c.MaxConcurrentRuns = envInt(EnvMaxConcurrentRuns)
	}
}

// Backoff returns ScrapeBackoff as a duration, or the default when unset or invalid.
func (c *Config) Backoff() time.Duration {
	if d, err := time.ParseDuration(c.ScrapeBackoff); err == nil && d >= 0 {
		return d
	}
	return ingestion.DefaultBaseDelay
}

// JobURLMatcher returns the job URL allow-list extended with JobURLSubstrings.
func (c *Config) JobURLMatcher() *validation.JobURLMatcher {
	return validation.DefaultJobURLMatcher().WithSubstrings(c.JobURLSubstrings...)
}

func envInt(key string) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return 0
}
