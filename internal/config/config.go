// Package config provides configuration loading and validation for the CLI
// and the content server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/site-content/internal/logging"
	"github.com/jonathan/site-content/internal/robots"
)

// Environment variables that override file values.
const (
	EnvBaseURL    = "SITE_BASE_URL"
	EnvContentDir = "SITE_CONTENT_DIR"
	EnvPort       = "SITE_PORT"
	EnvLogLevel   = "LOG_LEVEL"
)

// DefaultPort is used by the server when no port is configured.
const DefaultPort = 8080

// Config represents the configuration that can be loaded from a JSON or YAML
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// BaseURL is the canonical origin used in sitemap and structured data.
	// Defaults to the url in the site config document.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	// ContentDir holds the backing documents. Empty means the bundled content.
	ContentDir string `json:"content_dir,omitempty" yaml:"content_dir,omitempty"`
	// Port is the HTTP listen port for serve.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
	// StaticPaths replaces the default static route list when non-empty.
	StaticPaths []string `json:"static_paths,omitempty" yaml:"static_paths,omitempty"`

	Log logging.Config `json:"log,omitempty" yaml:"log,omitempty"`
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension (.yaml and .yml are YAML, anything else JSON).
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBaseURL); ok && v != "" {
		c.BaseURL = v
	}
	if v, ok := lookup(EnvContentDir); ok && v != "" {
		c.ContentDir = v
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'base_url' must be an absolute URL, got %q", c.BaseURL)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("config error: 'base_url' must use http or https, got %q", u.Scheme)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	crawl := robots.Build("")
	for _, p := range c.StaticPaths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("config error: static path %q must start with /", p)
		}
		// "/private" is caught through "/private/".
		if crawl.Blocks(p) || crawl.Blocks(strings.TrimRight(p, "/")+"/") {
			return fmt.Errorf("config error: static path %q is disallowed by the crawl directives", p)
		}
	}

	// Validate file paths exist (if specified)
	if c.ContentDir != "" {
		info, err := os.Stat(c.ContentDir)
		if err != nil {
			return fmt.Errorf("config error: content directory not found: %s", c.ContentDir)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: content_dir is not a directory: %s", c.ContentDir)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Log.Level)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.ContentDir == "" {
		result.ContentDir = defaults.ContentDir
	}
	if result.Port == 0 {
		if defaults.Port > 0 {
			result.Port = defaults.Port
		} else {
			result.Port = DefaultPort
		}
	}
	if len(result.StaticPaths) == 0 {
		result.StaticPaths = defaults.StaticPaths
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if len(result.Log.OutputPaths) == 0 {
		result.Log.OutputPaths = defaults.Log.OutputPaths
	}
	result.Log.Development = result.Log.Development || defaults.Log.Development

	return result
}
