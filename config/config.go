package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration structure.
type Config struct {
	Trac    TracConfig   `json:"trac"`
	Server  ServerConfig `json:"server"`
	Source  SourceConfig `json:"source"`
	Cache   CacheConfig  `json:"cache"`
	Filters FilterConfig `json:"filters"`
	Output  OutputConfig `json:"output"`
}

// TracConfig holds the revision viewer and log endpoint settings.
type TracConfig struct {
	RevisionURL string `json:"revisionURL"` // Default: Blink viewvc
	LogEndpoint string `json:"logEndpoint"` // Default: /svnlog
}

// ServerConfig holds settings for fetching logs from a dashboard server.
type ServerConfig struct {
	BaseURL        string `json:"baseURL"` // Empty: read from the local repository
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Timeout returns the request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// SourceConfig holds settings for reading logs from a local repository.
type SourceConfig struct {
	RepoPath string `json:"repoPath"`
	Branch   string `json:"branch"`
	Backend  string `json:"backend"` // go-git or git
	Limit    int    `json:"limit"`
}

// CacheConfig holds range cache options.
type CacheConfig struct {
	MaxEntries int `json:"maxEntries"`
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// OutputConfig holds report defaults.
type OutputConfig struct {
	Format string `json:"format"`
	Top    int    `json:"top"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Trac: TracConfig{
			RevisionURL: "http://src.chromium.org/viewvc/blink",
			LogEndpoint: "/svnlog",
		},
		Server: ServerConfig{
			TimeoutSeconds: 30,
		},
		Source: SourceConfig{
			RepoPath: ".",
			Branch:   "HEAD",
			Backend:  "go-git",
			Limit:    100,
		},
		Cache: CacheConfig{
			MaxEntries: 64,
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "console",
			Top:    0,
		},
	}
}

// Validate checks values that would otherwise fail later with a less useful error.
func (c *Config) Validate() error {
	if c.Trac.RevisionURL == "" {
		return fmt.Errorf("trac.revisionURL must not be empty")
	}
	if c.Server.TimeoutSeconds < 0 {
		return fmt.Errorf("server.timeoutSeconds must not be negative, got %d", c.Server.TimeoutSeconds)
	}
	if c.Source.Limit < 0 {
		return fmt.Errorf("source.limit must not be negative, got %d", c.Source.Limit)
	}
	if c.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache.maxEntries must not be negative, got %d", c.Cache.MaxEntries)
	}
	switch c.Source.Backend {
	case "", "go-git", "git":
	default:
		return fmt.Errorf("source.backend must be go-git or git, got %q", c.Source.Backend)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".svnlog.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".svnlog.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".svnlog.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
