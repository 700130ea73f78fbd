// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for scamguard configuration and data.
	DefaultConfigDir = ".scamguard"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryFile is the default history database file name.
	DefaultHistoryFile = "history.db"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Classifier ClassifierConfig `yaml:"classifier,omitempty"`
	Embedder   EmbedderConfig   `yaml:"embedder,omitempty"`
	History    HistoryConfig    `yaml:"history,omitempty"`
	Index      IndexConfig      `yaml:"index,omitempty"`
	Server     ServerConfig     `yaml:"server,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
}

// ClassifierConfig holds configuration for the remote text classifier.
type ClassifierConfig struct {
	Provider string `yaml:"provider,omitempty"`
	// Endpoint is the base URL of an OpenAI-compatible chat completions API.
	Endpoint string        `yaml:"endpoint,omitempty"`
	Model    string        `yaml:"model,omitempty"`
	APIKey   string        `yaml:"api_key,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
}

// EmbedderConfig holds configuration for the embedding provider.
type EmbedderConfig struct {
	Endpoint string `yaml:"endpoint,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// HistoryConfig holds configuration for the persisted scan history.
type HistoryConfig struct {
	// Path is the SQLite file. Empty means <config dir>/history.db.
	Path string `yaml:"path,omitempty"`
}

// IndexConfig holds configuration for the Qdrant similar-scan index.
type IndexConfig struct {
	Enabled    bool   `yaml:"enabled,omitempty"`
	Host       string `yaml:"host,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	Collection string `yaml:"collection,omitempty"`
	APIKey     string `yaml:"api_key,omitempty"`
}

// ServerConfig holds configuration for the local HTTP API.
type ServerConfig struct {
	Addr           string   `yaml:"addr,omitempty"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
	// RateLimit is scan submissions per second; Burst is the bucket size.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	Burst     int     `yaml:"burst,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Provider: "deepseek",
			Endpoint: "https://api.deepseek.com/v1",
			Model:    "deepseek-chat",
			Timeout:  30 * time.Second,
		},
		Embedder: EmbedderConfig{
			Model: "text-embedding-3-small",
		},
		Index: IndexConfig{
			Enabled:    false,
			Host:       "localhost",
			Port:       6334,
			Collection: "scamguard_scans",
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8787",
			AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
			RateLimit:      1,
			Burst:          5,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load loads configuration from the .scamguard directory in the given path.
// A missing config file is not an error: defaults and environment overrides apply.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.History.Path == "" {
		cfg.History.Path = HistoryPath(basePath)
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := firstEnv("SCAMGUARD_API_KEY", "DEEPSEEK_API_KEY", "OPENAI_API_KEY"); key != "" {
		if c.Classifier.APIKey == "" {
			c.Classifier.APIKey = key
		}
	}
	if key := firstEnv("SCAMGUARD_EMBEDDER_API_KEY", "OPENAI_API_KEY"); key != "" {
		if c.Embedder.APIKey == "" {
			c.Embedder.APIKey = key
		}
	}
	if endpoint := os.Getenv("SCAMGUARD_ENDPOINT"); endpoint != "" {
		c.Classifier.Endpoint = endpoint
	}
	if key := os.Getenv("QDRANT_API_KEY"); key != "" {
		if c.Index.APIKey == "" {
			c.Index.APIKey = key
		}
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ConfigDir returns the path to the .scamguard config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// HistoryPath returns the default history database path.
func HistoryPath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultHistoryFile)
}
