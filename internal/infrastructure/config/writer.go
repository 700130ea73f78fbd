package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# scamguard configuration

classifier:
  provider: deepseek
  endpoint: https://api.deepseek.com/v1
  model: deepseek-chat
  timeout: 30s
  # api_key: your-api-key (or set SCAMGUARD_API_KEY / DEEPSEEK_API_KEY env var)

history:
  # path: /custom/path/history.db (default: .scamguard/history.db)

# Optional similar-scan index backed by Qdrant.
index:
  enabled: false
  host: localhost
  port: 6334
  collection: scamguard_scans
  # api_key: your-api-key (for Qdrant Cloud)

embedder:
  model: text-embedding-3-small
  # api_key: your-api-key (or set OPENAI_API_KEY env var)

server:
  addr: 127.0.0.1:8787
  allowed_origins:
    - http://localhost:5173
  rate_limit: 1
  burst: 5

log:
  level: warn
  format: text
`

// WriteDefault creates the .scamguard directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := filepath.Join(configDir, DefaultConfigFile)

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a scamguard config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
