package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "tally"

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// Environment variables that override the config file
const (
	DataDirEnvVar  = "TALLY_DATA"
	StoreEnvVar    = "TALLY_STORE"
	LogLevelEnvVar = "TALLY_LOG_LEVEL"
)

// DefaultStore is the backend used when none is configured
const DefaultStore = StoreSQLite

// Config holds the settings shared by every tally front end
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Store    string `yaml:"store"`
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration from defaults, then the YAML config file
// (when present), then environment variables.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		DataDir: DefaultDataDir(),
		Store:   DefaultStore,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if env := os.Getenv(DataDirEnvVar); env != "" {
		cfg.DataDir = env
	}
	if env := os.Getenv(StoreEnvVar); env != "" {
		cfg.Store = env
	}
	if env := os.Getenv(LogLevelEnvVar); env != "" {
		cfg.LogLevel = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store backend name
func (c *Config) Validate() error {
	switch c.Store {
	case StoreSQLite, StoreFile, StoreMemory:
		return nil
	default:
		return fmt.Errorf("unknown store %q (expected %s, %s or %s)", c.Store, StoreSQLite, StoreFile, StoreMemory)
	}
}

// Save writes the configuration to path as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the location of the YAML config file:
// $XDG_CONFIG_HOME/tally/config.yaml or $HOME/.config/tally/config.yaml
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.yaml"), nil
}

// DefaultDataDir returns $XDG_DATA_HOME/tally or $HOME/.local/share/tally
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

// LogPath returns where the TUI writes its log
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "tally.log")
}
