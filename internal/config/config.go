package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultDataDir = "~/.stockbox"
	defaultDBName  = "inventory.db"
	defaultLevel   = "info"
)

// Config represents the application configuration
type Config struct {
	Database    Database    `yaml:"database"`
	Log         Log         `yaml:"log"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// Database selects the storage backend. For sqlite the file lives at Dir/Name
// unless URL is set; postgres always connects through URL.
type Database struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
}

// Log configures the file logger
type Log struct {
	Level string `yaml:"level"`
}

// Default returns a config with every field set to its default value
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DataDir returns the storage directory with a leading ~ expanded
func (d Database) DataDir() (string, error) {
	return expandHome(d.Dir)
}

// Path returns the sqlite database file path
func (d Database) Path() (string, error) {
	dir, err := d.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, d.Name), nil
}

// Validate checks the driver and the settings it depends on
func (d Database) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.URL == "" && d.Name == "" {
			return fmt.Errorf("database name is required for the %s driver", d.Driver)
		}
	case DriverPostgres:
		if d.URL == "" {
			return fmt.Errorf("database url is required for the %s driver", d.Driver)
		}
	default:
		return fmt.Errorf("unsupported database driver %q", d.Driver)
	}
	return nil
}

// SlogLevel converts the configured level name, falling back to info
func (l Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// loadThemeFile loads and merges theme from STOCKBOX_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("STOCKBOX_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with STOCKBOX_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("STOCKBOX_DB_DRIVER"); v != "" {
		c.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("STOCKBOX_DB_DIR"); v != "" {
		c.Database.Dir = v
	}
	if v := os.Getenv("STOCKBOX_DB_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("STOCKBOX_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(&config)
	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Database.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "stockbox", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "stockbox", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Dir == "" {
		c.Database.Dir = defaultDataDir
	}
	if c.Database.Name == "" {
		c.Database.Name = defaultDBName
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}
	c.ColorScheme.ApplyDefaults()
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
