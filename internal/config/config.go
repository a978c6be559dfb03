// Package config loads the jump configuration file and resolves the
// directories jump keeps its data in.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

const (
	appName = "jump"

	// EnvConfig overrides the configuration file location.
	EnvConfig = "JUMP_CONFIG"
	// EnvLog overrides the log file location.
	EnvLog = "JUMP_LOG"
)

// Modes accepted by default_mode.
const (
	ModeBrowse = "browse"
	ModeFuzzy  = "fuzzy"
	ModeNumber = "number"
)

// Config is the user configuration.
type Config struct {
	ShowHidden  bool     `yaml:"show_hidden"`  // List dot-directories by default
	DefaultMode string   `yaml:"default_mode"` // browse, fuzzy or number
	Database    string   `yaml:"database"`     // SQLite file path
	LogFile     string   `yaml:"log_file"`
	LogLevel    string   `yaml:"log_level"`
	Exclude     []string `yaml:"exclude"`      // Globs for names never listed
	VisibleRows int      `yaml:"visible_rows"` // Fuzzy list height
	NumberLimit int      `yaml:"number_limit"` // Candidates offered in number mode
}

// Default returns the built-in configuration.
func Default() *Config {
	dataDir := DataDir()
	return &Config{
		ShowHidden:  false,
		DefaultMode: ModeFuzzy,
		Database:    filepath.Join(dataDir, "jump.db"),
		LogFile:     filepath.Join(dataDir, "jump.log"),
		LogLevel:    "warn",
		Exclude:     []string{},
		VisibleRows: 15,
		NumberLimit: 99,
	}
}

// Path returns the configuration file location: $JUMP_CONFIG, or
// config.yaml in the user configuration directory.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, "config.yaml")
}

// DataDir returns $XDG_DATA_HOME/jump or ~/.local/share/jump.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

// Load reads the configuration from Path.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the configuration at path. A missing file yields the
// defaults; unset keys keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.Database = expandHome(cfg.Database)
	cfg.LogFile = expandHome(cfg.LogFile)
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if p := os.Getenv(EnvLog); p != "" {
		c.LogFile = p
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.DefaultMode {
	case ModeBrowse, ModeFuzzy, ModeNumber:
	default:
		return fmt.Errorf("default_mode must be browse, fuzzy or number, got %q", c.DefaultMode)
	}
	if c.VisibleRows <= 0 {
		return fmt.Errorf("visible_rows must be positive, got %d", c.VisibleRows)
	}
	if c.NumberLimit <= 0 || c.NumberLimit > 999 {
		return fmt.Errorf("number_limit must be between 1 and 999, got %d", c.NumberLimit)
	}
	if c.Database == "" {
		return errors.New("database path must not be empty")
	}
	for _, p := range c.Exclude {
		if _, err := glob.Compile(p); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	return nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
