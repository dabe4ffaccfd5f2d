package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/quill/internal/mdoc"
)

// FileName is the config file name inside Dir().
const FileName = "config.yaml"

// Environment variables that override config file values.
const (
	EnvJournalDir = "QUILL_JOURNAL_DIR"
	EnvDatabase   = "QUILL_DATABASE"
	EnvTimezone   = "QUILL_TIMEZONE"
)

// Config is the contents of config.yaml.
type Config struct {
	// JournalDir holds YYYY/MM/YYYY-MM-DD.json entry files.
	JournalDir string `yaml:"journal_dir"`
	// Database is the journal app's SQLite file. When set it takes
	// precedence over JournalDir.
	Database string `yaml:"database,omitempty"`
	// Timezone is an IANA name used to decide "today". Empty means local.
	Timezone     string `yaml:"timezone,omitempty"`
	PreviewChars int    `yaml:"preview_chars,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default(configDir string) *Config {
	return &Config{
		JournalDir:   filepath.Join(configDir, "journal"),
		PreviewChars: mdoc.DefaultPreviewChars,
		LogLevel:     "warn",
	}
}

// Load reads <configDir>/config.yaml over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	cfg := Default(configDir)
	path := filepath.Join(configDir, FileName)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvJournalDir); v != "" {
		c.JournalDir = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Database = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		c.Timezone = v
	}
}

func (c *Config) normalize() {
	c.JournalDir = ExpandHome(strings.TrimSpace(c.JournalDir))
	c.Database = ExpandHome(strings.TrimSpace(c.Database))
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.PreviewChars <= 0 {
		c.PreviewChars = mdoc.DefaultPreviewChars
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
}

// Validate checks that the timezone can be loaded.
func (c *Config) Validate() error {
	if _, err := LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}
