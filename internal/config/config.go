// Package config resolves the tally configuration from, in order of
// precedence: environment variables, an optional ~/.tally/config.yaml, and
// built-in defaults. A .env file in the working directory is honored.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr is the listen address of `tally serve`.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`
	// APIBase is where the client half reaches the server.
	APIBase string `yaml:"api_base"`
	// Timezone is the IANA name every "today" computation uses. Empty
	// means the system's local timezone.
	Timezone string `yaml:"timezone"`

	loc *time.Location
}

func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Addr:    ":8787",
		DBPath:  filepath.Join(home, ".tally", "tally.db"),
		APIBase: "http://localhost:8787",
		loc:     time.Local,
	}
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(home, ".tally", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("TALLY_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TALLY_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TALLY_API"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("TALLY_TZ"); v != "" {
		cfg.Timezone = v
	}

	if err := cfg.resolveLocation(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolveLocation() error {
	if c.Timezone == "" {
		c.loc = time.Local
		return nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("resolving timezone %q: %w", c.Timezone, err)
	}
	c.loc = loc
	return nil
}

// Location is the process-wide timezone, resolved once at load time.
func (c *Config) Location() *time.Location {
	if c.loc == nil {
		return time.Local
	}
	return c.loc
}

// TestConfig returns a configuration rooted in a test directory, pinned to
// UTC so day boundaries are deterministic.
func TestConfig(testDir string) *Config {
	return &Config{
		Addr:     "127.0.0.1:0",
		DBPath:   filepath.Join(testDir, "tally.db"),
		APIBase:  "http://127.0.0.1:8787",
		Timezone: "UTC",
		loc:      time.UTC,
	}
}
