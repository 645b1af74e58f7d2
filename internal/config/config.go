// Package config reads the optional dsmcp configuration file.
//
// The file lives at $XDG_CONFIG_HOME/dsmcp/config.yaml (or wherever
// DSMCP_CONFIG points) and is never written by dsmcp. A missing file is not
// an error: every field has a usable default.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dsmcp/internal/logging"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "dsmcp" // application name used for config directory

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DSMCP_CONFIG"

// Config holds user configuration for dsmcp.
type Config struct {
	// RepoRoot replaces the install-dir derivation of the design-system root.
	// The --repo-root flag and DSMCP_REPO_ROOT both take precedence.
	RepoRoot string `yaml:"repo_root"`
	// LogLevel is one of debug, info, warn, error. Empty means warn.
	LogLevel string `yaml:"log_level"`
}

// ConfigPath returns the config file location for the current platform.
func ConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{}
}

// Load reads the config from ConfigPath. A missing file yields DefaultConfig.
func Load() (Config, error) {
	path := ConfigPath()
	cfg, err := LoadFrom(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.GetDefault().Debug("No config file, using defaults", "path", path)
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFrom reads and validates the config at path. Unknown keys are rejected
// so a misspelt option does not silently fall back to its default.
func LoadFrom(path string) (Config, error) {
	logging.GetDefault().Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
		}
	}
	return nil
}
