package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigPath(t *testing.T) {
	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		xdg.Reload()
		t.Cleanup(xdg.Reload)

		assert.Equal(t, filepath.Join("/custom/config", "dsmcp", "config.yaml"), ConfigPath())
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "  /etc/dsmcp.yaml ")
		assert.Equal(t, "/etc/dsmcp.yaml", ConfigPath())
	})
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, "repo_root: ~/src/design-system\nlog_level: info\n")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "~/src/design-system", cfg.RepoRoot)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ReadsEnvPath(t *testing.T) {
	t.Setenv(EnvConfigPath, writeConfig(t, "repo_root: /srv/ds\n"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/ds", cfg.RepoRoot)
}

func TestConfigErrorHandling(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid yaml", "invalid: yaml: content: [", "failed to parse"},
		{"unknown key", "storage_dir: /tmp\n", "failed to parse"},
		{"bad log level", "log_level: chatty\n", "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("malformed file is not treated as missing", func(t *testing.T) {
		t.Setenv(EnvConfigPath, writeConfig(t, "log_level: [\n"))
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		assert.NoError(t, Config{LogLevel: level}.Validate(), level)
	}
	assert.Error(t, Config{LogLevel: "verbose"}.Validate())
}
