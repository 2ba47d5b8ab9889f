package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultServerName, cfg.Server.Name)
	assert.Equal(t, DefaultServerVersion, cfg.Server.Version)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultServerName, cfg.Server.Name)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "author-style.yaml")
	data := []byte(`
server:
  name: style-lab
  version: 2.0.0
logging:
  level: debug
  development: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "style-lab", cfg.Server.Name)
	assert.Equal(t, "2.0.0", cfg.Server.Version)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	// Fields absent from the file keep their defaults.
	assert.NotEmpty(t, cfg.Server.Description)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-level.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: chatty\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTHOR_STYLE_SERVER_NAME", "style-from-env")
	t.Setenv("AUTHOR_STYLE_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "author-style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  name: from-file\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "style-from-env", cfg.Server.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("AUTHOR_STYLE_SERVER_NAME", "style-from-env")
	t.Setenv("AUTHOR_STYLE_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "style-from-env", cfg.Server.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestInvalidEnvLevelWithoutFile(t *testing.T) {
	t.Setenv("AUTHOR_STYLE_LOG_LEVEL", "chatty")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoadDisabledTools(t *testing.T) {
	path := filepath.Join(t.TempDir(), "author-style.yaml")
	data := []byte("tools:\n  disabled:\n    - find_style_extremes\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"find_style_extremes"}, cfg.Tools.Disabled)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Name = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.Version = ""
	assert.Error(t, cfg.Validate())
}
