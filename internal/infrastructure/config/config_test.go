package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromDir(t *testing.T, dir string) (*Config, error) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFromDir(t, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "dropship-bridge", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
	assert.Equal(t, 30, cfg.Provider.SubmitTimeoutSeconds)
	assert.Equal(t, 10, cfg.Provider.ProbeTimeoutSeconds)
	assert.False(t, cfg.Provider.HasCredentials())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[app]
name = "bridge-test"
port = "9090"

[log]
level = "debug"
format = "console"

[provider]
username = "merchant"
password = "secret"
base_url = "https://provider.example.com"
submit_timeout_seconds = 45
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := loadFromDir(t, dir)

	require.NoError(t, err)
	assert.Equal(t, "bridge-test", cfg.App.Name)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "merchant", cfg.Provider.Username)
	assert.Equal(t, "https://provider.example.com", cfg.Provider.BaseURL)
	assert.Equal(t, 45, cfg.Provider.SubmitTimeoutSeconds)
	assert.True(t, cfg.Provider.HasCredentials())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DROPSHIP_PROVIDER_USERNAME", "env-user")
	t.Setenv("DROPSHIP_PROVIDER_PASSWORD", "env-pass")
	t.Setenv("DROPSHIP_APP_PORT", "7070")

	cfg, err := loadFromDir(t, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.Provider.Username)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.True(t, cfg.Provider.HasCredentials())
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	content := `
[log]
level = "verbose"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	_, err := loadFromDir(t, dir)

	assert.Error(t, err)
}

func TestLoad_MissingCredentialsIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	content := `
[provider]
base_url = "https://provider.example.com"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := loadFromDir(t, dir)

	require.NoError(t, err)
	assert.False(t, cfg.Provider.HasCredentials())
	assert.Equal(t, "https://provider.example.com", cfg.Provider.BaseURL)
}
