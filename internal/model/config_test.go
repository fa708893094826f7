package model_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/ghnotify/internal/model"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
	assert.Equal(t, "https://github.com", cfg.GitHub.WebBaseURL)
	assert.Equal(t, "GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	assert.Equal(t, "ghnotify", cfg.GitHub.UserAgent)
	assert.True(t, cfg.FetchOnStart)
	assert.Zero(t, cfg.PollInterval)
}

func TestLoadConfig_OverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
github:
  api_base_url: https://ghe.example.com/api/v3
  web_base_url: https://ghe.example.com
  token_env: GHE_TOKEN
fetch_on_start: false
poll_interval: 2m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := model.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.GitHub.APIBaseURL)
	assert.Equal(t, "https://ghe.example.com", cfg.GitHub.WebBaseURL)
	assert.Equal(t, "GHE_TOKEN", cfg.GitHub.TokenEnv)
	assert.Equal(t, "ghnotify", cfg.GitHub.UserAgent, "unset keys keep defaults")
	assert.False(t, cfg.FetchOnStart)
	assert.Equal(t, 2*time.Minute, cfg.PollInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_RejectsNegativeInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("poll_interval: -1s\n"), 0o600))

	_, err := model.LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll_interval")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github: [unclosed\n"), 0o600))

	_, err := model.LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfig_UnreadablePathIsAnError(t *testing.T) {
	// A directory exists but cannot be read as a file.
	_, err := model.LoadConfig(t.TempDir())

	assert.ErrorContains(t, err, "reading config")
}
