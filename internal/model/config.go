package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// GitHubConfig holds the endpoints and identity used for API calls.
type GitHubConfig struct {
	// APIBaseURL is the REST API root (https://api.github.com, or
	// https://HOST/api/v3 for GitHub Enterprise Server).
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`

	// WebBaseURL is the browser-facing root used when opening entries.
	WebBaseURL string `mapstructure:"web_base_url" yaml:"web_base_url"`

	// UserAgent is sent on every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`

	// TokenEnv names the environment variable holding the token.
	TokenEnv string `mapstructure:"token_env" yaml:"token_env"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	GitHub GitHubConfig `mapstructure:"github" yaml:"github"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`

	// FetchOnStart triggers a fetch as soon as the UI starts.
	FetchOnStart bool `mapstructure:"fetch_on_start" yaml:"fetch_on_start"`

	// PollInterval re-fetches periodically. Zero disables polling.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
}

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultWebBaseURL = "https://github.com"
	defaultUserAgent  = "ghnotify"
	defaultTokenEnv   = "GITHUB_TOKEN"
	defaultLogLevel   = "info"
)

// DefaultConfigPath returns ~/.config/ghnotify/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "ghnotify", "config.yaml")
}

// DefaultLogPath returns ~/.cache/ghnotify/ghnotify.log.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", "ghnotify.log")
	}
	return filepath.Join(dir, "ghnotify", "ghnotify.log")
}

// DefaultAppConfig returns the configuration used when no file exists.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		GitHub: GitHubConfig{
			APIBaseURL: defaultAPIBaseURL,
			WebBaseURL: defaultWebBaseURL,
			UserAgent:  defaultUserAgent,
			TokenEnv:   defaultTokenEnv,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
			File:  DefaultLogPath(),
		},
		FetchOnStart: true,
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration. Any
// other read failure is returned.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	def := DefaultAppConfig()
	v.SetDefault("github.api_base_url", def.GitHub.APIBaseURL)
	v.SetDefault("github.web_base_url", def.GitHub.WebBaseURL)
	v.SetDefault("github.user_agent", def.GitHub.UserAgent)
	v.SetDefault("github.token_env", def.GitHub.TokenEnv)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("fetch_on_start", def.FetchOnStart)
	v.SetDefault("poll_interval", def.PollInterval)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound) {
			return def, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations the client cannot work with.
func (c *AppConfig) Validate() error {
	if c.GitHub.APIBaseURL == "" {
		return errors.New("github.api_base_url must not be empty")
	}
	if c.GitHub.WebBaseURL == "" {
		return errors.New("github.web_base_url must not be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return errors.New("github.token_env must not be empty")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval must not be negative, got %s", c.PollInterval)
	}
	return nil
}
