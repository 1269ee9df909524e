package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/h1v3-io/mcp-teamviewer/internal/teamviewer"
)

// Environment variables read at startup.
const (
	EnvToken    = "TEAMVIEWER_API_TOKEN"
	EnvBaseURL  = "TEAMVIEWER_API_URL"
	EnvLogLevel = "TEAMVIEWER_LOG_LEVEL"
)

// Config holds process configuration. It is read once from the environment
// at startup and immutable for the process lifetime.
type Config struct {
	Token    string
	BaseURL  string
	LogLevel string
}

// LoadFromEnv builds a Config from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Token:    os.Getenv(EnvToken),
		BaseURL:  getenv(EnvBaseURL, teamviewer.DefaultBaseURL),
		LogLevel: getenv(EnvLogLevel, "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks for required fields.
func (c *Config) Validate() error {
	var errs []string

	if c.Token == "" {
		errs = append(errs, EnvToken+" is required. Create a Script Token in the "+
			"TeamViewer Management Console under Edit Profile > Apps > Create Script Token.")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("%s: %v", EnvLogLevel, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// SlogLevel returns the configured log level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
