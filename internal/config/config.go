package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/ecolab-dev/ecolab/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "ecolab.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = "localhost:3800"

	// DefaultIdleTimeout is how long an inactive session survives
	// before eviction.
	DefaultIdleTimeout = 30 * time.Minute
)

// Config is the complete ecolab.json configuration.
type Config struct {
	// Addr is the host:port the server listens on.
	Addr string `json:"addr,omitempty"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"logLevel,omitempty"`

	// IdleTimeout is the session idle eviction window, e.g. "30m".
	IdleTimeout string `json:"idleTimeout,omitempty"`

	// Seed drives the simulator's random generator. 0 means derive a
	// seed from the clock at startup.
	Seed uint64 `json:"seed,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Addr:        DefaultAddr,
		LogLevel:    "info",
		IdleTimeout: DefaultIdleTimeout.String(),
	}
}

// Load reads path and overlays it on the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Newf("E900", errors.CategoryConfig, "reading %s", path).Wrap(err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Newf("E901", errors.CategoryConfig, "parsing %s", path).
			WithSuggestion("check the file for JSON syntax errors").
			Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values after defaults are applied.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("E902", errors.CategoryConfig, "addr must not be empty")
	}
	if _, err := time.ParseDuration(c.IdleTimeout); err != nil {
		return errors.Newf("E903", errors.CategoryConfig, "invalid idleTimeout %q", c.IdleTimeout).
			WithSuggestion(`use a Go duration such as "30m" or "1h"`).
			Wrap(err)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("E904", errors.CategoryConfig, "invalid logLevel %q", c.LogLevel)
	}
	return nil
}

// SessionIdleTimeout returns the parsed idle eviction window.
func (c *Config) SessionIdleTimeout() time.Duration {
	d, err := time.ParseDuration(c.IdleTimeout)
	if err != nil {
		return DefaultIdleTimeout
	}
	return d
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
