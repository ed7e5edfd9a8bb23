// Package config holds runtime settings for the LankaList terminal client.
//
// Values are layered: built-in defaults, then environment (optionally loaded
// from a .env file), then an optional JSON config file, then command-line
// flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the marketplace client.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace HTTP API, no trailing slash.
//   - RequestTimeout: per-request timeout for API calls.
//   - StateDir: directory for locally persisted client state (session DB).
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDir       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.StateDir = "."
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
