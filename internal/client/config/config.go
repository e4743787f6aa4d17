// Package config handles configuration for the client: defaults, an
// optional JSON overlay, and command-line flags, in that order.
package config

import "time"

// Config holds runtime settings for the SkillBridge client.
//
// Fields:
//   - StorePath: path to the SQLite file backing the durable store.
//   - ServerURL: base URL of the auth backend; empty means the local
//     credential store handles auth (the primary variant).
//   - RequestTimeout: per-request timeout for backend calls.
type Config struct {
	StorePath      string
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "skillbridge.db"
	c.ServerURL = ""
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
