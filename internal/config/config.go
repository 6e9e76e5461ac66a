// Package config holds runtime settings for the BiteAI CLI.
package config

import "time"

// Config holds runtime settings.
//
// The latency fields simulate the network delay the web client showed on
// auth operations; they exist only so the UI can exercise loading states
// and can be set to zero.
type Config struct {
	DatabasePath string
	TokenSecret  string
	BcryptCost   int
	SessionTTL   time.Duration

	RegisterDelay time.Duration
	LoginDelay    time.Duration
	LogoutDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "biteai.db"
	c.TokenSecret = "biteai-local-secret"
	c.BcryptCost = 10
	c.SessionTTL = 7 * 24 * time.Hour
	c.RegisterDelay = 800 * time.Millisecond
	c.LoginDelay = 800 * time.Millisecond
	c.LogoutDelay = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
