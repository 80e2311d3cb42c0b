package config

import "time"

// Config holds runtime settings for the medioambiente CLI.
//
// Fields:
//   - APIBaseURL: base URL of the ministry portal REST API.
//   - DatabasePath: SQLite file holding the local credential store.
//   - KeyPath: file holding the per-installation sealing key.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	KeyPath        string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://adamix.net/medioambiente"
	c.DatabasePath = "medioambiente.db"
	c.KeyPath = "medioambiente.key"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
