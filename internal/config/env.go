package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names recognized by parseEnv.
const (
	envAPIBaseURL   = "MEDIOAMBIENTE_API_URL"
	envDatabasePath = "MEDIOAMBIENTE_DB_PATH"
	envKeyPath      = "MEDIOAMBIENTE_KEY_PATH"
	envTimeout      = "MEDIOAMBIENTE_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. Unset variables
// leave the Config untouched; a malformed timeout is ignored rather than
// aborting startup.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envAPIBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(envDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := os.LookupEnv(envKeyPath); ok && v != "" {
		cfg.KeyPath = v
	}
	if v, ok := os.LookupEnv(envTimeout); ok && v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
