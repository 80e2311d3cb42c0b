// Package config loads runtime configuration for the medioambiente CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the portal API
//	-d string   path to the credential store database
//	-k string   path to the sealing key file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://adamix.net/medioambiente",
//	  "database_path": "medioambiente.db",
//	  "key_path": "medioambiente.key",
//	  "request_timeout": "15s"
//	}
package config
