// Package config loads runtime configuration for the EMG tracker.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-b string   storage backend, "file" or "kv"
//	-g string   password digest algorithm
//	-n int      latest-readings limit
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the session TTL, so values can be
// either strings like "720h" or integer nanoseconds:
//
//	{
//	  "data_dir": "emg_db",
//	  "backend": "file",
//	  "session_ttl": "720h"
//	}
package config
