package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if one exists; real environment
// variables win over it.
//
// Recognized variables:
//
//	EMG_DATA_DIR        data directory
//	EMG_BACKEND         storage backend ("file" or "kv")
//	EMG_DIGEST          password digest algorithm
//	EMG_SESSION_SECRET  session signing secret
//	EMG_SESSION_TTL     session lifetime (e.g. "720h")
//	EMG_SAMPLE_RATE     sensor sampling rate in Hz
//	EMG_LATEST_LIMIT    default latest-readings limit
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("EMG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("EMG_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("EMG_DIGEST"); v != "" {
		cfg.Digest = v
	}
	if v := os.Getenv("EMG_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("EMG_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = d
		}
	}
	if v := os.Getenv("EMG_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SampleRate = n
		}
	}
	if v := os.Getenv("EMG_LATEST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LatestLimit = n
		}
	}
}
