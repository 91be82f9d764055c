// Package config handles configuration for the EMG tracker CLI,
// including defaults, environment variables, JSON overlay, and
// command-line flags.
package config

import "time"

// Storage backend selectors.
const (
	BackendFile = "file"
	BackendKV   = "kv"
)

// Config holds runtime settings for the tracker.
//
// Fields:
//   - DataDir: directory holding the JSON record files and the sqlite database.
//   - Backend: record store backend, "file" or "kv".
//   - Digest: password digest algorithm, "legacy" or "bcrypt".
//   - SessionSecret: HMAC secret for signing the session slot (HS256).
//   - SessionTTL: lifetime of a persisted session. Zero means no expiry.
//   - SampleRate: simulated sensor sampling rate in Hz.
//   - LatestLimit: default number of readings returned by latest-readings queries.
type Config struct {
	DataDir       string
	Backend       string
	Digest        string
	SessionSecret string
	SessionTTL    time.Duration
	SampleRate    int
	LatestLimit   int
}

// LoadDefaults populates c with sensible defaults.
// NOTE: SessionSecret is insecure and should be overridden outside development.
func (c *Config) LoadDefaults() {
	c.DataDir = "emg_db"
	c.Backend = BackendFile
	c.Digest = "legacy"
	c.SessionSecret = "secretKey"
	c.SessionTTL = 0
	c.SampleRate = 1000
	c.LatestLimit = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// environment variables, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
