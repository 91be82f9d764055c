package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkuleshov/emgtrack/internal/flagx"
	"github.com/dkuleshov/emgtrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the session TTL either as
// a string like "720h" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DataDir       string         `json:"data_dir"`
	Backend       string         `json:"backend"`
	Digest        string         `json:"digest"`
	SessionSecret string         `json:"session_secret"`
	SessionTTL    timex.Duration `json:"session_ttl"`
	SampleRate    int            `json:"sample_rate"`
	LatestLimit   int            `json:"latest_limit"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flags via flagx.JSONConfigFlags; if no
// path is given, nothing is loaded. Only fields present in the JSON override
// the Config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.Backend != "" {
		cfg.Backend = jc.Backend
	}
	if jc.Digest != "" {
		cfg.Digest = jc.Digest
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.SampleRate != 0 {
		cfg.SampleRate = jc.SampleRate
	}
	if jc.LatestLimit != 0 {
		cfg.LatestLimit = jc.LatestLimit
	}
}
