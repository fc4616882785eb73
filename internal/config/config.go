// Package config holds process-level settings, read from the environment.
// Statement-format knowledge lives in statement.Profile, not here.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces the environment variables, e.g. STATLEDGER_BUCKET.
const envPrefix = "statledger"

// Settings are the tunable knobs of a pipeline run.
type Settings struct {
	Bucket       string        `envconfig:"BUCKET" default:"statements"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:"uploads"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"3s"`
	PageSize     int           `envconfig:"PAGE_SIZE" default:"1000"`
	ScanWidth    int           `envconfig:"SCAN_WIDTH" default:"20"`
	RunLog       string        `envconfig:"RUN_LOG" default:"logs/run-log.csv"`
}

// FromEnv loads Settings from STATLEDGER_* environment variables, falling
// back to defaults.
func FromEnv() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(envPrefix, &s); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &s, nil
}
