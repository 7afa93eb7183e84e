// Package config defines the focus daemon's on-disk configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// DefaultPath is where the installer bootstraps the configuration and where
// the daemon reads it from.
const DefaultPath = "/etc/focus/config.json"

// Rule is a single blocking rule: a domain and the daily time window during
// which it applies. ExceptionUntil marks a temporary allowance that expires
// at the given instant.
type Rule struct {
	Domain         string     `json:"domain"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	ExceptionUntil *time.Time `json:"exception_until,omitempty"`
}

// Config is the daemon's configuration file content.
type Config struct {
	Rules []Rule `json:"rules"`
}

// Load reads the configuration file at path. A missing file is not an
// error: the daemon starts from an empty rule set until one is written.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}
