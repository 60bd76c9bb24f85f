package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config keeps runtime settings for taskman.
type Config struct {
	DatabaseURL    string
	SessionFile    string
	AdminEmail     string
	AdminPassword  string
	RemindInterval time.Duration
	RemindAt       string // optional HH:MM; takes precedence over the interval
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("TASKMAN_DB")),
		SessionFile:    strings.TrimSpace(os.Getenv("TASKMAN_SESSION_FILE")),
		AdminEmail:     strings.TrimSpace(os.Getenv("TASKMAN_ADMIN_EMAIL")),
		AdminPassword:  os.Getenv("TASKMAN_ADMIN_PASSWORD"),
		RemindInterval: parseInterval(strings.TrimSpace(os.Getenv("TASKMAN_REMIND_INTERVAL_HOURS"))),
		RemindAt:       strings.TrimSpace(os.Getenv("TASKMAN_REMIND_AT")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskman.db"
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			cfg.SessionFile = ".taskman-session"
		} else {
			cfg.SessionFile = filepath.Join(home, ".taskman-session")
		}
	}

	if cfg.RemindInterval == 0 {
		cfg.RemindInterval = 24 * time.Hour
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
