package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the dashboard-core configuration. Values come from the JSON
// config file, overridden by PROCTORGATE_* environment variables.
type Config struct {
	// Credential store settings
	UsersFile  string `json:"users_file" envconfig:"USERS_FILE"`
	SeedFile   string `json:"seed_file,omitempty" envconfig:"SEED_FILE"`
	SQLitePath string `json:"sqlite_path,omitempty" envconfig:"SQLITE_PATH"` // selects the sqlite store when set

	// Ingested data
	EventsFile string `json:"events_file,omitempty" envconfig:"EVENTS_FILE"`
	RisksFile  string `json:"risks_file,omitempty" envconfig:"RISKS_FILE"`

	// Detection config
	ThresholdsFile string `json:"thresholds_file,omitempty" envconfig:"THRESHOLDS_FILE"`

	// Logging settings
	AuditLogPath string `json:"audit_log_path,omitempty" envconfig:"AUDIT_LOG"`
	AuditMaxSize int64  `json:"audit_max_size,omitempty" envconfig:"AUDIT_MAX_SIZE"`
	AppLogLevel  string `json:"app_log_level,omitempty" envconfig:"LOG_LEVEL"`
}

// LoadConfig loads configuration from an optional JSON file, then applies
// environment overrides and defaults
func LoadConfig(path string, config *Config) error {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}

		// Convert relative paths to absolute based on config file location
		configDir := filepath.Dir(path)
		for _, p := range []*string{
			&config.UsersFile, &config.SeedFile, &config.SQLitePath,
			&config.EventsFile, &config.RisksFile, &config.ThresholdsFile,
			&config.AuditLogPath,
		} {
			if *p != "" && !filepath.IsAbs(*p) {
				*p = filepath.Join(configDir, *p)
			}
		}
	}

	if err := envconfig.Process("proctorgate", config); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	// Defaults for optional settings
	if config.UsersFile == "" && config.SQLitePath == "" {
		config.UsersFile = "proctor_users.json"
	}
	if config.ThresholdsFile == "" {
		config.ThresholdsFile = "thresholds.json"
	}
	if config.AppLogLevel == "" {
		config.AppLogLevel = "info"
	}

	return nil
}
