package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"fintrack/internal/log"
)

type Config struct {
	// Store selection
	StoreBackend string

	// SQLite
	SQLiteDBPath string

	// Memory store: seed directory and size bound in bytes, 0 for none
	DataDir         string
	StoreQuotaBytes int

	LogLevel string

	// Report defaults
	ReportPeriod int
	TopN         int
	RecentN      int
}

func Load() *Config {
	return &Config{
		StoreBackend: getEnv("STORE_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),

		DataDir:         getEnv("DATA_DIR", "data"),
		StoreQuotaBytes: getEnvInt("STORE_QUOTA_BYTES", 5<<20),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		ReportPeriod: getEnvInt("REPORT_PERIOD", 6),
		TopN:         getEnvInt("TOP_N", 10),
		RecentN:      getEnvInt("RECENT_N", 5),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	if !slices.Contains(validBackends, c.StoreBackend) {
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of %v", c.StoreBackend, validBackends))
	}

	if c.StoreBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.StoreBackend == "memory" && c.StoreQuotaBytes < 0 {
		errors = append(errors, fmt.Sprintf("invalid store quota %d: must be 0 or positive", c.StoreQuotaBytes))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	switch c.ReportPeriod {
	case 3, 6, 12:
	default:
		errors = append(errors, fmt.Sprintf("invalid report period %d: must be 3, 6 or 12", c.ReportPeriod))
	}

	if c.TopN < 1 {
		errors = append(errors, fmt.Sprintf("invalid top N %d: must be at least 1", c.TopN))
	}
	if c.RecentN < 1 {
		errors = append(errors, fmt.Sprintf("invalid recent N %d: must be at least 1", c.RecentN))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
