package backend

import (
	"errors"
	"fmt"

	"fintrack/internal/config"
)

// DefaultDataDirectory seeds the memory store when none is configured.
const DefaultDataDirectory = "data"

// FromAppConfig picks the store settings out of the application config.
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, errors.New("app config is nil")
	}
	c := Config{
		Type:          BackendType(appConfig.StoreBackend),
		SQLiteDBPath:  appConfig.SQLiteDBPath,
		DataDirectory: appConfig.DataDir,
		QuotaBytes:    appConfig.StoreQuotaBytes,
	}
	if !c.Type.IsValid() {
		return Config{}, fmt.Errorf("invalid backend type in config: %s", appConfig.StoreBackend)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Type {
	case SQLiteBackend:
		if c.SQLiteDBPath == "" {
			return errors.New("SQLite database path is required for sqlite backend")
		}
	case MemoryBackend:
		if c.QuotaBytes < 0 {
			return fmt.Errorf("memory quota cannot be negative: %d", c.QuotaBytes)
		}
	default:
		return fmt.Errorf("invalid backend type: %s", c.Type)
	}
	return nil
}

// BackendTypeStrings lists the accepted STORE_BACKEND values.
func BackendTypeStrings() []string {
	return []string{SQLiteBackend.String(), MemoryBackend.String()}
}
