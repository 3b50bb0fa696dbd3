package backend

import (
	"context"
	"fmt"

	"fintrack/internal/kv/memory"
	"fintrack/internal/log"
	"fintrack/internal/storage"
)

type constructor func(f *DefaultFactory, ctx context.Context, config Config) (*BackendResult, error)

var constructors = map[BackendType]constructor{
	SQLiteBackend: (*DefaultFactory).openSQLite,
	MemoryBackend: (*DefaultFactory).openMemory,
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory. A nil logger discards output.
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{logger: logger.WithComponent(log.ComponentBackend)}
}

// CreateBackend validates config and opens the selected store.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	open, ok := constructors[config.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	return open(f, ctx, config)
}

func (f *DefaultFactory) openSQLite(ctx context.Context, config Config) (*BackendResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.logger)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	version, _, err := storage.SchemaVersion(config.SQLiteDBPath)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	keys, err := repo.Keys(ctx)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	f.logger.Info("Opened SQLite store",
		log.FieldPath, config.SQLiteDBPath, log.FieldSchemaVersion, version, log.FieldCount, len(keys))
	return &BackendResult{Store: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) openMemory(_ context.Context, config Config) (*BackendResult, error) {
	dir := config.DataDirectory
	if dir == "" {
		dir = DefaultDataDirectory
	}
	store, err := memory.NewFromDir(dir, config.QuotaBytes)
	if err != nil {
		return nil, fmt.Errorf("open memory store: %w", err)
	}
	f.logger.Info("Opened memory store", log.FieldPath, dir, "quota_bytes", config.QuotaBytes, "used_bytes", store.Used())
	return &BackendResult{Store: store}, nil
}
