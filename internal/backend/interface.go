// Package backend opens the kv.Store selected by configuration.
package backend

import (
	"context"

	"fintrack/internal/kv"
)

type CleanupFunc func() error

// BackendResult is an open store plus what to call when done with it.
type BackendResult struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Close runs Cleanup if there is one.
func (r *BackendResult) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

type Config struct {
	Type BackendType

	SQLiteDBPath string

	// Memory store seed directory and quota in bytes, 0 for none
	DataDirectory string
	QuotaBytes    int
}

type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	_, ok := constructors[bt]
	return ok
}
