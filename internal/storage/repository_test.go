package storage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"fintrack/internal/kv"
	"fintrack/internal/log"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "fintrack.db")
	repo, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestSQLiteRepository_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	if _, found, err := repo.Get(ctx, "transactions"); err != nil || found {
		t.Fatalf("expected absent key, found=%v err=%v", found, err)
	}

	if err := repo.Set(ctx, "transactions", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "transactions", `[{"id":"1"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, found, err := repo.Get(ctx, "transactions")
	if err != nil || !found || v != `[{"id":"1"}]` {
		t.Fatalf("unexpected get: v=%q found=%v err=%v", v, found, err)
	}

	if err := repo.Set(ctx, "budgets", "[]"); err != nil {
		t.Fatalf("set budgets: %v", err)
	}
	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "budgets" || keys[1] != "transactions" {
		t.Fatalf("unexpected keys %v", keys)
	}

	if err := repo.Remove(ctx, "transactions"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := repo.Get(ctx, "transactions"); found {
		t.Fatalf("expected key removed")
	}
}

func TestSQLiteRepository_EmptyValueIsNotAbsent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	if err := repo.Set(ctx, "goals", ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, found, err := repo.Get(ctx, "goals")
	if err != nil || !found || v != "" {
		t.Fatalf("expected present empty value, got v=%q found=%v err=%v", v, found, err)
	}
}

func TestSQLiteRepository_Reopen(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)
	if err := repo.Set(ctx, "budgets", `[{"id":"1","limit":500.00}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	repo.Close()

	// Migrations must be idempotent across reopen
	reopened, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, found, err := reopened.Get(ctx, "budgets")
	if err != nil || !found || v != `[{"id":"1","limit":500.00}]` {
		t.Fatalf("value not persisted: v=%q found=%v err=%v", v, found, err)
	}
}

func TestSQLiteRepository_UseAfterClose(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
	if _, _, err := repo.Get(ctx, "budgets"); !errors.Is(err, kv.ErrClosed) {
		t.Fatalf("expected ErrClosed from Get, got %v", err)
	}
	if err := repo.Set(ctx, "budgets", "[]"); !errors.Is(err, kv.ErrClosed) {
		t.Fatalf("expected ErrClosed from Set, got %v", err)
	}
}

func TestSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")
	if _, ok, err := SchemaVersion(path); err != nil || ok {
		t.Fatalf("fresh database should have no version, ok=%v err=%v", ok, err)
	}
	if err := RunMigrations(path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	v, ok, err := SchemaVersion(path)
	if err != nil || !ok || v != 1 {
		t.Fatalf("expected version 1, got v=%d ok=%v err=%v", v, ok, err)
	}
}

func TestSQLiteRepository_LogsWithStorageComponent(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelDebug, Component: log.ComponentBackend, Output: &buf})
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "logged.db"), logger)
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	defer repo.Close()

	if err := repo.Set(ctx, kv.KeyGoals, "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Remove(ctx, kv.KeyGoals); err != nil {
		t.Fatalf("remove: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "component=storage") || !strings.Contains(line, "key=goals") {
			t.Errorf("unexpected log line %q", line)
		}
		if strings.Contains(line, "component=backend") {
			t.Errorf("storage logs must not keep the caller's component: %q", line)
		}
	}
}
