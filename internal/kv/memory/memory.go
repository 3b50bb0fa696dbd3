package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fintrack/internal/kv"
)

// DefaultQuota mirrors the per-origin limit browsers apply to local storage.
const DefaultQuota = 5 << 20

// Store keeps values in process memory. A non-zero quota bounds the total
// size of keys plus values in bytes.
type Store struct {
	mu    sync.Mutex
	quota int
	used  int
	items map[string]string
}

func New(quota int) *Store {
	return &Store{quota: quota, items: make(map[string]string)}
}

// NewFromDir seeds a store from <key>.json files in base. A missing
// directory yields an empty store.
func NewFromDir(base string, quota int) (*Store, error) {
	s := New(quota)
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read seed directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(base, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", e.Name(), err)
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if err := s.Set(context.Background(), key, strings.TrimSpace(string(data))); err != nil {
			return nil, fmt.Errorf("seed %s: %w", key, err)
		}
	}
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// Set stores value under key, failing with kv.ErrQuotaExceeded when the
// write would push the store past its quota. A failed write leaves the
// previous value in place.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	used := s.used + len(value)
	if old, ok := s.items[key]; ok {
		used -= len(old)
	} else {
		used += len(key)
	}
	if s.quota > 0 && used > s.quota {
		return fmt.Errorf("set %q (%d bytes): %w", key, len(value), kv.ErrQuotaExceeded)
	}
	s.items[key] = value
	s.used = used
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.items[key]; ok {
		s.used -= len(key) + len(old)
		delete(s.items, key)
	}
	return nil
}

// Used returns the bytes currently counted against the quota.
func (s *Store) Used() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}
