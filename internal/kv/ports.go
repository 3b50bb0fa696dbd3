// Package kv defines the key-value persistence port the ledger writes to.
package kv

import (
	"context"
	"errors"
)

// Well-known keys, one record per collection.
const (
	KeyTransactions = "transactions"
	KeyBudgets      = "budgets"
	KeyGoals        = "goals"
)

var (
	// ErrQuotaExceeded is returned by Set when the store has no room for the value.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrClosed is returned by stores used after Close.
	ErrClosed = errors.New("store closed")
)

// Ports for outbound adapters.
type (
	Reader interface {
		// Get returns the value stored under key. found is false when the key
		// has never been set or was removed; that is not an error.
		Get(ctx context.Context, key string) (value string, found bool, err error)
	}

	Writer interface {
		Set(ctx context.Context, key, value string) error
		Remove(ctx context.Context, key string) error
	}

	Store interface {
		Reader
		Writer
	}
)
