package ledger

import (
	"encoding/json"
	"errors"

	"fintrack/internal/core"
)

// LoadResult describes how a collection load resolved.
type LoadResult struct {
	Status Status
	// Seeded is true when the fallback set was used.
	Seeded bool
	// DecodeErr is set when persisted data was present but unparsable.
	DecodeErr error
}

// StartLoad moves a collection into the loading state.
func StartLoad[T Item](c *Collection[T]) {
	c.Status = StatusLoading
	c.Err = ""
}

// FinishLoad resolves a load from the raw store read. It never fails: a read
// error leaves the collection failed and empty, while absent or unparsable
// data falls back to the given seed. Prior items are always replaced.
func FinishLoad[T Item](c *Collection[T], raw string, found bool, readErr error, fallback func() []T) LoadResult {
	if readErr != nil {
		c.Items = nil
		c.Status = StatusFailed
		c.Err = readErr.Error()
		return LoadResult{Status: StatusFailed}
	}

	res := LoadResult{Status: StatusSucceeded}
	if found {
		items, err := decode[T](raw)
		if err == nil {
			c.Items = items
			c.Status = StatusSucceeded
			return res
		}
		res.DecodeErr = err
	}

	c.Items = nil
	if fallback != nil {
		c.Items = fallback()
	}
	c.Status = StatusSucceeded
	res.Seeded = true
	return res
}

func decode[T Item](raw string) ([]T, error) {
	if raw == "" {
		return nil, errors.New("empty value")
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Fallbacks used when a collection has nothing persisted.
var (
	NoTransactions = func() []core.Transaction { return []core.Transaction{} }
	SeedBudgets    = core.DefaultBudgets
	SeedGoals      = core.DefaultGoals
)

func LoadTransactions(s *State, raw string, found bool, readErr error) LoadResult {
	return FinishLoad(&s.Transactions, raw, found, readErr, NoTransactions)
}

func LoadBudgets(s *State, raw string, found bool, readErr error) LoadResult {
	return FinishLoad(&s.Budgets, raw, found, readErr, SeedBudgets)
}

func LoadGoals(s *State, raw string, found bool, readErr error) LoadResult {
	return FinishLoad(&s.Goals, raw, found, readErr, SeedGoals)
}
