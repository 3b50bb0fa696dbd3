// Package ledger holds the in-memory finance state and the reducers that
// mutate it.
//
// Reducers take the State by reference, change it in place and return the
// persistence Effects the caller must apply. They never touch storage
// themselves, so every rule here is testable without a store.
package ledger

import (
	"slices"

	"fintrack/internal/core"
	"fintrack/internal/kv"
)

// Status is the load state of a collection.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Item is implemented by every collection element.
type Item interface {
	core.Transaction | core.Budget | core.Goal
	ItemID() string
}

// Collection is one independently persisted list plus its load status.
type Collection[T Item] struct {
	Key    string
	Items  []T
	Status Status
	Err    string
}

type State struct {
	Transactions Collection[core.Transaction]
	Budgets      Collection[core.Budget]
	Goals        Collection[core.Goal]
}

func NewState() *State {
	return &State{
		Transactions: Collection[core.Transaction]{Key: kv.KeyTransactions, Status: StatusIdle},
		Budgets:      Collection[core.Budget]{Key: kv.KeyBudgets, Status: StatusIdle},
		Goals:        Collection[core.Goal]{Key: kv.KeyGoals, Status: StatusIdle},
	}
}

// Snapshot is a read-only copy of the three collections.
type Snapshot struct {
	Transactions []core.Transaction
	Budgets      []core.Budget
	Goals        []core.Goal
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Transactions: slices.Clone(s.Transactions.Items),
		Budgets:      slices.Clone(s.Budgets.Items),
		Goals:        slices.Clone(s.Goals.Items),
	}
}

func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.Items, func(it T) bool { return it.ItemID() == id })
}

// Find returns the item with the given identifier.
func (c *Collection[T]) Find(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.Items[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether an item with the given identifier exists.
func (c *Collection[T]) Has(id string) bool {
	return c.index(id) >= 0
}

func (c *Collection[T]) add(item T) []Effect {
	c.Items = append(c.Items, item)
	return c.persist()
}

func (c *Collection[T]) replace(id string, fn func(T) T) ([]Effect, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	c.Items[i] = fn(c.Items[i])
	return c.persist(), true
}

func (c *Collection[T]) remove(id string) ([]Effect, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	c.Items = slices.Delete(c.Items, i, i+1)
	return c.persist(), true
}

func (c *Collection[T]) persist() []Effect {
	return []Effect{{Op: OpSet, Key: c.Key, Items: slices.Clone(c.Items)}}
}

// BudgetByName implements reconcile.BudgetLookup. Names are matched exactly.
func (s *State) BudgetByName(name string) (core.Budget, bool) {
	for _, b := range s.Budgets.Items {
		if b.Name == name {
			return b, true
		}
	}
	return core.Budget{}, false
}
