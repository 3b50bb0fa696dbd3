package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/kv"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/reconcile"
)

// FinanceService runs every mutation as one step: validate, apply the
// reducers including budget reconciliation, then write the touched
// collections to the store before returning. Steps are serialised.
type FinanceService struct {
	mu     sync.Mutex
	store  kv.Store
	state  *ledger.State
	logger *log.Logger
	now    func() time.Time
	newID  func() string

	// failed holds the last write error per key until that key is
	// written successfully again.
	failed map[string]error
}

type Option func(*FinanceService)

func WithLogger(l *log.Logger) Option {
	return func(s *FinanceService) {
		if l != nil {
			s.logger = l.WithComponent(log.ComponentLedger)
		}
	}
}

// WithClock replaces time.Now for timestamps and goal date checks.
func WithClock(now func() time.Time) Option {
	return func(s *FinanceService) { s.now = now }
}

// WithIDGenerator replaces the random UUID generator for new items.
func WithIDGenerator(fn func() string) Option {
	return func(s *FinanceService) { s.newID = fn }
}

func NewFinanceService(store kv.Store, opts ...Option) *FinanceService {
	s := &FinanceService{
		store:  store,
		state:  ledger.NewState(),
		logger: log.Discard(),
		now:    time.Now,
		newID:  uuid.NewString,
		failed: make(map[string]error),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadReport is the outcome of loading all three collections.
type LoadReport struct {
	Transactions ledger.LoadResult
	Budgets      ledger.LoadResult
	Goals        ledger.LoadResult
}

// Load reads every collection from the store, replacing what is in
// memory. It never fails; see ledger.FinishLoad for the fallbacks.
func (s *FinanceService) Load(ctx context.Context) LoadReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return LoadReport{
		Transactions: load(ctx, s, &s.state.Transactions, ledger.NoTransactions),
		Budgets:      load(ctx, s, &s.state.Budgets, ledger.SeedBudgets),
		Goals:        load(ctx, s, &s.state.Goals, ledger.SeedGoals),
	}
}

func load[T ledger.Item](ctx context.Context, s *FinanceService, c *ledger.Collection[T], fallback func() []T) ledger.LoadResult {
	ledger.StartLoad(c)
	raw, found, err := s.store.Get(ctx, c.Key)
	res := ledger.FinishLoad(c, raw, found, err, fallback)

	logger := s.logger.With(log.FieldOperation, log.OpLoad, log.FieldKey, c.Key)
	switch {
	case err != nil:
		logger.Warn("Load failed, collection left empty", log.FieldError, err)
	case res.DecodeErr != nil:
		logger.Warn("Persisted data unreadable, using defaults", log.FieldError, res.DecodeErr)
	default:
		logger.Debug("Loaded collection", log.FieldStatus, res.Status, log.FieldCount, len(c.Items), "seeded", res.Seeded)
	}
	return res
}

// LoadStatus reports the load state of each collection.
type LoadStatus struct {
	Transactions ledger.Status
	Budgets      ledger.Status
	Goals        ledger.Status
}

func (s *FinanceService) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadStatus{
		Transactions: s.state.Transactions.Status,
		Budgets:      s.state.Budgets.Status,
		Goals:        s.state.Goals.Status,
	}
}

// Snapshot returns a copy of the current collections for reporting.
func (s *FinanceService) Snapshot() ledger.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// PersistenceErr returns the outstanding write failures, or nil when every
// collection's last write succeeded. Memory stays authoritative either way.
func (s *FinanceService) PersistenceErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.failed))
	for k := range s.failed {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	errs := make([]error, 0, len(keys))
	for _, k := range keys {
		errs = append(errs, s.failed[k])
	}
	return errors.Join(errs...)
}

// apply writes the effects of one step. Failures are logged and recorded,
// never returned.
func (s *FinanceService) apply(ctx context.Context, effects []ledger.Effect) {
	for _, e := range ledger.Coalesce(effects) {
		var err error
		switch e.Op {
		case ledger.OpSet:
			var raw string
			if raw, err = e.Encode(); err == nil {
				err = s.store.Set(ctx, e.Key, raw)
			}
		case ledger.OpRemove:
			err = s.store.Remove(ctx, e.Key)
		default:
			err = fmt.Errorf("unknown effect %s", e.Op)
		}

		if err != nil {
			err = fmt.Errorf("persist %s: %w", e.Key, err)
			s.failed[e.Key] = err
			s.logger.Warn("Persist failed, keeping in-memory state",
				log.FieldOperation, log.OpPersist, log.FieldKey, e.Key, log.FieldError, err)
			continue
		}
		delete(s.failed, e.Key)
	}
}

// settle turns adjustments into spent updates within the current step.
func (s *FinanceService) settle(adjs []reconcile.Adjustment) []ledger.Effect {
	var effects []ledger.Effect
	logger := s.logger.WithComponent(log.ComponentReconcile)
	for _, a := range adjs {
		effects = append(effects, ledger.AdjustSpent(s.state, a.BudgetID, a.Delta)...)
		logger.Debug("Adjusted budget spent",
			log.NewFields().WithOperation(log.OpAdjust).WithAdjustment(a.Budget, a.Delta.Cents).ToSlice()...)
	}
	return effects
}

func invalid(field string, err error) error {
	return &core.ValidationError{Field: field, Err: err}
}
