package services

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/reconcile"
)

// checkExpenseCategory requires an expense to be filed under an existing
// budget.
func (s *FinanceService) checkExpenseCategory(t core.Transaction) error {
	if !t.IsExpense() {
		return nil
	}
	if _, ok := s.state.BudgetByName(t.Category); !ok {
		return invalid("category", core.ErrUnknownCategory)
	}
	return nil
}

// AddTransaction records t and charges its budget. An empty ID is filled
// in; the stored transaction is returned.
func (s *FinanceService) AddTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.newID()
	} else if s.state.Transactions.Has(t.ID) {
		return core.Transaction{}, invalid("id", core.ErrDuplicateID)
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if err := s.checkExpenseCategory(t); err != nil {
		return core.Transaction{}, err
	}

	now := s.now()
	t.CreatedAt, t.UpdatedAt = now, now

	effects := ledger.AddTransaction(s.state, t)
	effects = append(effects, s.settle(reconcile.Added(t, s.state))...)
	s.apply(ctx, effects)

	s.logger.Debug("Transaction added",
		log.NewFields().WithOperation(log.OpCreate).WithTransaction(t.ID, string(t.Type), t.Category, t.Amount.Cents).ToSlice()...)
	return t, nil
}

// UpdateTransaction merges p over the stored transaction and moves the
// amount between budgets as needed. The budget check only applies when the
// type or category changes, so a transaction orphaned by a budget rename
// can still be edited. A missing ID is ignored.
func (s *FinanceService) UpdateTransaction(ctx context.Context, p core.TransactionPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.state.Transactions.Find(p.ID)
	if !ok {
		return nil
	}
	after := p.Apply(before)
	if err := after.Validate(); err != nil {
		return err
	}
	if after.Type != before.Type || after.Category != before.Category {
		if err := s.checkExpenseCategory(after); err != nil {
			return err
		}
	}

	effects := ledger.UpdateTransaction(s.state, p, s.now())
	effects = append(effects, s.settle(reconcile.Updated(before, after, s.state))...)
	s.apply(ctx, effects)

	s.logger.Debug("Transaction updated",
		log.NewFields().WithOperation(log.OpUpdate).WithTransaction(after.ID, string(after.Type), after.Category, after.Amount.Cents).ToSlice()...)
	return nil
}

// DeleteTransaction removes the transaction and refunds its budget. A
// missing ID is ignored.
func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.state.Transactions.Find(id)
	if !ok {
		return
	}
	effects := ledger.DeleteTransaction(s.state, id)
	effects = append(effects, s.settle(reconcile.Deleted(before, s.state))...)
	s.apply(ctx, effects)

	s.logger.Debug("Transaction deleted", log.FieldOperation, log.OpDelete, log.FieldID, id)
}

// ClearTransactions drops every transaction and refunds each budget by
// the expenses it loses.
func (s *FinanceService) ClearTransactions(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var adjs []reconcile.Adjustment
	for _, t := range s.state.Transactions.Items {
		adjs = append(adjs, reconcile.Deleted(t, s.state)...)
	}
	n := len(s.state.Transactions.Items)
	effects := ledger.ClearTransactions(s.state)
	effects = append(effects, s.settle(adjs)...)
	s.apply(ctx, effects)

	s.logger.Debug("Transactions cleared", log.FieldOperation, log.OpClear, log.FieldCount, n)
}
