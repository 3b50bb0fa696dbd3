package services

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/reconcile"
)

func (s *FinanceService) nameTaken(name, exceptID string) bool {
	b, ok := s.state.BudgetByName(name)
	return ok && b.ID != exceptID
}

// AddBudget creates a budget. Spent is derived from the expenses already
// filed under the name rather than taken from b.
func (s *FinanceService) AddBudget(ctx context.Context, b core.Budget) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = s.newID()
	} else if s.state.Budgets.Has(b.ID) {
		return core.Budget{}, invalid("id", core.ErrDuplicateID)
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	if s.nameTaken(b.Name, b.ID) {
		return core.Budget{}, invalid("name", core.ErrDuplicateName)
	}
	b.Spent = reconcile.ExpectedSpent(b.Name, s.state.Transactions.Items)

	s.apply(ctx, ledger.AddBudget(s.state, b))
	s.logger.Debug("Budget added", log.FieldOperation, log.OpCreate, log.FieldID, b.ID, log.FieldBudget, b.Name)
	return b, nil
}

// UpdateBudget merges p over the stored budget. A rename does not carry
// transactions along: those filed under the old name stop counting against
// any budget, and spent is left as is. A missing ID is ignored.
func (s *FinanceService) UpdateBudget(ctx context.Context, p core.BudgetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.state.Budgets.Find(p.ID)
	if !ok {
		return nil
	}
	after := p.Apply(before)
	if err := after.Validate(); err != nil {
		return err
	}
	renamed := p.Renames(before)
	if renamed && s.nameTaken(after.Name, after.ID) {
		return invalid("name", core.ErrDuplicateName)
	}

	s.apply(ctx, ledger.UpdateBudget(s.state, p))

	if renamed {
		orphaned := 0
		for _, t := range s.state.Transactions.Items {
			if t.IsExpense() && t.Category == before.Name {
				orphaned++
			}
		}
		if orphaned > 0 {
			s.logger.Info("Budget renamed, transactions left under the old name",
				log.FieldID, p.ID, log.FieldBudget, after.Name, "old_name", before.Name, log.FieldOrphaned, orphaned)
		}
	}
	s.logger.Debug("Budget updated", log.FieldOperation, log.OpUpdate, log.FieldID, p.ID)
	return nil
}

// DeleteBudget removes the budget and keeps its transactions.
func (s *FinanceService) DeleteBudget(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if effects := ledger.DeleteBudget(s.state, id); effects != nil {
		s.apply(ctx, effects)
		s.logger.Debug("Budget deleted", log.FieldOperation, log.OpDelete, log.FieldID, id)
	}
}

// ResetSpent zeroes the budget's spent regardless of its transactions.
func (s *FinanceService) ResetSpent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if effects := ledger.ResetSpent(s.state, id); effects != nil {
		s.apply(ctx, effects)
		s.logger.Debug("Budget spent reset", log.FieldOperation, log.OpReset, log.FieldID, id)
	}
}
