package services

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
)

// AddGoal creates a goal. The target date must be after today.
func (s *FinanceService) AddGoal(ctx context.Context, g core.Goal) (core.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g.ID == "" {
		g.ID = s.newID()
	} else if s.state.Goals.Has(g.ID) {
		return core.Goal{}, invalid("id", core.ErrDuplicateID)
	}
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	if err := g.ValidateTargetDate(core.DateOf(s.now())); err != nil {
		return core.Goal{}, err
	}

	s.apply(ctx, ledger.AddGoal(s.state, g))
	s.logger.Debug("Goal added", log.FieldOperation, log.OpCreate, log.FieldID, g.ID, log.FieldGoal, g.Name)
	return g, nil
}

// UpdateGoal merges p over the stored goal. A past target date is allowed
// here so overdue goals stay editable. A missing ID is ignored.
func (s *FinanceService) UpdateGoal(ctx context.Context, p core.GoalPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.state.Goals.Find(p.ID)
	if !ok {
		return nil
	}
	if err := p.Apply(before).Validate(); err != nil {
		return err
	}

	s.apply(ctx, ledger.UpdateGoal(s.state, p))
	s.logger.Debug("Goal updated", log.FieldOperation, log.OpUpdate, log.FieldID, p.ID)
	return nil
}

func (s *FinanceService) DeleteGoal(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if effects := ledger.DeleteGoal(s.state, id); effects != nil {
		s.apply(ctx, effects)
		s.logger.Debug("Goal deleted", log.FieldOperation, log.OpDelete, log.FieldID, id)
	}
}

// AddProgress adds amount to the goal, capped at its target. amount must
// be positive.
func (s *FinanceService) AddProgress(ctx context.Context, id string, amount core.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	effects, err := ledger.AddProgress(s.state, id, amount)
	if err != nil {
		return err
	}
	if effects != nil {
		s.apply(ctx, effects)
		s.logger.Debug("Goal progress added", log.FieldOperation, log.OpProgress, log.FieldID, id, log.FieldAmountCents, amount.Cents)
	}
	return nil
}

func (s *FinanceService) ResetProgress(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if effects := ledger.ResetProgress(s.state, id); effects != nil {
		s.apply(ctx, effects)
		s.logger.Debug("Goal progress reset", log.FieldOperation, log.OpReset, log.FieldID, id)
	}
}
