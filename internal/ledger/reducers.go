package ledger

import (
	"time"

	"fintrack/internal/core"
)

// Every reducer returns the effects to persist. A nil result means nothing
// changed, which is also how a missing identifier is reported.

func AddTransaction(s *State, t core.Transaction) []Effect {
	return s.Transactions.add(t)
}

// UpdateTransaction merges the supplied fields over the stored transaction
// and stamps UpdatedAt.
func UpdateTransaction(s *State, p core.TransactionPatch, at time.Time) []Effect {
	effects, _ := s.Transactions.replace(p.ID, func(t core.Transaction) core.Transaction {
		t = p.Apply(t)
		t.UpdatedAt = at
		return t
	})
	return effects
}

func DeleteTransaction(s *State, id string) []Effect {
	effects, _ := s.Transactions.remove(id)
	return effects
}

// ClearTransactions drops every transaction and the persisted record.
func ClearTransactions(s *State) []Effect {
	s.Transactions.Items = nil
	return []Effect{{Op: OpRemove, Key: s.Transactions.Key}}
}

func AddBudget(s *State, b core.Budget) []Effect {
	return s.Budgets.add(b)
}

func UpdateBudget(s *State, p core.BudgetPatch) []Effect {
	effects, _ := s.Budgets.replace(p.ID, p.Apply)
	return effects
}

// DeleteBudget removes the budget only; transactions filed under its name
// are kept.
func DeleteBudget(s *State, id string) []Effect {
	effects, _ := s.Budgets.remove(id)
	return effects
}

// AdjustSpent adds delta, which may be negative, to the budget's spent total.
func AdjustSpent(s *State, id string, delta core.Money) []Effect {
	effects, _ := s.Budgets.replace(id, func(b core.Budget) core.Budget {
		b.Spent = b.Spent.Add(delta)
		return b
	})
	return effects
}

// ResetSpent sets spent to zero regardless of the budget's transactions.
func ResetSpent(s *State, id string) []Effect {
	effects, _ := s.Budgets.replace(id, func(b core.Budget) core.Budget {
		b.Spent = core.Money{}
		return b
	})
	return effects
}

func AddGoal(s *State, g core.Goal) []Effect {
	return s.Goals.add(g)
}

func UpdateGoal(s *State, p core.GoalPatch) []Effect {
	effects, _ := s.Goals.replace(p.ID, p.Apply)
	return effects
}

func DeleteGoal(s *State, id string) []Effect {
	effects, _ := s.Goals.remove(id)
	return effects
}

// AddProgress adds amount to the goal's current amount, capped at the
// target. Any excess is dropped.
func AddProgress(s *State, id string, amount core.Money) ([]Effect, error) {
	if err := amount.Validate(); err != nil {
		return nil, &core.ValidationError{Field: "amount", Err: err}
	}
	effects, _ := s.Goals.replace(id, func(g core.Goal) core.Goal {
		next := g.CurrentAmount.Add(amount)
		if next.Cents > g.TargetAmount.Cents {
			next = g.TargetAmount
		}
		g.CurrentAmount = next
		return g
	})
	return effects, nil
}

func ResetProgress(s *State, id string) []Effect {
	effects, _ := s.Goals.replace(id, func(g core.Goal) core.Goal {
		g.CurrentAmount = core.Money{}
		return g
	})
	return effects
}
