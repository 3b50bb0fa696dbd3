// Package reconcile computes the budget adjustments a transaction change
// implies.
//
// Plan is a pure function of the transaction before and after the change
// and the budgets visible at that moment. Applying its adjustments keeps
// every budget's Spent equal to the sum of the expense amounts filed under
// the budget's name, without rescanning the transaction list.
package reconcile

import "fintrack/internal/core"

// BudgetLookup resolves a transaction category to a budget by exact name.
type BudgetLookup interface {
	BudgetByName(name string) (core.Budget, bool)
}

// Adjustment is a signed change to one budget's spent total.
type Adjustment struct {
	BudgetID string
	Budget   string // name, for logging
	Delta    core.Money
}

// Plan returns the adjustments for a transaction going from before to
// after. A nil before means the transaction was added, a nil after that it
// was deleted. Income transactions and categories with no budget contribute
// nothing. Zero adjustments are omitted.
func Plan(before, after *core.Transaction, budgets BudgetLookup) []Adjustment {
	oldExp := before != nil && before.IsExpense()
	newExp := after != nil && after.IsExpense()

	// Same budget on both sides: net the change into a single delta
	if oldExp && newExp && before.Category == after.Category {
		return adjust(nil, budgets, after.Category, after.Amount.Sub(before.Amount))
	}

	var out []Adjustment
	if oldExp {
		out = adjust(out, budgets, before.Category, before.Amount.Neg())
	}
	if newExp {
		out = adjust(out, budgets, after.Category, after.Amount)
	}
	return out
}

// Added is Plan for a newly recorded transaction.
func Added(t core.Transaction, budgets BudgetLookup) []Adjustment {
	return Plan(nil, &t, budgets)
}

// Deleted is Plan for a removed transaction.
func Deleted(t core.Transaction, budgets BudgetLookup) []Adjustment {
	return Plan(&t, nil, budgets)
}

// Updated is Plan for an edited transaction.
func Updated(before, after core.Transaction, budgets BudgetLookup) []Adjustment {
	return Plan(&before, &after, budgets)
}

func adjust(out []Adjustment, budgets BudgetLookup, category string, delta core.Money) []Adjustment {
	if delta.IsZero() {
		return out
	}
	b, ok := budgets.BudgetByName(category)
	if !ok {
		return out
	}
	return append(out, Adjustment{BudgetID: b.ID, Budget: b.Name, Delta: delta})
}

// ExpectedSpent recomputes a budget's spent total from scratch. It is the
// reference the incremental adjustments must agree with.
func ExpectedSpent(budgetName string, txs []core.Transaction) core.Money {
	var total core.Money
	for _, t := range txs {
		if t.IsExpense() && t.Category == budgetName {
			total = total.Add(t.Amount)
		}
	}
	return total
}
