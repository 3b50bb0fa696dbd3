package reconcile

import (
	"testing"

	"fintrack/internal/core"
)

type budgetList []core.Budget

func (l budgetList) BudgetByName(name string) (core.Budget, bool) {
	for _, b := range l {
		if b.Name == name {
			return b, true
		}
	}
	return core.Budget{}, false
}

var budgets = budgetList{
	{ID: "food", Name: "Food", Limit: core.Cents(50000)},
	{ID: "fun", Name: "Fun", Limit: core.Cents(20000)},
}

func expense(cat string, cents int64) core.Transaction {
	return core.Transaction{ID: "t", Description: "x", Amount: core.Cents(cents), Type: core.Expense, Category: cat, Date: core.NewDate(2025, 1, 1)}
}

func income(cents int64) core.Transaction {
	return core.Transaction{ID: "t", Description: "x", Amount: core.Cents(cents), Type: core.Income, Category: "Salary", Date: core.NewDate(2025, 1, 1)}
}

func ptr(t core.Transaction) *core.Transaction { return &t }

func TestPlan(t *testing.T) {
	tests := []struct {
		name   string
		before *core.Transaction
		after  *core.Transaction
		want   []Adjustment
	}{
		{
			name:  "add expense in budgeted category",
			after: ptr(expense("Food", 12050)),
			want:  []Adjustment{{BudgetID: "food", Budget: "Food", Delta: core.Cents(12050)}},
		},
		{
			name:  "add income touches nothing",
			after: ptr(income(300000)),
		},
		{
			name:  "add expense in unbudgeted category",
			after: ptr(expense("Travel", 5000)),
		},
		{
			name:   "delete expense",
			before: ptr(expense("Food", 12050)),
			want:   []Adjustment{{BudgetID: "food", Budget: "Food", Delta: core.Cents(-12050)}},
		},
		{
			name:   "delete income",
			before: ptr(income(100)),
		},
		{
			name:   "edit amount nets into one delta",
			before: ptr(expense("Food", 12050)),
			after:  ptr(expense("Food", 8000)),
			want:   []Adjustment{{BudgetID: "food", Budget: "Food", Delta: core.Cents(-4050)}},
		},
		{
			name:   "edit without amount change",
			before: ptr(expense("Food", 8000)),
			after:  ptr(expense("Food", 8000)),
		},
		{
			name:   "category change moves full amounts",
			before: ptr(expense("Food", 8000)),
			after:  ptr(expense("Fun", 9000)),
			want:   []Adjustment{
				{BudgetID: "food", Budget: "Food", Delta: core.Cents(-8000)},
				{BudgetID: "fun", Budget: "Fun", Delta: core.Cents(9000)},
			},
		},
		{
			name:   "category change from budget to unbudgeted",
			before: ptr(expense("Food", 8000)),
			after:  ptr(expense("Travel", 8000)),
			want:   []Adjustment{{BudgetID: "food", Budget: "Food", Delta: core.Cents(-8000)}},
		},
		{
			name:   "category change from unbudgeted to budget",
			before: ptr(expense("Travel", 8000)),
			after:  ptr(expense("Fun", 7000)),
			want:   []Adjustment{{BudgetID: "fun", Budget: "Fun", Delta: core.Cents(7000)}},
		},
		{
			name:   "both sides unbudgeted",
			before: ptr(expense("Travel", 8000)),
			after:  ptr(expense("Gifts", 7000)),
		},
		{
			name:   "expense becomes income",
			before: ptr(expense("Food", 8000)),
			after:  ptr(income(8000)),
			want:   []Adjustment{{BudgetID: "food", Budget: "Food", Delta: core.Cents(-8000)}},
		},
		{
			name:   "income becomes expense",
			before: ptr(income(8000)),
			after:  ptr(expense("Fun", 6000)),
			want:   []Adjustment{{BudgetID: "fun", Budget: "Fun", Delta: core.Cents(6000)}},
		},
		{
			name: "nothing on either side",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.before, tt.after, budgets)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d adjustments, got %d: %+v", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("adjustment %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHelpersMatchPlan(t *testing.T) {
	e := expense("Food", 100)
	if got := Added(e, budgets); len(got) != 1 || got[0].Delta.Cents != 100 {
		t.Fatalf("Added: %+v", got)
	}
	if got := Deleted(e, budgets); len(got) != 1 || got[0].Delta.Cents != -100 {
		t.Fatalf("Deleted: %+v", got)
	}
	if got := Updated(e, expense("Food", 250), budgets); len(got) != 1 || got[0].Delta.Cents != 150 {
		t.Fatalf("Updated: %+v", got)
	}
}

func TestExpectedSpent(t *testing.T) {
	txs := []core.Transaction{expense("Food", 100), expense("Food", 250), expense("Fun", 999), income(5000)}
	if got := ExpectedSpent("Food", txs); got.Cents != 350 {
		t.Fatalf("expected 350, got %d", got.Cents)
	}
	if got := ExpectedSpent("Nothing", txs); !got.IsZero() {
		t.Fatalf("expected zero, got %d", got.Cents)
	}
}
