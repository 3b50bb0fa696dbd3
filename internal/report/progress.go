package report

import (
	"math"
	"time"

	"fintrack/internal/core"
)

type BudgetStatus string

const (
	BudgetGood    BudgetStatus = "good"
	BudgetWarning BudgetStatus = "warning"
	BudgetOver    BudgetStatus = "over"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalOverdue   GoalStatus = "overdue"
)

// BudgetView is a budget with its derived progress. Percentage is capped at
// 100 for display; Ratio is the raw spent/limit.
type BudgetView struct {
	core.Budget
	Ratio      float64
	Percentage float64
	Remaining  core.Money
	Status     BudgetStatus
}

type GoalView struct {
	core.Goal
	Percentage    float64
	Remaining     core.Money
	DaysRemaining int
	Status        GoalStatus
}

// BudgetStatusOf classifies spend against the limit. Compared in cents so
// the 90% threshold is exact.
func BudgetStatusOf(b core.Budget) BudgetStatus {
	switch {
	case b.Spent.Cents > b.Limit.Cents:
		return BudgetOver
	case b.Spent.Cents*10 > b.Limit.Cents*9:
		return BudgetWarning
	default:
		return BudgetGood
	}
}

func ratio(part, whole core.Money) float64 {
	if whole.Cents <= 0 {
		if part.Cents > 0 {
			return 1
		}
		return 0
	}
	return float64(part.Cents) / float64(whole.Cents)
}

// percentage is part/whole scaled to 0..100 for display.
func percentage(part, whole core.Money) float64 {
	if whole.Cents <= 0 {
		return ratio(part, whole) * 100
	}
	return math.Min(float64(part.Cents)*100/float64(whole.Cents), 100)
}

func BudgetProgress(budgets []core.Budget) []BudgetView {
	out := make([]BudgetView, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, BudgetView{
			Budget:     b,
			Ratio:      ratio(b.Spent, b.Limit),
			Percentage: percentage(b.Spent, b.Limit),
			Remaining:  b.Limit.Sub(b.Spent),
			Status:     BudgetStatusOf(b),
		})
	}
	return out
}

// DaysRemaining is the number of days from now until the target date,
// rounded up. Negative once the date has passed.
func DaysRemaining(target core.Date, now time.Time) int {
	return int(math.Ceil(target.Time.Sub(now).Hours() / 24))
}

func GoalStatusOf(g core.Goal, daysRemaining int) GoalStatus {
	switch {
	case g.CurrentAmount.Cents >= g.TargetAmount.Cents:
		return GoalCompleted
	case daysRemaining < 0:
		return GoalOverdue
	default:
		return GoalActive
	}
}

func GoalProgress(goals []core.Goal, now time.Time) []GoalView {
	out := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		days := DaysRemaining(g.TargetDate, now)
		out = append(out, GoalView{
			Goal:          g,
			Percentage:    percentage(g.CurrentAmount, g.TargetAmount),
			Remaining:     g.TargetAmount.Sub(g.CurrentAmount),
			DaysRemaining: days,
			Status:        GoalStatusOf(g, days),
		})
	}
	return out
}

type BudgetTotals struct {
	Limit     core.Money
	Spent     core.Money
	Remaining core.Money
}

func SumBudgets(budgets []core.Budget) BudgetTotals {
	var t BudgetTotals
	for _, b := range budgets {
		t.Limit = t.Limit.Add(b.Limit)
		t.Spent = t.Spent.Add(b.Spent)
	}
	t.Remaining = t.Limit.Sub(t.Spent)
	return t
}

type GoalTotals struct {
	Target core.Money
	Saved  core.Money
}

func SumGoals(goals []core.Goal) GoalTotals {
	var t GoalTotals
	for _, g := range goals {
		t.Target = t.Target.Add(g.TargetAmount)
		t.Saved = t.Saved.Add(g.CurrentAmount)
	}
	return t
}
