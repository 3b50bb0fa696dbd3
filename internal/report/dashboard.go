package report

import (
	"time"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

type Dashboard struct {
	Month        core.MonthTotals
	Recent       []core.Transaction
	Budgets      []BudgetView
	Goals        []GoalView
	BudgetTotals BudgetTotals
	GoalTotals   GoalTotals
}

// BuildDashboard summarises the month containing now.
func BuildDashboard(snap ledger.Snapshot, now time.Time, recentN int) Dashboard {
	return Dashboard{
		Month:        CurrentMonth(snap.Transactions, now),
		Recent:       Recent(snap.Transactions, recentN),
		Budgets:      BudgetProgress(snap.Budgets),
		Goals:        GoalProgress(snap.Goals, now),
		BudgetTotals: SumBudgets(snap.Budgets),
		GoalTotals:   SumGoals(snap.Goals),
	}
}

type Report struct {
	Year       int
	Period     Period
	Trend      []core.MonthTotals
	Categories []core.CategoryAmount
	Budgets    []BudgetView
	Top        []core.Transaction
}

// BuildReport assembles the trend for the period ending December of year,
// the expense breakdown, budget comparison and the topN largest
// transactions.
func BuildReport(snap ledger.Snapshot, year int, p Period, topN int) (Report, error) {
	trend, err := YearTrend(snap.Transactions, year, p)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Year:       year,
		Period:     p,
		Trend:      trend,
		Categories: CategoryBreakdown(snap.Transactions),
		Budgets:    BudgetProgress(snap.Budgets),
		Top:        TopByAmount(snap.Transactions, topN),
	}, nil
}
