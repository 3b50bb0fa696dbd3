package core

import "time"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// MonthTotals is the income/expense summary for a specific year+month.
type MonthTotals struct {
	Year     int
	Month    time.Month
	Income   Money
	Expenses Money
}

// Balance is income minus expenses.
func (m MonthTotals) Balance() Money {
	return m.Income.Sub(m.Expenses)
}

// Label is the three-letter English month name, e.g. "Jan".
func (m MonthTotals) Label() string {
	return m.Month.String()[:3]
}
