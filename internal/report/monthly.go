// Package report derives read-only views from a ledger snapshot: monthly
// totals, category breakdowns, budget and goal progress, and filtered or
// ranked transaction lists. Everything is recomputed on each call.
package report

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/core"
)

// Period is the length of a trailing report window in months.
type Period int

const (
	Quarter  Period = 3
	HalfYear Period = 6
	FullYear Period = 12
)

var ErrInvalidPeriod = errors.New("period must be 3, 6 or 12 months")

func (p Period) Validate() error {
	switch p {
	case Quarter, HalfYear, FullYear:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, int(p))
	}
}

type monthKey struct {
	year  int
	month time.Month
}

// byMonth partitions transactions by the calendar month of their date and
// sums income and expenses within each.
func byMonth(txs []core.Transaction) map[monthKey]core.MonthTotals {
	out := make(map[monthKey]core.MonthTotals)
	for _, t := range txs {
		k := monthKey{year: t.Date.Year(), month: t.Date.Time.Month()}
		m := out[k]
		m.Year, m.Month = k.year, k.month
		switch t.Type {
		case core.Income:
			m.Income = m.Income.Add(t.Amount)
		case core.Expense:
			m.Expenses = m.Expenses.Add(t.Amount)
		}
		out[k] = m
	}
	return out
}

// MonthTotals sums income and expenses dated within the given month.
func MonthTotals(txs []core.Transaction, year int, month time.Month) core.MonthTotals {
	m := byMonth(txs)[monthKey{year: year, month: month}]
	m.Year, m.Month = year, month
	return m
}

// CurrentMonth is MonthTotals for the month containing now.
func CurrentMonth(txs []core.Transaction, now time.Time) core.MonthTotals {
	return MonthTotals(txs, now.Year(), now.Month())
}

// TrailingMonths returns p consecutive months ending with the anchor month,
// oldest first. Months without transactions are present with zero totals.
func TrailingMonths(txs []core.Transaction, year int, month time.Month, p Period) ([]core.MonthTotals, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	buckets := byMonth(txs)
	out := make([]core.MonthTotals, 0, int(p))
	for i := int(p) - 1; i >= 0; i-- {
		// time.Date normalises month underflow into the previous year
		first := time.Date(year, month-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		k := monthKey{year: first.Year(), month: first.Month()}
		m := buckets[k]
		m.Year, m.Month = k.year, k.month
		out = append(out, m)
	}
	return out, nil
}

// YearTrend is the trailing window ending in December of year.
func YearTrend(txs []core.Transaction, year int, p Period) ([]core.MonthTotals, error) {
	return TrailingMonths(txs, year, time.December, p)
}

// CategoryBreakdown sums expense amounts per category over all
// transactions, in the order categories are first seen.
func CategoryBreakdown(txs []core.Transaction) []core.CategoryAmount {
	var out []core.CategoryAmount
	pos := make(map[string]int)
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		i, ok := pos[t.Category]
		if !ok {
			i = len(out)
			pos[t.Category] = i
			out = append(out, core.CategoryAmount{Name: t.Category})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount)
	}
	return out
}
