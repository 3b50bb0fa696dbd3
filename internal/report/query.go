package report

import (
	"cmp"
	"slices"
	"strings"

	"fintrack/internal/core"
)

// AllValues matches any type or category in a Filter.
const AllValues = "all"

// Filter selects transactions. Empty fields, or AllValues for Type and
// Category, match everything. Search is a case-insensitive substring of the
// description, category or notes.
type Filter struct {
	Type     string
	Category string
	Search   string
}

func (f Filter) Match(t core.Transaction) bool {
	if f.Type != "" && f.Type != AllValues && string(t.Type) != f.Type {
		return false
	}
	if f.Category != "" && f.Category != AllValues && t.Category != f.Category {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	for _, field := range []string{t.Description, t.Category, t.Notes} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByCategory SortField = "category"
)

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Sort orders transactions by one field. Ties keep their input order in
// both directions. An unknown field sorts by date.
type Sort struct {
	Field SortField
	Order SortOrder
}

func (s Sort) compare() func(a, b core.Transaction) int {
	var by func(a, b core.Transaction) int
	switch s.Field {
	case SortByAmount:
		by = func(a, b core.Transaction) int { return cmp.Compare(a.Amount.Cents, b.Amount.Cents) }
	case SortByCategory:
		by = func(a, b core.Transaction) int { return strings.Compare(a.Category, b.Category) }
	default:
		by = func(a, b core.Transaction) int { return a.Date.Time.Compare(b.Date.Time) }
	}
	if s.Order == Descending {
		return func(a, b core.Transaction) int { return by(b, a) }
	}
	return by
}

// SortTransactions returns a sorted copy; the input is left untouched.
func SortTransactions(txs []core.Transaction, s Sort) []core.Transaction {
	out := slices.Clone(txs)
	slices.SortStableFunc(out, s.compare())
	return out
}

// Query filters then sorts.
func Query(txs []core.Transaction, f Filter, s Sort) []core.Transaction {
	var out []core.Transaction
	for _, t := range txs {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, s.compare())
	return out
}

func firstN(txs []core.Transaction, n int) []core.Transaction {
	if n < 0 {
		n = 0
	}
	if len(txs) > n {
		txs = txs[:n]
	}
	return txs
}

// TopByAmount returns the n largest transactions of either type, largest
// first. Equal amounts keep their input order.
func TopByAmount(txs []core.Transaction, n int) []core.Transaction {
	return firstN(SortTransactions(txs, Sort{Field: SortByAmount, Order: Descending}), n)
}

// Recent returns the n latest transactions by date.
func Recent(txs []core.Transaction, n int) []core.Transaction {
	return firstN(SortTransactions(txs, Sort{Field: SortByDate, Order: Descending}), n)
}

// Categories lists the distinct categories sorted by name, for populating
// a category filter.
func Categories(txs []core.Transaction) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range txs {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	slices.Sort(out)
	return out
}
