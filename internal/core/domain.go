package core

import (
	"errors"
	"slices"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string          `json:"id"`
		Description string          `json:"description"`
		Amount      Money           `json:"amount"`
		Type        TransactionType `json:"type"`
		Category    string          `json:"category"` // Budget name for expenses, IncomeCategories for income
		Date        Date            `json:"date"`
		Notes       string          `json:"notes,omitempty"`
		CreatedAt   time.Time       `json:"createdAt"`
		UpdatedAt   time.Time       `json:"updatedAt"`
	}

	// Budget is a named monthly spending ceiling. Transactions refer to it by
	// Name, so renaming a budget detaches the transactions recorded under the
	// old name.
	Budget struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Limit Money  `json:"limit"`
		Spent Money  `json:"spent"`
		Color string `json:"color"`
	}

	Goal struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		TargetAmount  Money  `json:"targetAmount"`
		CurrentAmount Money  `json:"currentAmount"`
		TargetDate    Date   `json:"targetDate"`
		Color         string `json:"color"`
	}
)

var (
	ErrInvalidDay           = errors.New("invalid day")
	ErrInvalidMonth         = errors.New("invalid month")
	ErrInvalidDate          = errors.New("date cannot be zero")
	ErrInvalidAmount        = errors.New("amount must be greater than 0")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrEmptyDescription     = errors.New("empty description")
	ErrDescriptionTooLong   = errors.New("description too long (max 200 characters)")
	ErrEmptyName            = errors.New("empty name")
	ErrDuplicateName        = errors.New("name already in use")
	ErrDuplicateID          = errors.New("identifier already in use")
	ErrInvalidType          = errors.New("type must be income or expense")
	ErrEmptyCategory        = errors.New("empty category")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrTargetDateNotFuture  = errors.New("target date must be in the future")
	ErrCurrentExceedsTarget = errors.New("current amount cannot exceed target amount")
)

// ValidationError reports a business rule violation on a single field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	_, month, day := d.Date()
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// IsEmpty returns true if the date is zero
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (t Transaction) ItemID() string { return t.ID }
func (b Budget) ItemID() string      { return b.ID }
func (g Goal) ItemID() string        { return g.ID }

// IsExpense reports whether the transaction counts against a budget.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return invalid("description", ErrEmptyDescription)
	}
	if len(t.Description) > 200 {
		return invalid("description", ErrDescriptionTooLong)
	}
	if err := t.Amount.Validate(); err != nil {
		return invalid("amount", err)
	}
	if !t.Type.Valid() {
		return invalid("type", ErrInvalidType)
	}
	if strings.TrimSpace(t.Category) == "" {
		return invalid("category", ErrEmptyCategory)
	}
	if t.Type == Income && !slices.Contains(IncomeCategories, t.Category) {
		return invalid("category", ErrUnknownCategory)
	}
	if err := t.Date.Validate(); err != nil {
		return invalid("date", err)
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return invalid("name", ErrEmptyName)
	}
	if err := b.Limit.Validate(); err != nil {
		return invalid("limit", err)
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", ErrEmptyName)
	}
	if err := g.TargetAmount.Validate(); err != nil {
		return invalid("targetAmount", err)
	}
	if g.CurrentAmount.Cents < 0 {
		return invalid("currentAmount", ErrNegativeAmount)
	}
	if g.CurrentAmount.Cents > g.TargetAmount.Cents {
		return invalid("currentAmount", ErrCurrentExceedsTarget)
	}
	if err := g.TargetDate.Validate(); err != nil {
		return invalid("targetDate", err)
	}
	return nil
}

// ValidateTargetDate rejects target dates on or before today.
func (g Goal) ValidateTargetDate(today Date) error {
	if !g.TargetDate.After(today.Time) {
		return invalid("targetDate", ErrTargetDateNotFuture)
	}
	return nil
}
