package core

// Patches carry the fields an update supplies. Nil fields keep the
// existing value.
type (
	TransactionPatch struct {
		ID          string
		Description *string
		Amount      *Money
		Type        *TransactionType
		Category    *string
		Date        *Date
		Notes       *string
	}

	BudgetPatch struct {
		ID    string
		Name  *string
		Limit *Money
		Color *string
	}

	GoalPatch struct {
		ID            string
		Name          *string
		TargetAmount  *Money
		CurrentAmount *Money
		TargetDate    *Date
		Color         *string
	}
)

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	return t
}

func (p BudgetPatch) Apply(b Budget) Budget {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Limit != nil {
		b.Limit = *p.Limit
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	return b
}

// Renames reports whether applying p changes the budget's name.
func (p BudgetPatch) Renames(b Budget) bool {
	return p.Name != nil && *p.Name != b.Name
}

func (p GoalPatch) Apply(g Goal) Goal {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.TargetDate != nil {
		g.TargetDate = *p.TargetDate
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	return g
}
