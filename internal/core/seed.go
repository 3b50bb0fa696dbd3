package core

// IncomeCategories is the fixed set of categories an income transaction may use.
var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Gift",
	"Other Income",
}

// DefaultBudgets is used when no budgets have been persisted yet.
func DefaultBudgets() []Budget {
	return []Budget{
		{ID: "1", Name: "Food & Dining", Limit: Cents(50000), Color: "#FF6B6B"},
		{ID: "2", Name: "Transportation", Limit: Cents(30000), Color: "#4ECDC4"},
		{ID: "3", Name: "Entertainment", Limit: Cents(20000), Color: "#45B7D1"},
		{ID: "4", Name: "Shopping", Limit: Cents(40000), Color: "#96CEB4"},
		{ID: "5", Name: "Utilities", Limit: Cents(25000), Color: "#FFEAA7"},
	}
}

// DefaultGoals is used when no goals have been persisted yet.
func DefaultGoals() []Goal {
	return []Goal{
		{
			ID:            "1",
			Name:          "Emergency Fund",
			TargetAmount:  Cents(500000),
			CurrentAmount: Cents(120000),
			TargetDate:    NewDate(2024, 12, 31),
			Color:         "#FF6B6B",
		},
		{
			ID:            "2",
			Name:          "Vacation Fund",
			TargetAmount:  Cents(300000),
			CurrentAmount: Cents(80000),
			TargetDate:    NewDate(2024, 6, 30),
			Color:         "#4ECDC4",
		},
	}
}
