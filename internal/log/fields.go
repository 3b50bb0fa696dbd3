package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldKey         = "key"
	FieldID          = "id"
	FieldStatus      = "status"
	FieldCount       = "count"
	FieldAmountCents = "amount_cents"
	FieldDeltaCents  = "delta_cents"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldBudget      = "budget"
	FieldGoal        = "goal"
	FieldOrphaned    = "orphaned"
	FieldBackend     = "backend"
	FieldPath          = "path"
	FieldSchemaVersion = "schema_version"
	FieldYear          = "year"
	FieldPeriod        = "period"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentLedger    = "ledger"
	ComponentReconcile = "reconcile"
	ComponentStorage   = "storage"
	ComponentBackend   = "backend"
	ComponentReport    = "report"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpClear    = "clear"
	OpReset    = "reset"
	OpProgress = "progress"
	OpPersist  = "persist"
	OpAdjust   = "adjust"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds the error field; nil is ignored.
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithTransaction adds the fields identifying a transaction mutation.
func (f LogFields) WithTransaction(id, typ, category string, amountCents int64) LogFields {
	f[FieldID] = id
	f[FieldType] = typ
	f[FieldCategory] = category
	f[FieldAmountCents] = amountCents
	return f
}

// WithAdjustment adds the fields of a budget spent adjustment.
func (f LogFields) WithAdjustment(budget string, deltaCents int64) LogFields {
	f[FieldBudget] = budget
	f[FieldDeltaCents] = deltaCents
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
