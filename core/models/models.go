package models

// All returns every table model, in dependency order.
func All() []any {
	return []any{&Client{}, &Project{}, &Equipment{}, &Expense{}, &Timesheet{}}
}
