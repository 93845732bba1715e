package ledger

import "bizdesk.app/bizdesk/core/models"

type ExpenseTotals struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type TimesheetTotals struct {
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

func SumExpenses(list []models.Expense) ExpenseTotals {
	var sum Cents
	for _, e := range list {
		sum += ToCents(e.Amount)
	}
	return ExpenseTotals{Count: len(list), Amount: sum.Float()}
}

// SumTimesheets totals hours and hours × rate; a missing rate costs nothing.
func SumTimesheets(list []models.Timesheet) TimesheetTotals {
	var hours, cost Cents
	for _, t := range list {
		hours += ToCents(t.Hours)
		cost += ToCents(t.Hours * t.HourlyRate)
	}
	return TimesheetTotals{Count: len(list), Hours: hours.Float(), Cost: cost.Float()}
}
