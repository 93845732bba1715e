package ledger

import (
	"bytes"
	"testing"

	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSumExpenses(t *testing.T) {
	list := []models.Expense{{Amount: 12.50}, {Amount: 7.25}, {Amount: 100.00}}

	totals := SumExpenses(list)
	assert.Equal(t, 119.75, totals.Amount)
	assert.Equal(t, 3, totals.Count)

	assert.Equal(t, ExpenseTotals{}, SumExpenses(nil))
}

func TestSumExpensesNoDrift(t *testing.T) {
	list := make([]models.Expense, 10)
	for i := range list {
		list[i].Amount = 0.1
	}
	assert.Equal(t, 1.0, SumExpenses(list).Amount)
}

func TestSumTimesheets(t *testing.T) {
	list := []models.Timesheet{
		{Hours: 9, HourlyRate: 25},
		{Hours: 7.5, HourlyRate: 30.5},
		{Hours: 2},
	}

	totals := SumTimesheets(list)
	assert.Equal(t, 18.5, totals.Hours)
	assert.Equal(t, 453.75, totals.Cost)
	assert.Equal(t, 3, totals.Count)
}

func TestExportExpenses(t *testing.T) {
	project := &models.Project{Name: "Chantier Nord"}
	list := []models.Expense{
		{Date: "2025-03-02", Description: "Gasoil", Category: models.CategoryFuel, Amount: 12.50, Project: project},
		{Date: "2025-03-01", Description: "Gants", Category: models.CategoryMaterials, Amount: 7.25},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportExpenses(&buf, list, locale.For(locale.French)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExpensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Catégorie", rows[0][2])
	assert.Equal(t, []string{"2025-03-02", "Gasoil", "Carburant", "Chantier Nord", "", "12.5"}, rows[1])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "19.75", rows[3][5])
}

func TestExportTimesheets(t *testing.T) {
	list := []models.Timesheet{
		{Date: "2025-03-02", EmployeeName: "Jean Dupont", Hours: 9, HourlyRate: 25},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportTimesheets(&buf, list, locale.For(locale.English)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(TimesheetsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee", rows[0][1])
	assert.Equal(t, "225", rows[1][6])
	assert.Equal(t, "225", rows[2][6])
}
