package ledger

import (
	"fmt"
	"io"

	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"github.com/xuri/excelize/v2"
)

const (
	ExpensesSheet   = "expenses"
	TimesheetsSheet = "timesheets"
)

// ExportExpenses writes the list as an xlsx workbook followed by a totals row.
func ExportExpenses(w io.Writer, list []models.Expense, cat *locale.Catalog) error {
	rows := make([][]any, 0, len(list)+1)
	for _, e := range list {
		rows = append(rows, []any{
			e.Date, e.Description, cat.Label(string(e.Category)), e.ProjectName(), e.ReceiptNumber, e.Amount,
		})
	}
	totals := SumExpenses(list)
	rows = append(rows, []any{cat.Columns("total")[0], "", "", "", "", totals.Amount})

	return writeSheet(w, ExpensesSheet, cat.Columns(ExpensesSheet), rows)
}

func ExportTimesheets(w io.Writer, list []models.Timesheet, cat *locale.Catalog) error {
	rows := make([][]any, 0, len(list)+1)
	for _, t := range list {
		rows = append(rows, []any{
			t.Date, t.EmployeeName, t.ProjectName(), t.TaskDescription, t.Hours, t.HourlyRate,
			ToCents(t.Hours * t.HourlyRate).Float(),
		})
	}
	totals := SumTimesheets(list)
	rows = append(rows, []any{cat.Columns("total")[0], "", "", "", totals.Hours, "", totals.Cost})

	return writeSheet(w, TimesheetsSheet, cat.Columns(TimesheetsSheet), rows)
}

func writeSheet(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	totalRow, err := excelize.CoordinatesToCellName(len(header), len(rows)+1)
	if err != nil {
		return err
	}
	totalStart, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err := f.SetCellStyle(sheet, totalStart, totalRow, bold); err != nil {
		return fmt.Errorf("failed to style totals: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
