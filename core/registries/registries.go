// Package registries declares the five registries of the application.
package registries

import (
	"context"
	"fmt"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/ledger"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/receipt"
	"bizdesk.app/bizdesk/core/registry"
	"bizdesk.app/bizdesk/utils"
)

type Set struct {
	Clients    *registry.Registry[models.Client]
	Projects   *registry.Registry[models.Project]
	Equipment  *registry.Registry[models.Equipment]
	Expenses   *registry.Registry[models.Expense]
	Timesheets *registry.Registry[models.Timesheet]
}

func NewSet(dm *core.DatabaseManager) *Set {
	clients := Clients(dm)
	projects := Projects(dm, clients)
	return &Set{
		Clients:    clients,
		Projects:   projects,
		Equipment:  Equipment(dm),
		Expenses:   Expenses(dm, projects),
		Timesheets: Timesheets(dm, projects),
	}
}

// mustExist fails with a field error when the referenced row is not stored.
func mustExist[T registry.Entity](ctx context.Context, r *registry.Registry[T], field string, id uint) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return core.NewFieldError(field, fmt.Sprintf("Field '%s' does not match an existing %s", field, r.Name()))
	}
	return nil
}

func Clients(dm *core.DatabaseManager) *registry.Registry[models.Client] {
	return registry.New(dm, registry.Schema[models.Client]{
		Name:  "client",
		Order: "created_at DESC, id DESC",
		SearchFields: func(c models.Client) []string {
			return []string{c.Name, c.Email}
		},
		Normalize: func(c *models.Client) {
			utils.TrimAll(&c.Name, &c.Email, &c.Phone, &c.Address)
		},
		NameColumn: "name",
	})
}

func Projects(dm *core.DatabaseManager, clients *registry.Registry[models.Client]) *registry.Registry[models.Project] {
	return registry.New(dm, registry.Schema[models.Project]{
		Name:     "project",
		Order:    "created_at DESC, id DESC",
		Preloads: []string{"Client"},
		SearchFields: func(p models.Project) []string {
			return []string{p.Name, p.ClientName()}
		},
		Defaults: func() models.Project {
			return models.Project{Status: models.ProjectPlanning}
		},
		Normalize: func(p *models.Project) {
			utils.TrimAll(&p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Location)
			if p.Status == "" {
				p.Status = models.ProjectPlanning
			}
		},
		Validate: func(ctx context.Context, p models.Project) error {
			if p.StartDate != "" && p.EndDate != "" {
				start, err := utils.ParseDate(p.StartDate)
				if err != nil {
					return core.NewFieldError("start_date", err.Error())
				}
				end, err := utils.ParseDate(p.EndDate)
				if err != nil {
					return core.NewFieldError("end_date", err.Error())
				}
				if end.Before(start) {
					return core.NewFieldError("end_date", "Field 'end_date' must not be before 'start_date'")
				}
			}
			return mustExist(ctx, clients, "client_id", p.ClientID)
		},
		NameColumn: "name",
	})
}

func Equipment(dm *core.DatabaseManager) *registry.Registry[models.Equipment] {
	return registry.New(dm, registry.Schema[models.Equipment]{
		Name:  "equipment",
		Order: "created_at DESC, id DESC",
		SearchFields: func(e models.Equipment) []string {
			return []string{e.Name, e.Type}
		},
		Defaults: func() models.Equipment {
			return models.Equipment{Status: models.EquipmentAvailable}
		},
		Normalize: func(e *models.Equipment) {
			utils.TrimAll(&e.Name, &e.Type, &e.Model, &e.SerialNumber, &e.PurchaseDate,
				&e.LastMaintenance, &e.NextMaintenance, &e.Notes)
			if e.Status == "" {
				e.Status = models.EquipmentAvailable
			}
		},
	})
}

func Expenses(dm *core.DatabaseManager, projects *registry.Registry[models.Project]) *registry.Registry[models.Expense] {
	return registry.New(dm, registry.Schema[models.Expense]{
		Name:     "expense",
		Order:    "date DESC, id DESC",
		Preloads: []string{"Project"},
		SearchFields: func(e models.Expense) []string {
			return []string{e.Description, string(e.Category)}
		},
		Defaults: func() models.Expense {
			return models.Expense{Category: models.CategoryFuel, Date: utils.Today()}
		},
		Normalize: func(e *models.Expense) {
			utils.TrimAll(&e.Description, &e.Date, &e.ReceiptNumber, &e.UserID)
			if e.Category == "" {
				e.Category = models.CategoryFuel
			}
			if e.Date == "" {
				e.Date = utils.Today()
			}
			e.ProjectID = utils.NilIfZero(e.ProjectID)
			e.ReceiptImage = utils.NilIfEmpty(e.ReceiptImage)
		},
		Validate: func(ctx context.Context, e models.Expense) error {
			if e.UserID == "" {
				return &core.ValidationError{Msg: receipt.ErrLoginRequired.Error(), Err: receipt.ErrLoginRequired}
			}
			if e.ProjectID == nil {
				return nil
			}
			return mustExist(ctx, projects, "project_id", *e.ProjectID)
		},
	})
}

func Timesheets(dm *core.DatabaseManager, projects *registry.Registry[models.Project]) *registry.Registry[models.Timesheet] {
	return registry.New(dm, registry.Schema[models.Timesheet]{
		Name:     "timesheet",
		Order:    "date DESC, id DESC",
		Preloads: []string{"Project"},
		SearchFields: func(t models.Timesheet) []string {
			return []string{t.EmployeeName, t.ProjectName()}
		},
		Defaults: func() models.Timesheet {
			t := models.Timesheet{Date: utils.Today(), StartTime: ledger.DefaultStart, EndTime: ledger.DefaultEnd}
			t.Hours, _ = ledger.HoursBetween(t.StartTime, t.EndTime)
			return t
		},
		Normalize: func(t *models.Timesheet) {
			utils.TrimAll(&t.EmployeeName, &t.Date, &t.TaskDescription, &t.StartTime, &t.EndTime)
			if t.Date == "" {
				t.Date = utils.Today()
			}
			t.ProjectID = utils.NilIfZero(t.ProjectID)
			if t.StartTime != "" && t.EndTime != "" {
				if h, err := ledger.HoursBetween(t.StartTime, t.EndTime); err == nil {
					t.Hours = h
				}
			}
		},
		Validate: func(ctx context.Context, t models.Timesheet) error {
			if t.ProjectID == nil {
				return nil
			}
			return mustExist(ctx, projects, "project_id", *t.ProjectID)
		},
	})
}
