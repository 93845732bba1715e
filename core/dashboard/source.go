package dashboard

import (
	"context"

	"bizdesk.app/bizdesk/core"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/core/registries"
)

type ExpenseRow struct {
	Amount float64
	Date   string
}

// Source performs the raw reads the summary is computed from.
type Source interface {
	CountClients(ctx context.Context) (int64, error)
	ProjectStatuses(ctx context.Context) ([]string, error)
	CountEquipment(ctx context.Context) (int64, error)
	// ExpensesBetween returns expenses dated from..to inclusive (YYYY-MM-DD).
	ExpensesBetween(ctx context.Context, from, to string) ([]ExpenseRow, error)
}

// GormSource counts through the registries and reads projects and expenses directly.
type GormSource struct {
	dm  *core.DatabaseManager
	set *registries.Set
}

func NewGormSource(dm *core.DatabaseManager, set *registries.Set) *GormSource {
	return &GormSource{dm: dm, set: set}
}

func (s *GormSource) CountClients(ctx context.Context) (int64, error) {
	return s.set.Clients.Count(ctx)
}

func (s *GormSource) ProjectStatuses(ctx context.Context) ([]string, error) {
	statuses := []string{}
	if err := s.dm.GetDB(ctx).Model(&models.Project{}).Pluck("status", &statuses).Error; err != nil {
		return nil, core.Remote("list project statuses", err)
	}
	return statuses, nil
}

func (s *GormSource) CountEquipment(ctx context.Context) (int64, error) {
	return s.set.Equipment.Count(ctx)
}

func (s *GormSource) ExpensesBetween(ctx context.Context, from, to string) ([]ExpenseRow, error) {
	rows := []ExpenseRow{}
	err := s.dm.GetDB(ctx).Model(&models.Expense{}).
		Select("amount, date").
		Where("date >= ? AND date <= ?", from, to).
		Scan(&rows).Error
	if err != nil {
		return nil, core.Remote("list expenses", err)
	}
	return rows, nil
}
