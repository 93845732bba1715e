// Package dashboard computes the read-only summary shown on the home page.
package dashboard

import (
	"context"
	"sort"
	"time"

	"bizdesk.app/bizdesk/core/ledger"
	"bizdesk.app/bizdesk/core/locale"
	"bizdesk.app/bizdesk/core/models"
	"bizdesk.app/bizdesk/utils"
	"golang.org/x/sync/errgroup"
)

type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type MonthTotal struct {
	Month  int     `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Summary struct {
	TotalClients     int64         `json:"total_clients"`
	ActiveProjects   int           `json:"active_projects"`
	TotalEquipment   int64         `json:"total_equipment"`
	MonthlyExpenses  float64       `json:"monthly_expenses"`
	ProjectsByStatus []StatusCount `json:"projects_by_status"`
	ExpensesByMonth  []MonthTotal  `json:"expenses_by_month"`
}

type Aggregator struct {
	source  Source
	catalog *locale.Catalog
	now     func() time.Time
}

func New(source Source, catalog *locale.Catalog) *Aggregator {
	return &Aggregator{source: source, catalog: catalog, now: time.Now}
}

// WithClock replaces the clock the current month is taken from.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Summary runs the four reads concurrently; the first failure cancels the rest.
func (a *Aggregator) Summary(ctx context.Context) (Summary, error) {
	now := a.now()
	year := now.Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()).Format(utils.DateLayout)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location()).Format(utils.DateLayout)

	var (
		clients, equipment int64
		statuses           []string
		expenses           []ExpenseRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = a.source.CountClients(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = a.source.ProjectStatuses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		equipment, err = a.source.CountEquipment(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = a.source.ExpensesBetween(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	byStatus := a.statusBreakdown(statuses)
	active := 0
	for _, s := range byStatus {
		if s.Status == string(models.ProjectActive) {
			active = s.Count
		}
	}

	return Summary{
		TotalClients:     clients,
		ActiveProjects:   active,
		TotalEquipment:   equipment,
		MonthlyExpenses:  monthToDate(expenses, now),
		ProjectsByStatus: byStatus,
		ExpensesByMonth:  a.monthlySeries(expenses, now),
	}, nil
}

func monthToDate(expenses []ExpenseRow, now time.Time) float64 {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(utils.DateLayout)
	var sum ledger.Cents
	for _, e := range expenses {
		if e.Date >= start {
			sum += ledger.ToCents(e.Amount)
		}
	}
	return sum.Float()
}

// statusBreakdown counts present statuses in enum order; unknown values follow alphabetically.
func (a *Aggregator) statusBreakdown(statuses []string) []StatusCount {
	counts := map[string]int{}
	for _, s := range statuses {
		counts[s]++
	}

	out := make([]StatusCount, 0, len(counts))
	known := map[string]bool{}
	for _, s := range models.ProjectStatuses {
		known[string(s)] = true
		if n := counts[string(s)]; n > 0 {
			out = append(out, StatusCount{Status: string(s), Label: a.catalog.Label(string(s)), Count: n})
		}
	}

	var unknown []string
	for s := range counts {
		if !known[s] {
			unknown = append(unknown, s)
		}
	}
	sort.Strings(unknown)
	for _, s := range unknown {
		out = append(out, StatusCount{Status: s, Label: a.catalog.Label(s), Count: counts[s]})
	}
	return out
}

// monthlySeries totals January through the current month; later months are omitted.
func (a *Aggregator) monthlySeries(expenses []ExpenseRow, now time.Time) []MonthTotal {
	sums := make([]ledger.Cents, now.Month())
	prefix := now.Format("2006-")
	for _, e := range expenses {
		if len(e.Date) < 7 || e.Date[:5] != prefix {
			continue
		}
		t, err := utils.ParseDate(e.Date)
		if err != nil || t.Month() > now.Month() {
			continue
		}
		sums[t.Month()-1] += ledger.ToCents(e.Amount)
	}

	out := make([]MonthTotal, 0, len(sums))
	for i, s := range sums {
		m := time.Month(i + 1)
		out = append(out, MonthTotal{Month: int(m), Label: a.catalog.Month(m), Amount: s.Float()})
	}
	return out
}
