package analytics

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"retailcli/pkg/contracts/domain"
)

// Yearly sums revenue per calendar year, chronologically ascending.
func (a *Analyzer) Yearly(rows []domain.Transaction) []domain.PeriodRevenue {
	return a.bucket(rows, "yearly", func(t time.Time) (string, time.Time) {
		return t.Format("2006"), time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	})
}

// Monthly sums revenue per calendar month, chronologically ascending.
func (a *Analyzer) Monthly(rows []domain.Transaction) []domain.PeriodRevenue {
	return a.bucket(rows, "monthly", func(t time.Time) (string, time.Time) {
		return t.Format("2006-01"), time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	})
}

// Weekly sums revenue per ISO week, chronologically ascending. The label is
// the ISO year-week pair, which differs from the calendar year at year
// boundaries.
func (a *Analyzer) Weekly(rows []domain.Transaction) []domain.PeriodRevenue {
	return a.bucket(rows, "weekly", func(t time.Time) (string, time.Time) {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), isoWeekStart(t)
	})
}

// bucket groups rows by the period key, sums revenue and attaches
// period-over-period growth. The first period's growth is null, never zero.
// Rows without a valid timestamp cannot be bucketed and are skipped.
func (a *Analyzer) bucket(rows []domain.Transaction, name string, keyFn func(time.Time) (string, time.Time)) []domain.PeriodRevenue {
	revenue := make(map[string]float64)
	starts := make(map[string]time.Time)
	skipped := 0

	for _, tx := range rows {
		ts, err := tx.InvoiceTimestamp.Value()
		if err != nil {
			skipped++
			continue
		}
		key, start := keyFn(ts)
		revenue[key] += tx.Revenue
		starts[key] = start
	}

	periods := make([]domain.PeriodRevenue, 0, len(revenue))
	for key, total := range revenue {
		periods = append(periods, domain.PeriodRevenue{
			Period:  key,
			Start:   starts[key],
			Revenue: total,
		})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.Before(periods[j].Start)
	})

	for i := 1; i < len(periods); i++ {
		periods[i].GrowthPercent = GrowthPercent(periods[i].Revenue, periods[i-1].Revenue)
	}

	if skipped > 0 {
		a.logger.Warn("Rows without valid timestamp excluded from time series",
			slog.String("series", name),
			slog.Int("skipped", skipped))
	}
	return periods
}

// Series converts a revenue series into the ordered label/value form handed
// to plotting collaborators.
func Series(name string, periods []domain.PeriodRevenue) domain.Series {
	s := domain.Series{Name: name}
	for _, p := range periods {
		s.Append(p.Period, p.Revenue)
	}
	return s
}

// isoWeekStart returns the Monday beginning t's ISO week, at midnight UTC.
func isoWeekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, 1-weekday)
}
