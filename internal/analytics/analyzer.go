package analytics

import (
	"log/slog"

	"retailcli/pkg/contracts/domain"
)

// Analyzer computes aggregate views over cleaned, derived transactions.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// stringSet counts distinct string keys.
type stringSet map[string]struct{}

func (s stringSet) add(key string) {
	s[key] = struct{}{}
}

// int64Set counts distinct numeric identifiers.
type int64Set map[int64]struct{}

func (s int64Set) add(key int64) {
	s[key] = struct{}{}
}

// GrowthPercent computes the period-over-period change in percent. The
// result is null when the previous period's revenue is zero; callers leave
// the first period of a series null as well.
func GrowthPercent(current, previous float64) domain.NullFloat64 {
	if previous == 0 {
		return domain.NullFloat64{}
	}
	return domain.Float64Of((current - previous) / previous * 100)
}
