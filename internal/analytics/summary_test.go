package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailcli/pkg/contracts/domain"
)

func TestAnalyzer_SalesSummary(t *testing.T) {
	rows := []domain.Transaction{
		row("536365", 17850, "UK", "A", "a", 2, 10, date(2010, time.December, 1)),
		row("536365", 17850, "UK", "B", "b", 1, 5, date(2010, time.December, 1)),
		row("536370", 12583, "France", "A", "a", 4, 2.5, date(2011, time.January, 10)),
		row("536412", 17850, "UK", "C", "c", 3, 1, date(2011, time.February, 3)),
	}

	analyzer := NewAnalyzer(nil)
	monthly := analyzer.Monthly(rows)
	weekly := analyzer.Weekly(rows)

	summary, err := analyzer.SalesSummary(rows, monthly, weekly)
	require.NoError(t, err)

	assert.InDelta(t, 38.0, summary.TotalRevenue, 1e-9)
	assert.Equal(t, 2, summary.DistinctCustomers)
	assert.Equal(t, 3, summary.DistinctInvoices)
	assert.Equal(t, int64(10), summary.TotalQuantity)
	assert.True(t, summary.MeanMonthlyGrowth.Valid)
	assert.True(t, summary.MeanWeeklyGrowth.Valid)
}

func TestMeanGrowth(t *testing.T) {
	tests := []struct {
		name      string
		periods   []domain.PeriodRevenue
		want      float64
		wantValid bool
	}{
		{
			name: "excludes the undefined first value",
			periods: []domain.PeriodRevenue{
				{Revenue: 100},
				{Revenue: 150, GrowthPercent: domain.Float64Of(50)},
				{Revenue: 150, GrowthPercent: domain.Float64Of(0)},
			},
			want:      25,
			wantValid: true,
		},
		{
			name:    "single period has no defined growth",
			periods: []domain.PeriodRevenue{{Revenue: 100}},
		},
		{
			name: "empty series",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanGrowth(tt.periods)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.InDelta(t, tt.want, got.Float64, 1e-9)
			}
		})
	}
}

func TestAnalyzer_SalesSummary_Empty(t *testing.T) {
	summary, err := NewAnalyzer(nil).SalesSummary(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.DistinctCustomers)
	assert.False(t, summary.MeanMonthlyGrowth.Valid)
	assert.False(t, summary.MeanWeeklyGrowth.Valid)
}
