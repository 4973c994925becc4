package outliers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

func TestCapValuesTimeOnSite(t *testing.T) {
	cfg := config.Default().Outliers
	sessions := []dataset.Session{
		{TimeOnSite: 10801},
		{TimeOnSite: 10800},
		{TimeOnSite: 50000},
		{TimeOnSite: 0},
	}

	out, report := CapValues(sessions, cfg, nil)

	require.Len(t, out, 4)
	assert.Equal(t, 2, report.TimeCapped)
	for _, s := range out {
		assert.LessOrEqual(t, s.TimeOnSite, cfg.MaxTimeOnSite)
	}
	assert.Equal(t, 10800, out[0].TimeOnSite)
	assert.Equal(t, 10800, out[1].TimeOnSite)

	// Input slice is not mutated.
	assert.Equal(t, 10801, sessions[0].TimeOnSite)
}

func TestCapValuesRevenueWinsorization(t *testing.T) {
	cfg := config.Default().Outliers
	cfg.RevenueCapPercentile = 50 // median cap keeps the test readable

	sessions := []dataset.Session{
		{TransactionRevenueUSD: 0},  // non-converter, excluded from percentile
		{TransactionRevenueUSD: 10},
		{TransactionRevenueUSD: 20},
		{TransactionRevenueUSD: 30},
	}

	out, report := CapValues(sessions, cfg, nil)

	assert.True(t, report.RevenueCapApplied)
	assert.Equal(t, 20.0, report.RevenueCap)
	assert.Equal(t, 1, report.RevenueCapped)
	assert.Equal(t, 0.0, out[0].TransactionRevenueUSD)
	assert.Equal(t, 20.0, out[3].TransactionRevenueUSD)
}

func TestCapValuesNoConverters(t *testing.T) {
	cfg := config.Default().Outliers
	sessions := []dataset.Session{
		{TransactionRevenueUSD: 0},
		{TransactionRevenueUSD: 0, TimeOnSite: 99999},
	}

	out, report := CapValues(sessions, cfg, nil)

	require.Len(t, out, 2)
	assert.False(t, report.RevenueCapApplied)
	assert.Zero(t, report.RevenueCapped)
	// Time capping still happens.
	assert.Equal(t, 1, report.TimeCapped)
}

func TestCapValuesIdempotent(t *testing.T) {
	cfg := config.Default().Outliers
	cfg.RevenueCapPercentile = 50 // low percentile so the cap engages on a small table

	sessions := []dataset.Session{{TimeOnSite: 99999}, {TransactionRevenueUSD: 0}}
	for i := 1; i <= 10; i++ {
		sessions = append(sessions, dataset.Session{TransactionRevenueUSD: float64(i * 10)})
	}

	once, first := CapValues(sessions, cfg, nil)
	require.Positive(t, first.TimeCapped)
	require.Positive(t, first.RevenueCapped)

	twice, report := CapValues(once, cfg, nil)
	assert.Equal(t, once, twice)
	assert.Zero(t, report.TimeCapped)
	assert.Zero(t, report.RevenueCapped)
	assert.Equal(t, first.RevenueCap, report.RevenueCap)
}

func TestCapValuesEmptyInput(t *testing.T) {
	out, report := CapValues(nil, config.Default().Outliers, nil)
	assert.Empty(t, out)
	assert.False(t, report.RevenueCapApplied)
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		q      float64
		want   float64
	}{
		{"empty", nil, 0.5, 0},
		{"single value", []float64{7}, 0.995, 7},
		{"q zero is min", []float64{5, 1, 9}, 0, 1},
		{"q one is max", []float64{5, 1, 9}, 1, 9},
		{"exact order statistic", []float64{10, 20, 30}, 0.5, 20},
		{"rank rounds up", []float64{10, 20, 30}, 0.75, 30},
		{"result is a data point", []float64{12, 40, 5000}, 0.995, 5000},
		{"unsorted input", []float64{30, 10, 20}, 0.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantile(tt.values, tt.q), 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
