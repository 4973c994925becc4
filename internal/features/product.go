package features

import (
	"log/slog"
	"math"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/outliers"
)

// ProductFeatureReport summarizes product feature derivation. The
// medians exclude zero-session rows, whose derived metrics are NaN.
type ProductFeatureReport struct {
	Rows                    int
	ZeroSessionRows         int
	MedianConversionRate    float64
	MedianRevenuePerSession float64
}

// DeriveProductFeatures computes conversion rate and revenue per
// session for every product. These normalize for traffic differences,
// revealing which categories convert efficiently regardless of
// session volume. Zero-session rows get NaN for both metrics; the
// source leaves that division undefined and a sentinel keeps one
// degenerate aggregate from failing the whole run.
func DeriveProductFeatures(products []dataset.Product, logger *slog.Logger) ([]dataset.Product, ProductFeatureReport) {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]dataset.Product, len(products))
	copy(out, products)

	report := ProductFeatureReport{Rows: len(out)}
	var rates, revenues []float64
	for i := range out {
		p := &out[i]
		if p.Sessions == 0 {
			p.ConversionRate = math.NaN()
			p.RevenuePerSession = math.NaN()
			report.ZeroSessionRows++
			continue
		}
		p.ConversionRate = float64(p.Purchases) / float64(p.Sessions)
		p.RevenuePerSession = p.TotalRevenueUSD / float64(p.Sessions)
		rates = append(rates, p.ConversionRate)
		revenues = append(revenues, p.RevenuePerSession)
	}

	report.MedianConversionRate = outliers.Median(rates)
	report.MedianRevenuePerSession = outliers.Median(revenues)

	logger.Info("product feature engineering complete",
		slog.Int("rows", report.Rows),
		slog.Int("zero_session_rows", report.ZeroSessionRows),
		slog.Float64("median_conversion_rate", report.MedianConversionRate),
		slog.Float64("median_revenue_per_session", report.MedianRevenuePerSession))
	return out, report
}
