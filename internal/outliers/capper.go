package outliers

import (
	"log/slog"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

// CapReport summarizes the winsorization stage. RevenueCapApplied is
// false when the table has no positive-revenue sessions, in which
// case the percentile is undefined and revenue capping is skipped.
type CapReport struct {
	Rows              int
	TimeCapped        int
	RevenueCapped     int
	RevenueCap        float64
	RevenueCapApplied bool
}

// CapValues clamps extreme-but-legitimate values on the surviving
// sessions. Time on site is capped at cfg.MaxTimeOnSite. Transaction
// revenue is winsorized at the cfg.RevenueCapPercentile percentile of
// positive revenue only; zero-revenue non-converters are excluded
// from the percentile so they cannot deflate the cap. Both passes
// clamp in place of the value, never remove rows.
func CapValues(sessions []dataset.Session, cfg config.OutliersConfig, logger *slog.Logger) ([]dataset.Session, CapReport) {
	if logger == nil {
		logger = slog.Default()
	}
	report := CapReport{Rows: len(sessions)}

	out := make([]dataset.Session, len(sessions))
	copy(out, sessions)

	for i := range out {
		if out[i].TimeOnSite > cfg.MaxTimeOnSite {
			out[i].TimeOnSite = cfg.MaxTimeOnSite
			report.TimeCapped++
		}
	}
	logger.Info("time-on-site capping complete",
		slog.Int("capped", report.TimeCapped),
		slog.Int("cap_seconds", cfg.MaxTimeOnSite))

	var positive []float64
	for _, s := range out {
		if s.TransactionRevenueUSD > 0 {
			positive = append(positive, s.TransactionRevenueUSD)
		}
	}
	if len(positive) == 0 {
		logger.Warn("no positive-revenue sessions, skipping revenue winsorization")
		return out, report
	}

	report.RevenueCap = Quantile(positive, cfg.RevenueCapPercentile/100)
	report.RevenueCapApplied = true
	for i := range out {
		if out[i].TransactionRevenueUSD > report.RevenueCap {
			out[i].TransactionRevenueUSD = report.RevenueCap
			report.RevenueCapped++
		}
	}
	logger.Info("revenue winsorization complete",
		slog.Int("capped", report.RevenueCapped),
		slog.Float64("cap_usd", report.RevenueCap),
		slog.Float64("percentile", cfg.RevenueCapPercentile))

	return out, report
}
