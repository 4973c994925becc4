package outliers

import (
	"log/slog"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

// BotReport summarizes bot removal. ExtremePageviews and
// ImpossibleSpeed count each signal's matches independently; Removed
// counts distinct rows dropped, so a session matching both signals
// appears in both signal counts but only once in Removed.
type BotReport struct {
	RowsIn           int
	ExtremePageviews int
	ImpossibleSpeed  int
	Removed          int
	RowsOut          int
}

// FilterBots drops sessions matching either bot signature and returns
// the surviving sessions.
//
// The extreme-pageview signal flags sessions above cfg.MaxPageviews.
// The impossible-speed signal flags sessions navigating faster than
// cfg.MaxPagesPerSecond, but only when time on site is positive and
// the session has at least cfg.MinPageviewsForSpeedCheck pageviews;
// near-instant single-page loads are exempt to avoid false positives.
func FilterBots(sessions []dataset.Session, cfg config.OutliersConfig, logger *slog.Logger) ([]dataset.Session, BotReport) {
	if logger == nil {
		logger = slog.Default()
	}
	report := BotReport{RowsIn: len(sessions)}

	kept := make([]dataset.Session, 0, len(sessions))
	for _, s := range sessions {
		extremePV := s.TotalPageviews > cfg.MaxPageviews
		if extremePV {
			report.ExtremePageviews++
		}

		speedBot := false
		if s.TimeOnSite > 0 && s.TotalPageviews >= cfg.MinPageviewsForSpeedCheck {
			pagesPerSec := float64(s.TotalPageviews) / float64(s.TimeOnSite)
			speedBot = pagesPerSec > cfg.MaxPagesPerSecond
		}
		if speedBot {
			report.ImpossibleSpeed++
		}

		if extremePV || speedBot {
			report.Removed++
			continue
		}
		kept = append(kept, s)
	}

	report.RowsOut = len(kept)
	logger.Info("bot removal complete",
		slog.Int("removed", report.Removed),
		slog.Int("extreme_pageviews", report.ExtremePageviews),
		slog.Int("impossible_speed", report.ImpossibleSpeed),
		slog.Int("rows_before", report.RowsIn),
		slog.Int("rows_after", report.RowsOut))
	return kept, report
}
