package features

import (
	"log/slog"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

// channelGroups maps raw traffic mediums to canonical channel groups.
// Any medium outside the table, including unseen values, falls back
// to defaultChannelGroup.
var channelGroups = map[string]string{
	"(none)":    "Direct",
	"organic":   "Organic Search",
	"referral":  "Referral",
	"cpc":       "Paid Search",
	"affiliate": "Affiliate",
	"cpm":       "Display",
	"(not set)": "Other",
}

const defaultChannelGroup = "Other"

// usCountry is the exact post-trim country value marking US sessions.
const usCountry = "United States"

// SessionFeatureReport summarizes session feature derivation.
type SessionFeatureReport struct {
	Rows          int
	Converters    int
	FeaturesAdded int
}

// DeriveSessionFeatures computes the six derived columns on every
// session. The raw stage flags only show whether a stage was hit;
// the derived depth groups sessions by highest level of intent.
//
// DeepestFunnelStage is the count of set stage flags minus one,
// floored at zero, so a home-only session has depth 0 and a full
// funnel has depth len(stages)-1. The flags are cumulative by
// construction of the source system, which is trusted rather than
// re-validated here.
func DeriveSessionFeatures(sessions []dataset.Session, cfg *config.Config, logger *slog.Logger) ([]dataset.Session, SessionFeatureReport) {
	if logger == nil {
		logger = slog.Default()
	}

	transactionIdx := len(cfg.Funnel.Stages) - 1
	out := make([]dataset.Session, len(sessions))
	copy(out, sessions)

	report := SessionFeatureReport{Rows: len(out), FeaturesAdded: 6}
	for i := range out {
		s := &out[i]

		s.DeepestFunnelStage = s.StageSum() - 1
		if s.DeepestFunnelStage < 0 {
			s.DeepestFunnelStage = 0
		}

		s.IsConverter = 0
		if transactionIdx < len(s.StageFlags) && s.StageFlags[transactionIdx] == 1 {
			s.IsConverter = 1
			report.Converters++
		}

		s.EngagementTier = BinLabel(EngagementBins, float64(s.TotalPageviews))
		s.DurationBucket = BinLabel(DurationBins, float64(s.TimeOnSite))

		s.ChannelGroup = defaultChannelGroup
		if group, ok := channelGroups[s.TrafficMedium]; ok {
			s.ChannelGroup = group
		}

		s.IsUS = 0
		if s.Country == usCountry {
			s.IsUS = 1
		}
	}

	logger.Info("session feature engineering complete",
		slog.Int("rows", report.Rows),
		slog.Int("converters", report.Converters),
		slog.Int("features_added", report.FeaturesAdded))
	return out, report
}
