package exporter

import (
	"math"
	"strconv"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

const dateFormat = "2006-01-02"

// SessionHeaders returns the output column order for the session
// table: all original columns, the parsed session date, then the
// derived columns. No synthetic row index is emitted.
func SessionHeaders(cfg *config.Config) []string {
	headers := []string{
		dataset.ColFullVisitorID,
		dataset.ColDate,
	}
	headers = append(headers, cfg.Funnel.Stages...)
	return append(headers,
		dataset.ColTotalPageviews,
		dataset.ColTimeOnSite,
		dataset.ColRevenue,
		dataset.ColDeviceCategory,
		dataset.ColCountry,
		dataset.ColTrafficMedium,
		"session_date",
		"deepest_funnel_stage",
		"is_converter",
		"engagement_tier",
		"duration_bucket",
		"channel_group",
		"is_us",
	)
}

// SessionRecords converts sessions to CSV records in SessionHeaders
// order.
func SessionRecords(sessions []dataset.Session, cfg *config.Config) [][]string {
	records := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		record := []string{s.FullVisitorID, s.RawDate}
		for i := range cfg.Funnel.Stages {
			flag := 0
			if i < len(s.StageFlags) {
				flag = s.StageFlags[i]
			}
			record = append(record, strconv.Itoa(flag))
		}
		record = append(record,
			strconv.Itoa(s.TotalPageviews),
			strconv.Itoa(s.TimeOnSite),
			formatFloat(s.TransactionRevenueUSD),
			s.DeviceCategory,
			s.Country,
			s.TrafficMedium,
			s.SessionDate.Format(dateFormat),
			strconv.Itoa(s.DeepestFunnelStage),
			strconv.Itoa(s.IsConverter),
			s.EngagementTier,
			s.DurationBucket,
			s.ChannelGroup,
			strconv.Itoa(s.IsUS),
		)
		records = append(records, record)
	}
	return records
}

// ProductHeaders returns the output column order for the product
// table.
func ProductHeaders() []string {
	return []string{
		dataset.ColProductCategory,
		dataset.ColSessions,
		dataset.ColPurchases,
		dataset.ColTotalRevenue,
		"product_category_clean",
		"conversion_rate",
		"revenue_per_session",
	}
}

// ProductRecords converts products to CSV records in ProductHeaders
// order.
func ProductRecords(products []dataset.Product) [][]string {
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			p.ProductCategory,
			strconv.Itoa(p.Sessions),
			strconv.Itoa(p.Purchases),
			formatFloat(p.TotalRevenueUSD),
			p.CategoryClean,
			formatFloat(p.ConversionRate),
			formatFloat(p.RevenuePerSession),
		})
	}
	return records
}

// formatFloat renders a float without trailing zero padding. The NaN
// sentinel for undefined metrics renders literally as "NaN".
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
