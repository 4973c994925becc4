package cleaning

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

const dateLayout = "20060102"

// NormalizeReport summarizes the session cleaning stage. RowsIn and
// RowsOut are equal by contract; the filled counts record how many
// absent metric cells were defaulted to zero.
type NormalizeReport struct {
	RowsIn           int
	RowsOut          int
	FilledPageviews  int
	FilledTimeOnSite int
	FilledRevenue    int
}

// NormalizeSessions coerces the raw session table into typed records.
// Absent pageview, time-on-site, and revenue cells (single-hit
// bounces) become zero so aggregations see every row. The session
// date is parsed from its YYYYMMDD form, device category is
// lowercased and trimmed, and country is trimmed. The visitor ID is
// carried verbatim as text.
func NormalizeSessions(tbl *dataset.RawTable, cfg *config.Config, logger *slog.Logger) ([]dataset.Session, NormalizeReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	report := NormalizeReport{RowsIn: len(tbl.Rows)}

	cols := struct {
		visitor, date, pageviews, timeOnSite, revenue, device, country, medium int
		stages                                                                 []int
	}{}

	var err error
	lookups := []struct {
		name string
		dst  *int
	}{
		{dataset.ColFullVisitorID, &cols.visitor},
		{dataset.ColDate, &cols.date},
		{dataset.ColTotalPageviews, &cols.pageviews},
		{dataset.ColTimeOnSite, &cols.timeOnSite},
		{dataset.ColRevenue, &cols.revenue},
		{dataset.ColDeviceCategory, &cols.device},
		{dataset.ColCountry, &cols.country},
		{dataset.ColTrafficMedium, &cols.medium},
	}
	for _, l := range lookups {
		if *l.dst, err = tbl.Column(l.name); err != nil {
			return nil, report, err
		}
	}
	for _, stage := range cfg.Funnel.Stages {
		idx, err := tbl.Column(stage)
		if err != nil {
			return nil, report, err
		}
		cols.stages = append(cols.stages, idx)
	}

	sessions := make([]dataset.Session, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		s := dataset.Session{
			FullVisitorID:  tbl.Cell(row, cols.visitor),
			RawDate:        tbl.Cell(row, cols.date),
			DeviceCategory: strings.TrimSpace(strings.ToLower(tbl.Cell(row, cols.device))),
			Country:        strings.TrimSpace(tbl.Cell(row, cols.country)),
			TrafficMedium:  tbl.Cell(row, cols.medium),
		}

		s.SessionDate, err = time.Parse(dateLayout, s.RawDate)
		if err != nil {
			return nil, report, fmt.Errorf("row %d: invalid %s value %q: %w",
				i+1, dataset.ColDate, s.RawDate, err)
		}

		var filled bool
		if s.TotalPageviews, filled, err = parseIntCell(tbl.Cell(row, cols.pageviews)); err != nil {
			return nil, report, cellError(i, dataset.ColTotalPageviews, err)
		} else if filled {
			report.FilledPageviews++
		}
		if s.TimeOnSite, filled, err = parseIntCell(tbl.Cell(row, cols.timeOnSite)); err != nil {
			return nil, report, cellError(i, dataset.ColTimeOnSite, err)
		} else if filled {
			report.FilledTimeOnSite++
		}
		if s.TransactionRevenueUSD, filled, err = parseFloatCell(tbl.Cell(row, cols.revenue)); err != nil {
			return nil, report, cellError(i, dataset.ColRevenue, err)
		} else if filled {
			report.FilledRevenue++
		}

		s.StageFlags = make([]int, len(cols.stages))
		for j, idx := range cols.stages {
			flag, _, err := parseIntCell(tbl.Cell(row, idx))
			if err != nil {
				return nil, report, cellError(i, cfg.Funnel.Stages[j], err)
			}
			s.StageFlags[j] = flag
		}

		sessions = append(sessions, s)
	}

	report.RowsOut = len(sessions)
	logger.Info("session cleaning complete",
		slog.Int("rows_before", report.RowsIn),
		slog.Int("rows_after", report.RowsOut),
		slog.Int("filled_pageviews", report.FilledPageviews),
		slog.Int("filled_time_on_site", report.FilledTimeOnSite),
		slog.Int("filled_revenue", report.FilledRevenue))
	return sessions, report, nil
}

func cellError(row int, column string, err error) error {
	return fmt.Errorf("row %d: column %s: %w", row+1, column, err)
}

// parseIntCell parses an integer cell. Empty and NA cells are
// structurally absent and default to zero; the second return reports
// that fill. Values serialized as floats ("12.0") are accepted since
// null-padded exports render integer columns that way.
func parseIntCell(raw string) (int, bool, error) {
	raw = strings.TrimSpace(raw)
	if isAbsent(raw) {
		return 0, true, nil
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid integer value %q", raw)
	}
	return int(f), false, nil
}

func parseFloatCell(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if isAbsent(raw) {
		return 0.0, true, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid numeric value %q", raw)
	}
	return v, false, nil
}

func isAbsent(raw string) bool {
	switch raw {
	case "", "NA", "NaN", "null":
		return true
	}
	return false
}
