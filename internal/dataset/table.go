package dataset

import (
	"errors"
	"fmt"
)

// Expected column names of the session funnel export.
const (
	ColFullVisitorID  = "fullVisitorId"
	ColDate           = "date"
	ColTotalPageviews = "total_pageviews"
	ColTimeOnSite     = "time_on_site"
	ColRevenue        = "transaction_revenue_usd"
	ColDeviceCategory = "device_category"
	ColCountry        = "country"
	ColTrafficMedium  = "traffic_medium"
)

// Expected column names of the product performance export.
const (
	ColProductCategory = "product_category"
	ColSessions        = "sessions"
	ColPurchases       = "purchases"
	ColTotalRevenue    = "total_revenue_usd"
)

var (
	// ErrMissingColumn is returned when an expected column is absent
	// from an input file's header row.
	ErrMissingColumn = errors.New("missing expected column")
	// ErrUnsupportedFormat is returned for input files whose
	// extension is neither .csv nor .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)

// RawTable is an input file materialized as strings, one row per
// record, before any type coercion.
type RawTable struct {
	Path    string
	Headers []string
	Rows    [][]string
}

// Column returns the index of the named column.
func (t *RawTable) Column(name string) (int, error) {
	for i, h := range t.Headers {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q in %s", ErrMissingColumn, name, t.Path)
}

// Cell returns the value at the given row and column index, or the
// empty string when the row is shorter than the header. Excel exports
// drop trailing empty cells, so short rows are structurally absent
// values rather than errors.
func (t *RawTable) Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
