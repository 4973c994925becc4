package cleaning

import (
	"log/slog"
	"strings"

	"github.com/jmarbis1703/ga360-funnel-analysis/internal/config"
	"github.com/jmarbis1703/ga360-funnel-analysis/internal/dataset"
)

// Uncategorized is the canonical label for placeholder categories.
const Uncategorized = "Uncategorized"

// CategoryReport summarizes product category normalization.
type CategoryReport struct {
	Products           int
	PlaceholdersMapped int
	DistinctCategories int
}

// ParseProducts coerces the raw product table into typed records.
// Unlike session metrics, product metrics are aggregates and expected
// to be present; absent cells still default to zero rather than
// failing the run.
func ParseProducts(tbl *dataset.RawTable, logger *slog.Logger) ([]dataset.Product, error) {
	if logger == nil {
		logger = slog.Default()
	}

	catIdx, err := tbl.Column(dataset.ColProductCategory)
	if err != nil {
		return nil, err
	}
	sessIdx, err := tbl.Column(dataset.ColSessions)
	if err != nil {
		return nil, err
	}
	purchIdx, err := tbl.Column(dataset.ColPurchases)
	if err != nil {
		return nil, err
	}
	revIdx, err := tbl.Column(dataset.ColTotalRevenue)
	if err != nil {
		return nil, err
	}

	products := make([]dataset.Product, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		p := dataset.Product{ProductCategory: tbl.Cell(row, catIdx)}

		if p.Sessions, _, err = parseIntCell(tbl.Cell(row, sessIdx)); err != nil {
			return nil, cellError(i, dataset.ColSessions, err)
		}
		if p.Purchases, _, err = parseIntCell(tbl.Cell(row, purchIdx)); err != nil {
			return nil, cellError(i, dataset.ColPurchases, err)
		}
		if p.TotalRevenueUSD, _, err = parseFloatCell(tbl.Cell(row, revIdx)); err != nil {
			return nil, cellError(i, dataset.ColTotalRevenue, err)
		}

		products = append(products, p)
	}

	logger.Info("parsed product table", slog.Int("rows", len(products)))
	return products, nil
}

// NormalizeCategories fills CategoryClean on every product: category
// values from the placeholder set become Uncategorized, then the
// configured path prefix and any leading or trailing slashes are
// stripped. The raw category column is left untouched.
func NormalizeCategories(products []dataset.Product, cfg config.ProductsConfig, logger *slog.Logger) ([]dataset.Product, CategoryReport) {
	if logger == nil {
		logger = slog.Default()
	}

	placeholders := make(map[string]bool, len(cfg.Placeholders))
	for _, p := range cfg.Placeholders {
		placeholders[p] = true
	}

	out := make([]dataset.Product, 0, len(products))
	distinct := make(map[string]bool)
	report := CategoryReport{Products: len(products)}

	for _, p := range products {
		clean := p.ProductCategory
		if placeholders[clean] {
			clean = Uncategorized
			report.PlaceholdersMapped++
		}
		clean = strings.TrimPrefix(clean, cfg.CategoryPrefix)
		clean = strings.Trim(clean, "/")

		p.CategoryClean = clean
		distinct[clean] = true
		out = append(out, p)
	}

	report.DistinctCategories = len(distinct)
	logger.Info("product cleaning complete",
		slog.Int("products", report.Products),
		slog.Int("placeholders_mapped", report.PlaceholdersMapped),
		slog.Int("clean_categories", report.DistinctCategories))
	return out, report
}
