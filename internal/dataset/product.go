package dataset

// Product is one product-category aggregate from the product
// performance export. Sessions and Purchases are aggregates over the
// same traffic as the session table but are never joined to it.
type Product struct {
	ProductCategory string
	Sessions        int
	Purchases       int
	TotalRevenueUSD float64

	// CategoryClean is the normalized category label; the raw value
	// stays untouched in ProductCategory.
	CategoryClean string

	// Derived metrics, NaN when Sessions is zero.
	ConversionRate    float64
	RevenuePerSession float64
}
