package outliers

import (
	"math"
	"sort"
)

// Quantile returns the q-quantile (q in [0,1]) of values using the
// higher nearest-rank convention: the order statistic at index
// ceil(q*(n-1)). The result is always an actual data point, which
// keeps percentile capping idempotent; interpolated quantiles of
// already-capped data land strictly below the cap and would clamp
// again on every run. The input slice is not modified. An empty input
// returns 0; callers guard that case.
func Quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}

	idx := int(math.Ceil(q * float64(n-1)))
	if idx >= n {
		idx = n - 1
	}
	return sorted[idx]
}

// Median returns the middle value, averaging the two central order
// statistics for even-length inputs.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
