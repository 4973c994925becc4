package features

// Bin is one (lower-exclusive, upper-inclusive] range with its label.
// Bins are evaluated in order; out-of-range values clamp to the
// nearest end bucket rather than erroring, since the binned fields
// are bounded upstream by cleaning and capping.
type Bin struct {
	Lower float64 // exclusive
	Upper float64 // inclusive
	Label string
}

// EngagementBins tier sessions by pageview count.
var EngagementBins = []Bin{
	{-1, 1, "Bounce"},
	{1, 3, "Low"},
	{3, 7, "Medium"},
	{7, 1000, "High"},
}

// DurationBins bucket sessions by time on site in seconds.
var DurationBins = []Bin{
	{-1, 0, "Zero"},
	{0, 60, "Under 1 min"},
	{60, 300, "1-5 min"},
	{300, 100000, "Over 5 min"},
}

// BinLabel returns the label of the bin containing v.
func BinLabel(bins []Bin, v float64) string {
	if len(bins) == 0 {
		return ""
	}
	if v <= bins[0].Upper {
		return bins[0].Label
	}
	for _, b := range bins[1:] {
		if v > b.Lower && v <= b.Upper {
			return b.Label
		}
	}
	return bins[len(bins)-1].Label
}
