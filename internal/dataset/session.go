package dataset

import "time"

// Session is one user visit from the session funnel export. StageFlags
// is ordered by funnel depth per config.FunnelConfig.Stages; the flags
// are cumulative by construction of the source system (reaching stage
// N implies stages 1..N-1), which is trusted here, not re-validated.
type Session struct {
	FullVisitorID string
	RawDate       string
	SessionDate   time.Time
	StageFlags    []int

	TotalPageviews        int
	TimeOnSite            int
	TransactionRevenueUSD float64

	DeviceCategory string
	Country        string
	TrafficMedium  string

	// Derived columns, filled by the session feature stage.
	DeepestFunnelStage int
	IsConverter        int
	EngagementTier     string
	DurationBucket     string
	ChannelGroup       string
	IsUS               int
}

// StageSum returns the count of funnel stages the session reached.
func (s *Session) StageSum() int {
	sum := 0
	for _, f := range s.StageFlags {
		sum += f
	}
	return sum
}
