// Package outliers removes or caps sessions that would distort
// business metrics.
//
// Two heuristics flag bot traffic: an extreme pageview count, and a
// browsing speed no human can sustain. Flagged sessions are dropped
// whole. Legitimate-but-extreme values are instead winsorized: time
// on site is clamped at a fixed ceiling and converter revenue at a
// percentile of the positive-revenue distribution. Capping is
// idempotent and never changes the row count.
package outliers
