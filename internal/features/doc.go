// Package features derives the analytical columns from cleaned
// inputs: funnel depth and converter flags, engagement and duration
// buckets, canonical channel groups, and per-product efficiency
// metrics. Derivation only adds columns; it never mutates existing
// ones or changes the row count.
package features
