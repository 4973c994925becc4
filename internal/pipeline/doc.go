// Package pipeline orchestrates the two linear transforms over the
// raw exports: Load, Clean, Filter, Cap, Features, Save for sessions
// and Load, Clean, Features, Save for products. Every stage is a pure
// function returning a new table state plus a report; this package
// only sequences them and aggregates the reports into a RunReport.
// A run either completes and writes both outputs, or fails before
// writing anything.
package pipeline
