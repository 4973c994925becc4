// Package exporter writes the cleaned, feature-augmented tables to
// delimited output files. Writes are atomic: each file is written to
// a temporary sibling and renamed into place only after a successful
// flush, so a failed run never leaves a half-written output behind.
package exporter
