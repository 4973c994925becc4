// Package cleaning turns raw string tables into typed records and
// normalizes the fields downstream stages depend on.
//
// For sessions that means filling structurally-absent behavioral
// metrics with zero, parsing the 8-digit session date, and trimming
// or lowercasing the free-text dimensions. For products it means type
// coercion plus mapping placeholder category values to a canonical
// "Uncategorized" label and stripping the store's path prefix.
// Cleaning never drops or reorders rows; anything unparseable is a
// fatal input error, surfaced before any output is written.
package cleaning
