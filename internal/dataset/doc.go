// Package dataset holds the record types shared by every pipeline
// stage and the loaders that read the raw exports into memory.
//
// Loading is deliberately dumb: it produces a RawTable of strings and
// leaves all type coercion to the cleaning stage, so a load succeeds
// or fails purely on file structure (readable file, header row,
// expected columns). Both CSV and Excel exports are accepted; the
// visitor identifier column is always carried as text so IDs are
// never rounded or truncated.
package dataset
