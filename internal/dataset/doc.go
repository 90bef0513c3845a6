// Package dataset loads tabular samples behind the single header line
// "# <format_id> <n_rows> <n_cols>" shared by both supported
// formats: CSV (format_id 0, "label,x1,...,xn" per row) and binary
// (format_id 1, a fixed 32-byte label field followed by n_cols
// little-endian float64 values per row).
//
// Every malformed header or truncated row returns an error wrapping
// ErrInvalidDataset; the caller is expected to abort rather than load a
// partial dataset.
package dataset
