// Package grid normalizes flat and two-dimensional item collections into a
// canonical row-major grid.
//
// The input shape is resolved once, when a Source is built:
//   - Flat sources hold a single sequence of items.
//   - Matrix sources hold a sequence of rows.
//
// Normalize turns either shape, optionally transposed, into a Canonical grid
// whose rows all have the same length. Flat input becomes a single column
// (or a single row when transposed). Canonical grids are read-only and never
// share backing arrays with the caller's input.
package grid
