// Package window computes which cells of a uniform grid fall inside a
// scrolled viewport.
//
// Sizing holds the per-item and viewport pixel dimensions together with the
// buffer, the number of extra rows and columns materialized on each side of
// the strictly visible window. Compute maps a scroll offset onto a half-open
// Range of row and column indexes; its cost does not depend on grid size.
package window
