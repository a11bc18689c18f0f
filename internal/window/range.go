package window

import (
	"fmt"
	"math"

	"github.com/rshade/lazygrid/internal/viewport"
)

// Range is a half-open interval of row and column indexes: rows
// [RowStart, RowEnd) and columns [ColStart, ColEnd).
// Compute guarantees 0 <= RowStart <= RowEnd <= rows and the column equivalent.
type Range struct {
	RowStart int `json:"row_start" yaml:"row_start"`
	RowEnd   int `json:"row_end"   yaml:"row_end"`
	ColStart int `json:"col_start" yaml:"col_start"`
	ColEnd   int `json:"col_end"   yaml:"col_end"`
}

// Rows returns the number of rows in the range.
func (r Range) Rows() int {
	return r.RowEnd - r.RowStart
}

// Cols returns the number of columns in the range.
func (r Range) Cols() int {
	return r.ColEnd - r.ColStart
}

// Len returns the number of cells in the range.
func (r Range) Len() int {
	return r.Rows() * r.Cols()
}

// Empty reports whether the range contains no cells.
func (r Range) Empty() bool {
	return r.Len() == 0
}

// Contains reports whether cell (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.RowStart && row < r.RowEnd && col >= r.ColStart && col < r.ColEnd
}

// String formats the range as "rows [a,b) cols [c,d)".
func (r Range) String() string {
	return fmt.Sprintf("rows [%d,%d) cols [%d,%d)", r.RowStart, r.RowEnd, r.ColStart, r.ColEnd)
}

// Compute returns the cells of a rows x cols grid that must be materialized
// for the viewport scrolled to vp:
//
//	rowStart = max(0, floor(top / itemHeight) - buffer)
//	rowEnd   = min(rows, ceil((top + viewportHeight) / itemHeight) + buffer)
//	colStart = max(0, floor(left / itemWidth) - buffer)
//	colEnd   = min(cols, ceil((left + viewportWidth) / itemWidth) + buffer)
//
// Starts are additionally capped at their ends so over-scrolled offsets
// produce an empty range rather than an inverted one. A grid with no rows
// or no columns always yields the zero Range. s must be valid.
func Compute(rows, cols int, vp viewport.State, s Sizing) Range {
	if rows <= 0 || cols <= 0 {
		return Range{}
	}

	rowStart, rowEnd := span(vp.Top, s.ViewportHeight, s.ItemHeight, s.Buffer, rows)
	colStart, colEnd := span(vp.Left, s.ViewportWidth, s.ItemWidth, s.Buffer, cols)

	return Range{RowStart: rowStart, RowEnd: rowEnd, ColStart: colStart, ColEnd: colEnd}
}

// span computes one axis of the window, clamped to [0, count].
func span(offset, extent, item float64, buffer, count int) (int, int) {
	buf := float64(buffer)
	limit := float64(count)

	start := clamp(math.Floor(offset/item)-buf, 0, limit)
	end := clamp(math.Ceil((offset+extent)/item)+buf, 0, limit)
	if start > end {
		start = end
	}
	return int(start), int(end)
}

// clamp bounds v to [lo, hi] in float space so conversion to int never overflows.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// ContentSize returns the full scrollable area of a rows x cols grid,
// independent of the viewport.
func ContentSize(rows, cols int, s Sizing) (width, height float64) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}
	return float64(cols) * s.ItemWidth, float64(rows) * s.ItemHeight
}
