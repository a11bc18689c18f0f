package grid

// Canonical is a row-major grid in which every row has Cols() items.
// It is built by Normalize and never modified afterwards.
type Canonical[T any] struct {
	rows   [][]T
	cols   int
	ragged bool
}

// Rows returns the number of rows.
func (g *Canonical[T]) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.rows)
}

// Cols returns the number of columns shared by every row.
func (g *Canonical[T]) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// Empty reports whether the grid holds no cells.
func (g *Canonical[T]) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// Ragged reports whether the input had rows of unequal length and was
// truncated to its shortest row.
func (g *Canonical[T]) Ragged() bool {
	return g != nil && g.ragged
}

// At returns the item at row r, column c. The boolean is false when the
// position lies outside the grid.
func (g *Canonical[T]) At(r, c int) (T, bool) {
	var zero T
	if r < 0 || r >= g.Rows() || c < 0 || c >= g.Cols() {
		return zero, false
	}
	return g.rows[r][c], true
}

// Row returns a copy of row r, or nil when r is out of range.
func (g *Canonical[T]) Row(r int) []T {
	if r < 0 || r >= g.Rows() {
		return nil
	}
	out := make([]T, g.cols)
	copy(out, g.rows[r])
	return out
}

// Matrix returns a deep copy of the grid contents.
func (g *Canonical[T]) Matrix() [][]T {
	out := make([][]T, g.Rows())
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// Transpose returns a new grid whose row j is column j of g.
func (g *Canonical[T]) Transpose() *Canonical[T] {
	if g.Empty() {
		return &Canonical[T]{}
	}

	out := make([][]T, g.cols)
	for c := range out {
		row := make([]T, len(g.rows))
		for r := range g.rows {
			row[r] = g.rows[r][c]
		}
		out[c] = row
	}
	return &Canonical[T]{rows: out, cols: len(g.rows), ragged: g.ragged}
}
