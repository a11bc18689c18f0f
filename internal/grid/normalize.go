package grid

// Normalize converts src into a canonical row-major grid.
//
//   - Flat, not transposed: each item is its own single-column row.
//   - Flat, transposed: all items form a single row.
//   - Matrix, not transposed: rows are used as-is.
//   - Matrix, transposed: output row j is [rows[0][j], rows[1][j], ...].
//
// Empty input, including a matrix whose rows are all empty, yields an empty
// 0x0 grid. Rows of unequal length are truncated to the shortest row before
// transposition, and the result reports Ragged. The caller's slices are
// copied and never modified.
func Normalize[T any](src Source[T], transpose bool) *Canonical[T] {
	if src.Shape() == ShapeMatrix {
		return normalizeMatrix(src.rows, transpose)
	}
	return normalizeFlat(src.items, transpose)
}

func normalizeFlat[T any](items []T, transpose bool) *Canonical[T] {
	if len(items) == 0 {
		return &Canonical[T]{}
	}

	if transpose {
		row := make([]T, len(items))
		copy(row, items)
		return &Canonical[T]{rows: [][]T{row}, cols: len(items)}
	}

	rows := make([][]T, len(items))
	for i, item := range items {
		rows[i] = []T{item}
	}
	return &Canonical[T]{rows: rows, cols: 1}
}

func normalizeMatrix[T any](in [][]T, transpose bool) *Canonical[T] {
	if len(in) == 0 {
		return &Canonical[T]{}
	}

	cols, ragged := shortestRow(in)
	if cols == 0 {
		return &Canonical[T]{ragged: ragged}
	}

	rows := make([][]T, len(in))
	for r, src := range in {
		row := make([]T, cols)
		copy(row, src[:cols])
		rows[r] = row
	}

	g := &Canonical[T]{rows: rows, cols: cols, ragged: ragged}
	if transpose {
		return g.Transpose()
	}
	return g
}

// shortestRow returns the minimum row length and whether any row differs
// from it.
func shortestRow[T any](rows [][]T) (int, bool) {
	shortest := len(rows[0])
	ragged := false
	for _, row := range rows[1:] {
		if len(row) != shortest {
			ragged = true
		}
		if len(row) < shortest {
			shortest = len(row)
		}
	}
	return shortest, ragged
}
