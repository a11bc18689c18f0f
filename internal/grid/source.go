package grid

import "fmt"

// Shape identifies how the items of a Source are laid out.
type Shape int

const (
	// ShapeFlat is a single sequence of items.
	ShapeFlat Shape = iota

	// ShapeMatrix is a sequence of rows.
	ShapeMatrix
)

// String returns a human-readable representation of the Shape.
func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeMatrix:
		return "matrix"
	default:
		return fmt.Sprintf("Shape(%d)", s)
	}
}

// Source is the raw input handed to Normalize. Exactly one of items or rows
// is meaningful, as indicated by shape.
type Source[T any] struct {
	shape Shape
	items []T
	rows  [][]T
}

// Flat returns a Source over a single sequence of items.
func Flat[T any](items []T) Source[T] {
	return Source[T]{shape: ShapeFlat, items: items}
}

// Matrix returns a Source over a sequence of rows.
func Matrix[T any](rows [][]T) Source[T] {
	return Source[T]{shape: ShapeMatrix, rows: rows}
}

// Shape reports the layout of the source.
func (s Source[T]) Shape() Shape {
	return s.shape
}

// Len returns the number of top-level elements: items for a flat source,
// rows for a matrix.
func (s Source[T]) Len() int {
	if s.shape == ShapeMatrix {
		return len(s.rows)
	}
	return len(s.items)
}

// Detect builds a Source from untyped decoded data such as YAML or JSON.
// The data is treated as a matrix when its first element is itself a
// sequence; otherwise it is flat. In a matrix, any row that is not a
// sequence becomes a single-cell row.
func Detect(values []any) Source[any] {
	if len(values) == 0 {
		return Flat[any](nil)
	}

	if _, ok := values[0].([]any); !ok {
		return Flat(values)
	}

	rows := make([][]any, len(values))
	for i, v := range values {
		if row, ok := v.([]any); ok {
			rows[i] = row
			continue
		}
		rows[i] = []any{v}
	}
	return Matrix(rows)
}
