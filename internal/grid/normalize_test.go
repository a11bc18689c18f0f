package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lazygrid/internal/grid"
)

func TestNormalize_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		src       grid.Source[int]
		transpose bool
		want      [][]int
		wantRows  int
		wantCols  int
	}{
		{
			name:     "flat becomes a single column",
			src:      grid.Flat([]int{1, 2, 3}),
			want:     [][]int{{1}, {2}, {3}},
			wantRows: 3,
			wantCols: 1,
		},
		{
			name:      "flat transposed becomes a single row",
			src:       grid.Flat([]int{1, 2, 3}),
			transpose: true,
			want:      [][]int{{1, 2, 3}},
			wantRows:  1,
			wantCols:  3,
		},
		{
			name:     "matrix is used as-is",
			src:      grid.Matrix([][]int{{1, 2}, {3, 4}, {5, 6}}),
			want:     [][]int{{1, 2}, {3, 4}, {5, 6}},
			wantRows: 3,
			wantCols: 2,
		},
		{
			name:      "matrix transposed",
			src:       grid.Matrix([][]int{{1, 2}, {3, 4}, {5, 6}}),
			transpose: true,
			want:      [][]int{{1, 3, 5}, {2, 4, 6}},
			wantRows:  2,
			wantCols:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Normalize(tt.src, tt.transpose)

			assert.Equal(t, tt.wantRows, g.Rows())
			assert.Equal(t, tt.wantCols, g.Cols())
			assert.Equal(t, tt.want, g.Matrix())
			assert.False(t, g.Ragged())
		})
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	tests := []struct {
		name      string
		src       grid.Source[string]
		transpose bool
	}{
		{name: "nil flat", src: grid.Flat[string](nil)},
		{name: "empty flat transposed", src: grid.Flat([]string{}), transpose: true},
		{name: "empty matrix", src: grid.Matrix([][]string{})},
		{name: "matrix of empty rows", src: grid.Matrix([][]string{{}, {}}), transpose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Normalize(tt.src, tt.transpose)

			assert.Equal(t, 0, g.Rows())
			assert.Equal(t, 0, g.Cols())
			assert.True(t, g.Empty())
			_, ok := g.At(0, 0)
			assert.False(t, ok)
		})
	}
}

func TestNormalize_TransposeScenario(t *testing.T) {
	in := [][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f"},
	}

	g := grid.Normalize(grid.Matrix(in), true)

	require.Equal(t, 2, g.Rows())
	require.Equal(t, 3, g.Cols())
	for i := range g.Rows() {
		for j := range g.Cols() {
			got, ok := g.At(i, j)
			require.True(t, ok)
			assert.Equal(t, in[j][i], got, "output[%d][%d]", i, j)
		}
	}
}

func TestNormalize_TransposeRoundTrip(t *testing.T) {
	in := [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}}

	once := grid.Normalize(grid.Matrix(in), true)
	twice := grid.Normalize(grid.Matrix(once.Matrix()), true)

	assert.Equal(t, in, twice.Matrix())
	assert.Equal(t, in, once.Transpose().Matrix())
}

func TestNormalize_FlatTransposedRoundTrip(t *testing.T) {
	items := []int{7, 8, 9}

	row := grid.Normalize(grid.Flat(items), true)
	column := grid.Normalize(grid.Matrix(row.Matrix()), true)

	assert.Equal(t, grid.Normalize(grid.Flat(items), false).Matrix(), column.Matrix())
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	flat := []int{1, 2, 3}

	g := grid.Normalize(grid.Matrix(in), false)
	in[0][0] = 99
	flatGrid := grid.Normalize(grid.Flat(flat), true)
	flat[0] = 99

	v, _ := g.At(0, 0)
	assert.Equal(t, 1, v)
	v, _ = flatGrid.At(0, 0)
	assert.Equal(t, 1, v)

	row := g.Row(1)
	row[0] = 42
	v, _ = g.At(1, 0)
	assert.Equal(t, 3, v, "Row must return a copy")
}

func TestNormalize_RaggedRowsTruncateToShortest(t *testing.T) {
	in := [][]int{
		{1, 2, 3},
		{4, 5},
		{6, 7, 8},
	}

	plain := grid.Normalize(grid.Matrix(in), false)
	assert.True(t, plain.Ragged())
	assert.Equal(t, [][]int{{1, 2}, {4, 5}, {6, 7}}, plain.Matrix())

	transposed := grid.Normalize(grid.Matrix(in), true)
	assert.True(t, transposed.Ragged())
	assert.Equal(t, [][]int{{1, 4, 6}, {2, 5, 7}}, transposed.Matrix())
	assert.Len(t, in[0], 3, "input must keep its length")
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		values    []any
		wantShape grid.Shape
		wantLen   int
	}{
		{name: "empty", values: nil, wantShape: grid.ShapeFlat, wantLen: 0},
		{name: "scalars", values: []any{"a", 1, true}, wantShape: grid.ShapeFlat, wantLen: 3},
		{
			name:      "first element is a sequence",
			values:    []any{[]any{"a", "b"}, []any{"c", "d"}},
			wantShape: grid.ShapeMatrix,
			wantLen:   2,
		},
		{
			name:      "scalar row in a matrix",
			values:    []any{[]any{"a"}, "b"},
			wantShape: grid.ShapeMatrix,
			wantLen:   2,
		},
		{
			name:      "sequence after a scalar stays flat",
			values:    []any{"a", []any{"b"}},
			wantShape: grid.ShapeFlat,
			wantLen:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := grid.Detect(tt.values)

			assert.Equal(t, tt.wantShape, src.Shape())
			assert.Equal(t, tt.wantLen, src.Len())
		})
	}
}

func TestDetect_ScalarRowBecomesSingleCell(t *testing.T) {
	g := grid.Normalize(grid.Detect([]any{[]any{"a"}, "b"}), false)

	assert.Equal(t, [][]any{{"a"}, {"b"}}, g.Matrix())
}

func TestShape_String(t *testing.T) {
	assert.Equal(t, "flat", grid.ShapeFlat.String())
	assert.Equal(t, "matrix", grid.ShapeMatrix.String())
	assert.Equal(t, "Shape(7)", grid.Shape(7).String())
}

func TestCanonical_NilSafe(t *testing.T) {
	var g *grid.Canonical[int]

	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
	assert.True(t, g.Empty())
	assert.False(t, g.Ragged())
}
