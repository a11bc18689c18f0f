// Package dataset loads grid data from YAML or JSON files and generates
// synthetic grids for demos and benchmarks.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/lazygrid/internal/grid"
)

// ErrNotSequence is returned when a document's root is not a sequence.
var ErrNotSequence = errors.New("dataset root must be a sequence")

// ErrInvalidDims is returned by ParseDims for malformed dimension strings.
var ErrInvalidDims = errors.New("dimensions must look like N or RxC with positive integers")

// LoadFile reads a YAML or JSON sequence from path.
func LoadFile(path string) (grid.Source[any], error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Source[any]{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	src, err := Decode(f)
	if err != nil {
		return grid.Source[any]{}, fmt.Errorf("decoding dataset %s: %w", path, err)
	}
	return src, nil
}

// Decode reads a single YAML (or JSON) document whose root is a sequence.
// A sequence of sequences is a matrix; anything else is flat. An empty
// document is an empty flat source.
func Decode(r io.Reader) (grid.Source[any], error) {
	var root any
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return grid.Flat[any](nil), nil
		}
		return grid.Source[any]{}, err
	}

	if root == nil {
		return grid.Flat[any](nil), nil
	}
	values, ok := root.([]any)
	if !ok {
		return grid.Source[any]{}, ErrNotSequence
	}
	return grid.Detect(values), nil
}

// Generate returns a synthetic source. With cols == 0 it is flat and holds
// rows items labelled "item N"; otherwise it is a rows x cols matrix
// labelled "rRcC".
func Generate(rows, cols int) grid.Source[any] {
	if cols == 0 {
		items := make([]any, rows)
		for i := range items {
			items[i] = "item " + strconv.Itoa(i)
		}
		return grid.Flat(items)
	}

	m := make([][]any, rows)
	for r := range m {
		row := make([]any, cols)
		for c := range row {
			row[c] = "r" + strconv.Itoa(r) + "c" + strconv.Itoa(c)
		}
		m[r] = row
	}
	return grid.Matrix(m)
}

// ParseDims parses "N" (flat, cols = 0) or "RxC".
func ParseDims(s string) (rows, cols int, err error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) > 2 {
		return 0, 0, ErrInvalidDims
	}

	rows, err = strconv.Atoi(parts[0])
	if err != nil || rows <= 0 {
		return 0, 0, ErrInvalidDims
	}
	if len(parts) == 1 {
		return rows, 0, nil
	}

	cols, err = strconv.Atoi(parts[1])
	if err != nil || cols <= 0 {
		return 0, 0, ErrInvalidDims
	}
	return rows, cols, nil
}

// Format renders an item for display. Scalars use their natural text form;
// maps and sequences are flattened onto one line.
func Format(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if label, ok := v["label"]; ok {
			return Format(label)
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return strings.Join(strings.Fields(string(out)), " ")
	default:
		return fmt.Sprint(v)
	}
}
