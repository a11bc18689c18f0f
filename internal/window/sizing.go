package window

import (
	"math"
	"strconv"
	"strings"
)

// Sizing describes item and viewport dimensions in pixels.
type Sizing struct {
	ItemWidth      float64 `json:"item_width"      yaml:"item_width"`
	ItemHeight     float64 `json:"item_height"     yaml:"item_height"`
	ViewportWidth  float64 `json:"viewport_width"  yaml:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height" yaml:"viewport_height"`

	// Buffer is the number of extra rows and columns materialized beyond
	// each edge of the viewport. It does not change the content size.
	Buffer int `json:"buffer" yaml:"buffer"`
}

// NewSizing parses the viewport width and height and validates the result.
// width and height carry a numeric magnitude optionally followed by a unit
// such as "px", which is ignored.
func NewSizing(width, height string, itemWidth, itemHeight float64, buffer int) (Sizing, error) {
	vw, err := ParseLength(width)
	if err != nil {
		return Sizing{}, &ConfigError{Field: "width", Value: width, Err: err}
	}

	vh, err := ParseLength(height)
	if err != nil {
		return Sizing{}, &ConfigError{Field: "height", Value: height, Err: err}
	}

	s := Sizing{
		ItemWidth:      itemWidth,
		ItemHeight:     itemHeight,
		ViewportWidth:  vw,
		ViewportHeight: vh,
		Buffer:         buffer,
	}
	if err = s.Validate(); err != nil {
		return Sizing{}, err
	}
	return s, nil
}

// Validate reports the first invalid field of s as a *ConfigError.
func (s Sizing) Validate() error {
	checks := []struct {
		field string
		value float64
		err   error
		bad   bool
	}{
		{"itemWidth", s.ItemWidth, ErrNonPositiveItemSize, !positive(s.ItemWidth)},
		{"itemHeight", s.ItemHeight, ErrNonPositiveItemSize, !positive(s.ItemHeight)},
		{"width", s.ViewportWidth, ErrInvalidLength, !nonNegative(s.ViewportWidth)},
		{"height", s.ViewportHeight, ErrInvalidLength, !nonNegative(s.ViewportHeight)},
		{"buffer", float64(s.Buffer), ErrNegativeBuffer, s.Buffer < 0},
	}

	for _, c := range checks {
		if c.bad {
			return &ConfigError{
				Field: c.field,
				Value: strconv.FormatFloat(c.value, 'g', -1, 64),
				Err:   c.err,
			}
		}
	}
	return nil
}

// ParseLength returns the numeric magnitude at the start of s.
// Surrounding whitespace and any trailing unit are ignored, so "200",
// "200px" and " 12.5px" are all accepted. Strings without a leading number,
// and negative or non-finite magnitudes, return ErrInvalidLength.
func ParseLength(s string) (float64, error) {
	num := numericPrefix(strings.TrimSpace(s))
	if num == "" {
		return 0, ErrInvalidLength
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || !nonNegative(v) {
		return 0, ErrInvalidLength
	}
	return v, nil
}

// numericPrefix returns the longest prefix of s of the form [+-]digits[.digits].
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - start

	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			i = j
		}
	}

	if intDigits == 0 && i == start {
		return ""
	}
	return s[:i]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
