package gridview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// canvas is a fixed-size grid of terminal cells. A cell holding "" is the
// right half of a double-width rune.
type canvas struct {
	width  int
	height int
	cells  [][]string
}

func newCanvas(width, height int) *canvas {
	cells := make([][]string, max(height, 0))
	for y := range cells {
		row := make([]string, max(width, 0))
		for x := range row {
			row[x] = " "
		}
		cells[y] = row
	}
	return &canvas{width: max(width, 0), height: max(height, 0), cells: cells}
}

// put writes s starting at (x, y), clipping at every edge. A double-width
// rune cut by the left or right edge is replaced by spaces.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= c.height {
		return
	}
	row := c.cells[y]

	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= c.width {
			return
		}
		if x < 0 || x+w > c.width {
			for i := max(x, 0); i < min(x+w, c.width); i++ {
				row[i] = " "
			}
			x += w
			continue
		}

		row[x] = string(r)
		for i := 1; i < w; i++ {
			row[x+i] = ""
		}
		x += w
	}
}

// block writes up to maxLines lines of text, each truncated to maxWidth cells.
func (c *canvas) block(x, y, maxWidth, maxLines int, text string) {
	for i, line := range strings.SplitN(text, "\n", maxLines+1) {
		if i >= maxLines {
			return
		}
		c.put(x, y+i, runewidth.Truncate(line, maxWidth, "…"))
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.height)
	for y, row := range c.cells {
		out[y] = strings.Join(row, "")
	}
	return out
}

func (c *canvas) String() string {
	return strings.Join(c.lines(), "\n")
}
