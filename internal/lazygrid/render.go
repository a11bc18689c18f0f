package lazygrid

import "iter"

// Items yields the visible cells in row-major order. The grid and range are
// captured when Items is called; a later scroll does not affect an
// in-progress iteration.
func (g *WindowedGrid[T]) Items() iter.Seq[Descriptor[T]] {
	g.mu.RLock()
	c, r, s := g.canonical, g.visible, g.sizing
	g.mu.RUnlock()

	return func(yield func(Descriptor[T]) bool) {
		for row := r.RowStart; row < r.RowEnd; row++ {
			for col := r.ColStart; col < r.ColEnd; col++ {
				item, ok := c.At(row, col)
				if !ok {
					return
				}
				d := Descriptor[T]{
					Key:  Key{Row: row, Col: col},
					X:    float64(col) * s.ItemWidth,
					Y:    float64(row) * s.ItemHeight,
					Item: item,
				}
				if !yield(d) {
					return
				}
			}
		}
	}
}

// Render runs the item renderer over every visible cell.
func (g *WindowedGrid[T]) Render() []Element {
	out := make([]Element, 0, g.Range().Len())
	for d := range g.Items() {
		out = append(out, Element{
			Key:     d.Key,
			X:       d.X,
			Y:       d.Y,
			Content: g.renderer(d.Item),
		})
	}
	return out
}
