// Package lazygrid renders large two-dimensional collections lazily.
//
// A WindowedGrid combines three pieces:
//   - grid.Normalize, which turns flat or matrix input into a canonical grid
//   - a viewport.Tracker, which owns the scroll offset
//   - window.Compute, which maps the offset onto the visible cell range
//
// Only cells inside the visible range (widened by the buffer) are produced by
// Items and Render, each positioned at (col*itemWidth, row*itemHeight). The
// content size always covers the whole grid so scrollbars reflect it.
package lazygrid
