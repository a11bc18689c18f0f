// Package gridview hosts a lazygrid.WindowedGrid inside a Bubble Tea program.
//
// The Model plays the role of the scrollable container: it turns key presses
// and mouse wheel events into scroll offsets, clamps them to the content
// size, and publishes them to the attached grid as scroll notifications.
// Rendering places each visible element on a fixed-size character canvas
// at its absolute position minus the scroll offset, so partially scrolled
// items are clipped at the viewport edges.
package gridview
