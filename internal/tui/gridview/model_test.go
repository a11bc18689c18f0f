package gridview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/lazygrid/internal/grid"
	"github.com/rshade/lazygrid/internal/lazygrid"
	"github.com/rshade/lazygrid/internal/viewport"
	"github.com/rshade/lazygrid/internal/window"
)

func newTestGrid(t *testing.T, rows, cols int, width, height string, itemW, itemH float64) *lazygrid.WindowedGrid[string] {
	t.Helper()
	m := make([][]string, rows)
	for r := range m {
		m[r] = make([]string, cols)
		for c := range m[r] {
			m[r][c] = fmt.Sprintf("%d.%d", r, c)
		}
	}

	g, err := lazygrid.New(lazygrid.Options[string]{
		Source:     grid.Matrix(m),
		Renderer:   func(s string) string { return s },
		Width:      width,
		Height:     height,
		ItemWidth:  itemW,
		ItemHeight: itemH,
	})
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestModel_KeysScrollTheGrid(t *testing.T) {
	g := newTestGrid(t, 100, 20, "40", "10", 10, 2)
	m, err := NewModel(g, "test")
	require.NoError(t, err)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want viewport.State
	}{
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, want: viewport.State{Top: 2}},
		{name: "j", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, want: viewport.State{Top: 4}},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: viewport.State{Top: 4, Left: 10}},
		{name: "page down", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: viewport.State{Top: 14, Left: 10}},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: viewport.State{Top: 12, Left: 10}},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, want: viewport.State{Top: 190, Left: 10}},
		{name: "last column", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'$'}}, want: viewport.State{Top: 190, Left: 160}},
		{name: "right at edge", msg: tea.KeyMsg{Type: tea.KeyRight}, want: viewport.State{Top: 190, Left: 160}},
		{name: "first column", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}}, want: viewport.State{Top: 190}},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, want: viewport.State{}},
		{name: "up at top", msg: tea.KeyMsg{Type: tea.KeyUp}, want: viewport.State{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.msg)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.Offset())
			assert.Equal(t, tt.want, g.Viewport(), "grid must follow the container")
		})
	}
}

func TestModel_ScrollUpdatesRange(t *testing.T) {
	g := newTestGrid(t, 100, 20, "40", "10", 10, 2)
	m, err := NewModel(g, "test")
	require.NoError(t, err)

	m.ScrollTo(50, 25)

	assert.Equal(t, window.Range{RowStart: 25, RowEnd: 30, ColStart: 2, ColEnd: 7}, g.Range())
}

func TestModel_MouseWheel(t *testing.T) {
	g := newTestGrid(t, 100, 20, "40", "10", 10, 2)
	m, err := NewModel(g, "test")
	require.NoError(t, err)

	wheel := func(button tea.MouseButton, shift bool) tea.MouseMsg {
		return tea.MouseMsg{Button: button, Action: tea.MouseActionPress, Shift: shift}
	}

	m.Update(wheel(tea.MouseButtonWheelDown, false))
	m.Update(wheel(tea.MouseButtonWheelDown, false))
	assert.Equal(t, viewport.State{Top: 4}, m.Offset())

	m.Update(wheel(tea.MouseButtonWheelDown, true))
	m.Update(wheel(tea.MouseButtonWheelRight, false))
	assert.Equal(t, viewport.State{Top: 4, Left: 20}, m.Offset())

	m.Update(wheel(tea.MouseButtonWheelUp, true))
	m.Update(wheel(tea.MouseButtonWheelLeft, false))
	m.Update(wheel(tea.MouseButtonWheelUp, false))
	assert.Equal(t, viewport.State{Top: 2}, m.Offset())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionRelease})
	assert.Equal(t, viewport.State{Top: 2}, m.Offset())
}

func TestModel_ContentSmallerThanViewport(t *testing.T) {
	g := newTestGrid(t, 2, 2, "40", "10", 10, 2)
	m, err := NewModel(g, "tiny")
	require.NoError(t, err)

	m.ScrollTo(100, 100)

	assert.Equal(t, viewport.State{}, m.Offset())
}

func TestModel_DrawPlacesItemsAtOffsets(t *testing.T) {
	g := newTestGrid(t, 10, 10, "20", "4", 5, 2)
	m, err := NewModel(g, "test")
	require.NoError(t, err)

	lines := m.draw().lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "0.0  0.1  0.2  0.3  ", lines[0])
	assert.Equal(t, strings.Repeat(" ", 20), lines[1])
	assert.Equal(t, "1.0  1.1  1.2  1.3  ", lines[2])

	m.ScrollTo(1, 5)
	lines = m.draw().lines()
	assert.Equal(t, "1.1  1.2  1.3  1.4  ", lines[1])
	assert.Equal(t, "2.1  2.2  2.3  2.4  ", lines[3])
}

func TestModel_ViewAndQuit(t *testing.T) {
	g := newTestGrid(t, 1000, 3, "40", "10", 12, 2)
	m, err := NewModel(g, "Grid title")
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "Grid title")
	assert.Contains(t, view, "1,000 rows")
	assert.Contains(t, view, "rows [0,5) cols [0,3)")
	assert.Contains(t, view, "0.0")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_CloseDetaches(t *testing.T) {
	g := newTestGrid(t, 100, 1, "10", "10", 10, 1)
	m, err := NewModel(g, "test")
	require.NoError(t, err)
	assert.Equal(t, 1, m.emitter.Subscribers())

	m.Close()
	m.ScrollTo(50, 0)

	assert.Equal(t, 0, m.emitter.Subscribers())
	assert.Equal(t, viewport.State{}, g.Viewport())
}

func TestModel_HelpToggle(t *testing.T) {
	g := newTestGrid(t, 10, 10, "20", "4", 5, 2)
	m, err := NewModel(g, "test")
	require.NoError(t, err)

	short := m.View()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	full := m.View()

	assert.NotContains(t, short, "first column")
	assert.Contains(t, full, "first column")
}
