package gridview

import (
	"context"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/lazygrid/internal/lazygrid"
	"github.com/rshade/lazygrid/internal/viewport"
	"github.com/rshade/lazygrid/internal/window"
)

// Colors used by the viewer chrome.
var (
	ColorBorder = lipgloss.Color("240")
	ColorTitle  = lipgloss.Color("63")
	ColorMuted  = lipgloss.Color("241")
	ColorThumb  = lipgloss.Color("212")
)

// Grid is the subset of lazygrid.WindowedGrid the viewer needs.
type Grid interface {
	Attach(src viewport.ScrollSource) error
	Detach()
	Render() []lazygrid.Element
	Range() window.Range
	Sizing() window.Sizing
	Dims() (rows, cols int)
	ContentSize() (width, height float64)
}

// Model is a Bubble Tea model that scrolls a Grid.
type Model struct {
	grid  Grid
	title string

	// emitter publishes scroll offsets to the attached grid.
	emitter viewport.Emitter

	// top and left are the container's scroll offsets, clamped to the content.
	top  float64
	left float64

	keys     KeyMap
	help     help.Model
	printer  *message.Printer
	quitting bool
}

// NewModel attaches g to a new Model. The grid stays attached until Close.
func NewModel(g Grid, title string) (*Model, error) {
	m := &Model{
		grid:    g,
		title:   title,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		printer: message.NewPrinter(language.English),
	}
	if err := g.Attach(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Subscribe implements viewport.ScrollSource.
func (m *Model) Subscribe(fn viewport.ScrollFunc) (func(), error) {
	return m.emitter.Subscribe(fn)
}

// Close detaches the grid from the model.
func (m *Model) Close() {
	m.grid.Detach()
}

// Offset returns the current scroll offsets.
func (m *Model) Offset() viewport.State {
	return viewport.State{Top: m.top, Left: m.left}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.grid.Sizing()
	maxTop, maxLeft := m.limits()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.ScrollTo(m.top-s.ItemHeight, m.left)
	case key.Matches(msg, m.keys.Down):
		m.ScrollTo(m.top+s.ItemHeight, m.left)
	case key.Matches(msg, m.keys.Left):
		m.ScrollTo(m.top, m.left-s.ItemWidth)
	case key.Matches(msg, m.keys.Right):
		m.ScrollTo(m.top, m.left+s.ItemWidth)
	case key.Matches(msg, m.keys.PageUp):
		m.ScrollTo(m.top-s.ViewportHeight, m.left)
	case key.Matches(msg, m.keys.PageDown):
		m.ScrollTo(m.top+s.ViewportHeight, m.left)
	case key.Matches(msg, m.keys.Home):
		m.ScrollTo(0, 0)
	case key.Matches(msg, m.keys.End):
		m.ScrollTo(maxTop, m.left)
	case key.Matches(msg, m.keys.RowStart):
		m.ScrollTo(m.top, 0)
	case key.Matches(msg, m.keys.RowEnd):
		m.ScrollTo(m.top, maxLeft)
	}
	return m, nil
}

//nolint:exhaustive // Only wheel events scroll.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	s := m.grid.Sizing()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			m.ScrollTo(m.top, m.left-s.ItemWidth)
			return
		}
		m.ScrollTo(m.top-s.ItemHeight, m.left)
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			m.ScrollTo(m.top, m.left+s.ItemWidth)
			return
		}
		m.ScrollTo(m.top+s.ItemHeight, m.left)
	case tea.MouseButtonWheelLeft:
		m.ScrollTo(m.top, m.left-s.ItemWidth)
	case tea.MouseButtonWheelRight:
		m.ScrollTo(m.top, m.left+s.ItemWidth)
	}
}

// limits returns the largest scroll offsets that keep the viewport inside
// the content.
func (m *Model) limits() (maxTop, maxLeft float64) {
	s := m.grid.Sizing()
	w, h := m.grid.ContentSize()
	return math.Max(0, h-s.ViewportHeight), math.Max(0, w-s.ViewportWidth)
}

// ScrollTo moves the container, clamped to the content, and notifies the
// grid when the offset changed.
func (m *Model) ScrollTo(top, left float64) {
	maxTop, maxLeft := m.limits()
	top = math.Min(math.Max(top, 0), maxTop)
	left = math.Min(math.Max(left, 0), maxLeft)

	if top == m.top && left == m.left {
		return
	}
	m.top, m.left = top, left
	m.emitter.Scroll(top, left)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(ColorTitle).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.title),
		frameStyle.Render(m.body()),
		mutedStyle.Render(m.status()),
		m.help.View(m.keys),
	)
}

// body renders the viewport with its scrollbars.
func (m *Model) body() string {
	s := m.grid.Sizing()
	vw, vh := cells(s.ViewportWidth), cells(s.ViewportHeight)
	cw, ch := m.grid.ContentSize()

	lines := m.draw().lines()
	vbar := verticalBar(vh, s.ViewportHeight, ch, m.top)
	thumbStyle := lipgloss.NewStyle().Foreground(ColorThumb)

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		b.WriteString(thumbStyle.Render(vbar[i]))
		b.WriteByte('\n')
	}
	b.WriteString(thumbStyle.Render(horizontalBar(vw, s.ViewportWidth, cw, m.left)))
	return b.String()
}

// draw places the visible elements at their positions relative to the
// current offset.
func (m *Model) draw() *canvas {
	s := m.grid.Sizing()
	c := newCanvas(cells(s.ViewportWidth), cells(s.ViewportHeight))

	itemW := max(cells(s.ItemWidth)-1, 1)
	itemH := max(cells(s.ItemHeight), 1)
	for _, el := range m.grid.Render() {
		x := int(math.Round(el.X - m.left))
		y := int(math.Round(el.Y - m.top))
		c.block(x, y, itemW, itemH, el.Content)
	}
	return c
}

func (m *Model) status() string {
	rows, cols := m.grid.Dims()
	r := m.grid.Range()
	return m.printer.Sprintf("%d rows × %d cols · showing %s · %d items · offset %.0f,%.0f",
		rows, cols, r, r.Len(), m.top, m.left)
}

// cells converts a pixel magnitude to a whole number of terminal cells.
func cells(v float64) int {
	return int(math.Ceil(v))
}

// Run starts an interactive program for m and blocks until it exits.
// The grid is detached on every return path.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	defer m.Close()

	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
