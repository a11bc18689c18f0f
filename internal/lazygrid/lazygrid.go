package lazygrid

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/lazygrid/internal/grid"
	"github.com/rshade/lazygrid/internal/viewport"
	"github.com/rshade/lazygrid/internal/window"
)

// ErrNilRenderer is returned by New when Options.Renderer is nil.
var ErrNilRenderer = errors.New("lazygrid: item renderer is required")

// ItemRenderer renders a single item.
type ItemRenderer[T any] func(item T) string

// Options configures a WindowedGrid.
type Options[T any] struct {
	// Source is the flat or matrix input.
	Source grid.Source[T]

	// Renderer is invoked once per visible item by Render.
	Renderer ItemRenderer[T]

	// Width and Height are the viewport dimensions, e.g. "200" or "200px".
	Width  string
	Height string

	// ItemWidth and ItemHeight are the per-cell dimensions; both must be > 0.
	ItemWidth  float64
	ItemHeight float64

	// Buffer is the number of extra rows and columns beyond the viewport. Defaults to 0.
	Buffer int

	// Transpose swaps the row and column interpretation of Source.
	Transpose bool

	// OnRangeChange, if set, is called whenever the visible range changes.
	OnRangeChange func(window.Range)

	// Logger receives debug events. Defaults to a disabled logger.
	Logger *zerolog.Logger
}

// Key identifies a cell.
type Key struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Descriptor is a visible item and its absolute position in the content area.
type Descriptor[T any] struct {
	Key  Key
	X    float64
	Y    float64
	Item T
}

// Element is a rendered Descriptor.
type Element struct {
	Key     Key     `json:"key"     yaml:"key"`
	X       float64 `json:"x"       yaml:"x"`
	Y       float64 `json:"y"       yaml:"y"`
	Content string  `json:"content" yaml:"content"`
}

// WindowedGrid materializes only the cells of a grid that intersect its
// viewport.
type WindowedGrid[T any] struct {
	mu sync.RWMutex

	canonical *grid.Canonical[T]
	sizing    window.Sizing
	visible   window.Range

	renderer      ItemRenderer[T]
	onRangeChange func(window.Range)
	logger        zerolog.Logger

	tracker       *viewport.Tracker
	cancelObserve func()
}

// New validates opts, normalizes the source and computes the initial range
// for offset {0, 0}. Configuration errors are returned as *window.ConfigError.
func New[T any](opts Options[T]) (*WindowedGrid[T], error) {
	if opts.Renderer == nil {
		return nil, ErrNilRenderer
	}

	sizing, err := window.NewSizing(opts.Width, opts.Height, opts.ItemWidth, opts.ItemHeight, opts.Buffer)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "lazygrid").Logger()
	}

	g := &WindowedGrid[T]{
		sizing:        sizing,
		renderer:      opts.Renderer,
		onRangeChange: opts.OnRangeChange,
		logger:        logger,
		tracker:       viewport.NewTracker(),
	}
	g.canonical = g.normalize(opts.Source, opts.Transpose)
	g.visible = window.Compute(g.canonical.Rows(), g.canonical.Cols(), viewport.State{}, sizing)
	g.cancelObserve = g.tracker.Observe(func(viewport.State) { g.recompute() })

	return g, nil
}

func (g *WindowedGrid[T]) normalize(src grid.Source[T], transpose bool) *grid.Canonical[T] {
	c := grid.Normalize(src, transpose)

	event := g.logger.Debug()
	if c.Ragged() {
		event = g.logger.Warn()
	}
	event.
		Str("shape", src.Shape().String()).
		Bool("transpose", transpose).
		Int("rows", c.Rows()).
		Int("cols", c.Cols()).
		Bool("ragged", c.Ragged()).
		Msg("grid normalized")

	return c
}

// SetSource replaces the input and recomputes the visible range.
func (g *WindowedGrid[T]) SetSource(src grid.Source[T], transpose bool) {
	c := g.normalize(src, transpose)

	g.mu.Lock()
	g.canonical = c
	g.mu.Unlock()

	g.recompute()
}

// SetSizing replaces the sizing after validating it.
func (g *WindowedGrid[T]) SetSizing(s window.Sizing) error {
	if err := s.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	g.sizing = s
	g.mu.Unlock()

	g.recompute()
	return nil
}

// recompute derives the visible range from the current grid, offset and
// sizing, notifying OnRangeChange when it differs from the previous one.
func (g *WindowedGrid[T]) recompute() {
	vp := g.tracker.Current()

	g.mu.Lock()
	next := window.Compute(g.canonical.Rows(), g.canonical.Cols(), vp, g.sizing)
	changed := next != g.visible
	g.visible = next
	onChange := g.onRangeChange
	g.mu.Unlock()

	if !changed {
		return
	}

	g.logger.Debug().
		Float64("top", vp.Top).
		Float64("left", vp.Left).
		Stringer("range", next).
		Msg("visible range changed")

	if onChange != nil {
		onChange(next)
	}
}

// OnScroll records a new scroll offset.
func (g *WindowedGrid[T]) OnScroll(top, left float64) {
	g.tracker.OnScroll(top, left)
}

// Attach subscribes the grid to src. See viewport.Tracker.Attach.
func (g *WindowedGrid[T]) Attach(src viewport.ScrollSource) error {
	return g.tracker.Attach(src)
}

// Detach releases the scroll source, if any.
func (g *WindowedGrid[T]) Detach() {
	g.tracker.Detach()
}

// Close detaches the grid and stops range recomputation. It is safe to call
// more than once.
func (g *WindowedGrid[T]) Close() {
	g.tracker.Detach()
	g.cancelObserve()
}

// Viewport returns the current scroll offset.
func (g *WindowedGrid[T]) Viewport() viewport.State {
	return g.tracker.Current()
}

// Range returns the current visible range.
func (g *WindowedGrid[T]) Range() window.Range {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.visible
}

// Sizing returns the current sizing.
func (g *WindowedGrid[T]) Sizing() window.Sizing {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sizing
}

// Dims returns the canonical grid's row and column counts.
func (g *WindowedGrid[T]) Dims() (rows, cols int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.canonical.Rows(), g.canonical.Cols()
}

// Ragged reports whether the source rows had unequal lengths.
func (g *WindowedGrid[T]) Ragged() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.canonical.Ragged()
}

// ContentSize returns the full scrollable area, independent of the viewport.
func (g *WindowedGrid[T]) ContentSize() (width, height float64) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return window.ContentSize(g.canonical.Rows(), g.canonical.Cols(), g.sizing)
}
