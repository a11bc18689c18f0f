// Package viewport tracks the scroll offset of a fixed-size viewport.
//
// A Tracker owns the current offsets, accepts scroll notifications from at
// most one ScrollSource at a time, and forwards every change to a single
// observer.
package viewport

import (
	"math"
	"sync"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNilSource is returned when attaching a nil ScrollSource.
const ErrNilSource = constError("nil scroll source")

// State is the scroll offset of the viewport in pixels.
// The zero value is the initial, unscrolled state.
type State struct {
	Top  float64 `json:"top"  yaml:"top"`
	Left float64 `json:"left" yaml:"left"`
}

// ScrollFunc receives scroll notifications.
type ScrollFunc func(top, left float64)

// ScrollSource delivers scroll-position updates. Subscribe registers fn and
// returns a function that removes the registration. Implementations must be
// comparable; pointer receivers are the usual choice.
type ScrollSource interface {
	Subscribe(fn ScrollFunc) (unsubscribe func(), err error)
}

// Tracker owns a viewport's scroll State.
type Tracker struct {
	mu sync.Mutex

	state State

	// source and unsubscribe describe the current subscription, if any.
	source      ScrollSource
	unsubscribe func()

	observer   func(State)
	observerID uint64
}

// NewTracker returns a Tracker at offset {0, 0} with no source attached.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Current returns the latest scroll offsets.
func (t *Tracker) Current() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// OnScroll replaces the stored offsets and notifies the observer.
// Non-finite offsets are stored as 0.
func (t *Tracker) OnScroll(top, left float64) {
	next := State{Top: finite(top), Left: finite(left)}

	t.mu.Lock()
	t.state = next
	observer := t.observer
	t.mu.Unlock()

	if observer != nil {
		observer(next)
	}
}

// Observe installs fn as the observer of scroll changes, replacing any
// previous observer. The returned cancel function removes fn if it is still
// installed.
func (t *Tracker) Observe(fn func(State)) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.observerID++
	id := t.observerID
	t.observer = fn
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.observerID == id {
			t.observer = nil
		}
	}
}

// Attach subscribes to src. Attaching the source that is already attached
// does nothing; attaching a different source releases the current one
// first. If subscribing fails the tracker is left detached.
func (t *Tracker) Attach(src ScrollSource) error {
	if src == nil {
		return ErrNilSource
	}

	t.mu.Lock()
	if t.source == src {
		t.mu.Unlock()
		return nil
	}
	release := t.releaseLocked()
	t.mu.Unlock()

	release()

	unsubscribe, err := src.Subscribe(t.OnScroll)
	if err != nil {
		if unsubscribe != nil {
			unsubscribe()
		}
		return err
	}

	t.mu.Lock()
	t.source = src
	t.unsubscribe = unsubscribe
	t.mu.Unlock()

	return nil
}

// Detach releases the current subscription. It is safe to call more than once.
func (t *Tracker) Detach() {
	t.mu.Lock()
	release := t.releaseLocked()
	t.mu.Unlock()

	release()
}

// Attached reports whether a source is currently attached.
func (t *Tracker) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source != nil
}

// releaseLocked clears the subscription and returns the function that
// undoes it. Must be called with mu held; the returned function must be
// called without it.
func (t *Tracker) releaseLocked() func() {
	unsubscribe := t.unsubscribe
	t.source = nil
	t.unsubscribe = nil
	if unsubscribe == nil {
		return func() {}
	}
	return unsubscribe
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
