package viewport

import "sync"

// Emitter is a ScrollSource that forwards Scroll calls to its subscribers.
// Hosts that own a scrollable container embed one and call Scroll whenever
// the container moves.
type Emitter struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]ScrollFunc
}

// Subscribe registers fn. The returned function removes it and may be
// called any number of times.
func (e *Emitter) Subscribe(fn ScrollFunc) (func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.subs == nil {
		e.subs = make(map[int]ScrollFunc)
	}
	id := e.nextID
	e.nextID++
	e.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			delete(e.subs, id)
		})
	}, nil
}

// Scroll notifies every subscriber of the new offsets.
func (e *Emitter) Scroll(top, left float64) {
	e.mu.Lock()
	fns := make([]ScrollFunc, 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(top, left)
	}
}

// Subscribers returns the number of live subscriptions.
func (e *Emitter) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
