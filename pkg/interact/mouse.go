package interact

import (
	"sync"
)

// MouseTracker republishes pointer positions while enabled.
type MouseTracker struct {
	source   PointerSource
	onChange func(Position)

	mu          sync.Mutex
	pos         Position
	unsubscribe func()
	generation  uint64
}

// NewMouseTracker creates a disabled tracker over source. onChange, when
// not nil, is called with every published position.
func NewMouseTracker(source PointerSource, onChange func(Position)) (tracker *MouseTracker) {
	tracker = &MouseTracker{
		source:   source,
		onChange: onChange,
	}
	return tracker
}

// Track enables or disables tracking and returns the current position.
// Disabling releases the subscription and resets the position to {0,0}.
func (m *MouseTracker) Track(enabled bool) (pos Position) {
	m.mu.Lock()

	if !enabled {
		release := m.releaseLocked()
		m.pos = Position{}
		m.mu.Unlock()
		if release != nil {
			release()
		}
		return pos
	}

	if m.unsubscribe != nil {
		pos = m.pos
		m.mu.Unlock()
		return pos
	}

	m.generation++
	generation := m.generation
	pos = m.pos
	m.mu.Unlock()

	unsubscribe := m.source.Subscribe(func(p Position) {
		m.move(generation, p)
	})

	m.mu.Lock()
	if m.generation != generation {
		// Released or superseded while subscribing.
		m.mu.Unlock()
		unsubscribe()
		return pos
	}
	m.unsubscribe = unsubscribe
	m.mu.Unlock()

	return pos
}

// Position returns the last published position.
func (m *MouseTracker) Position() (pos Position) {
	m.mu.Lock()
	pos = m.pos
	m.mu.Unlock()
	return pos
}

// Close releases the subscription.
func (m *MouseTracker) Close() {
	m.Track(false)
}

func (m *MouseTracker) move(generation uint64, p Position) {
	m.mu.Lock()
	if m.generation != generation {
		m.mu.Unlock()
		return
	}
	m.pos = p
	m.mu.Unlock()

	if m.onChange != nil {
		m.onChange(p)
	}
}

// releaseLocked bumps the generation and hands back the pending
// unsubscribe, to be called without the lock held.
func (m *MouseTracker) releaseLocked() (release func()) {
	m.generation++
	release = m.unsubscribe
	m.unsubscribe = nil
	return release
}
