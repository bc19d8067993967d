package interact

import (
	"sync"

	"go.uber.org/zap"
)

// AnchorSource lists section anchor ids in document order.
type AnchorSource interface {
	AnchorIDs() []string
}

// Entry reports the visibility of one anchor.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// ObserveOptions are handed to the Observer when observation starts.
type ObserveOptions struct {
	Thresholds []float64
	RootMargin Margin
}

// Observer watches anchors and delivers batches of entries. The returned
// function disconnects it.
type Observer interface {
	Observe(ids []string, opts ObserveOptions, callback func(entries []Entry)) (disconnect func())
}

// ActiveSection tracks the most visible section anchor.
type ActiveSection struct {
	anchors  AnchorSource
	observer Observer
	onChange func(id string)
	logger   *zap.Logger

	mu         sync.Mutex
	active     string
	order      map[string]int
	disconnect func()
	generation uint64
}

// NewActiveSection creates a disconnected observer hook. onChange, when not
// nil, is called whenever the active id changes.
func NewActiveSection(anchors AnchorSource, observer Observer, onChange func(id string), logger *zap.Logger) (as *ActiveSection) {
	as = &ActiveSection{
		anchors:  anchors,
		observer: observer,
		onChange: onChange,
		logger:   orNop(logger),
	}
	return as
}

// Observe connects or disconnects the observer and returns the active id.
// Enabling while connected reconnects with the new options. An unparsable
// rootMargin is treated as no margin.
func (a *ActiveSection) Observe(enabled bool, thresholds []float64, rootMargin string) (active string) {
	a.mu.Lock()
	release := a.releaseLocked()
	active = a.active
	if !enabled {
		a.mu.Unlock()
		if release != nil {
			release()
		}
		return active
	}

	ids := a.anchors.AnchorIDs()
	a.order = make(map[string]int, len(ids))
	for i, id := range ids {
		a.order[id] = i
	}
	generation := a.generation
	a.mu.Unlock()

	if release != nil {
		release()
	}

	if len(ids) == 0 {
		return active
	}

	margin, err := ParseRootMargin(rootMargin)
	if err != nil {
		a.logger.Debug("ignoring root margin", zap.String("rootMargin", rootMargin), zap.Error(err))
	}

	disconnect := a.observer.Observe(ids, ObserveOptions{Thresholds: thresholds, RootMargin: margin}, func(entries []Entry) {
		a.handle(generation, entries)
	})

	a.mu.Lock()
	if a.generation != generation {
		a.mu.Unlock()
		disconnect()
		return active
	}
	a.disconnect = disconnect
	active = a.active
	a.mu.Unlock()

	return active
}

// Active returns the published id, or "" before any section intersected.
func (a *ActiveSection) Active() (id string) {
	a.mu.Lock()
	id = a.active
	a.mu.Unlock()
	return id
}

// Close disconnects the observer.
func (a *ActiveSection) Close() {
	a.mu.Lock()
	release := a.releaseLocked()
	a.mu.Unlock()

	if release != nil {
		release()
	}
}

func (a *ActiveSection) handle(generation uint64, entries []Entry) {
	a.mu.Lock()
	if a.generation != generation {
		a.mu.Unlock()
		return
	}

	best, found := a.pick(entries)
	if !found || best == a.active {
		a.mu.Unlock()
		return
	}
	a.active = best
	a.mu.Unlock()

	if a.onChange != nil {
		a.onChange(best)
	}
}

// pick returns the intersecting entry with the highest ratio. Equal ratios
// go to the anchor that comes first in the document.
func (a *ActiveSection) pick(entries []Entry) (id string, found bool) {
	var bestRatio float64
	bestOrder := -1

	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		order, known := a.order[e.ID]
		if !known {
			order = len(a.order)
		}
		if !found || e.Ratio > bestRatio || (e.Ratio == bestRatio && order < bestOrder) {
			id = e.ID
			bestRatio = e.Ratio
			bestOrder = order
			found = true
		}
	}

	return id, found
}

func (a *ActiveSection) releaseLocked() (release func()) {
	a.generation++
	release = a.disconnect
	a.disconnect = nil
	return release
}
