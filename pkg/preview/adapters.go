package preview

import (
	"sync"

	"github.com/nikogura/folio/pkg/interact"
)

// pointerSource feeds tea mouse motion to the tracker.
type pointerSource struct {
	mu        sync.Mutex
	listeners map[int]func(interact.Position)
	next      int
}

func newPointerSource() (ps *pointerSource) {
	ps = &pointerSource{listeners: make(map[int]func(interact.Position))}
	return ps
}

func (ps *pointerSource) Subscribe(listener func(interact.Position)) (unsubscribe func()) {
	ps.mu.Lock()
	id := ps.next
	ps.next++
	ps.listeners[id] = listener
	ps.mu.Unlock()

	unsubscribe = func() {
		ps.mu.Lock()
		delete(ps.listeners, id)
		ps.mu.Unlock()
	}
	return unsubscribe
}

func (ps *pointerSource) emit(pos interact.Position) {
	ps.mu.Lock()
	listeners := make([]func(interact.Position), 0, len(ps.listeners))
	for _, l := range ps.listeners {
		listeners = append(listeners, l)
	}
	ps.mu.Unlock()

	for _, l := range listeners {
		l(pos)
	}
}

// observation is the last reported state of one anchor.
type observation struct {
	bucket       int
	intersecting bool
}

// viewportObserver computes intersection ratios of section blocks against
// the visible window, shrunk or grown by the root margin.
type viewportObserver struct {
	blocks func() []block

	ids       []string
	opts      interact.ObserveOptions
	callback  func([]interact.Entry)
	last      map[string]observation
	connected bool
}

func (vo *viewportObserver) Observe(ids []string, opts interact.ObserveOptions, callback func([]interact.Entry)) (disconnect func()) {
	vo.ids = ids
	vo.opts = opts
	vo.callback = callback
	vo.last = nil
	vo.connected = true

	disconnect = func() {
		vo.connected = false
		vo.callback = nil
	}
	return disconnect
}

// update reports anchors whose threshold bucket or intersection state
// changed. The first update after connecting reports every anchor.
func (vo *viewportObserver) update(offset, height int) {
	if !vo.connected || vo.callback == nil || height <= 0 {
		return
	}

	h := float64(height)
	top := float64(offset) - vo.opts.RootMargin.Top.Resolve(h)
	bottom := float64(offset+height) + vo.opts.RootMargin.Bottom.Resolve(h)

	byID := make(map[string]block)
	for _, b := range vo.blocks() {
		byID[b.id] = b
	}

	first := vo.last == nil
	if first {
		vo.last = make(map[string]observation, len(vo.ids))
	}

	var entries []interact.Entry
	for _, id := range vo.ids {
		b, ok := byID[id]
		if !ok {
			continue
		}

		ratio, intersecting := intersection(b, top, bottom)
		obs := observation{bucket: bucketOf(ratio, intersecting, vo.opts.Thresholds), intersecting: intersecting}

		prev, seen := vo.last[id]
		if first || !seen || prev != obs {
			entries = append(entries, interact.Entry{ID: id, Ratio: ratio, Intersecting: intersecting})
		}
		vo.last[id] = obs
	}

	if len(entries) > 0 {
		vo.callback(entries)
	}
}

// intersection returns the visible share of b within [top, bottom).
func intersection(b block, top, bottom float64) (ratio float64, intersecting bool) {
	start, end := float64(b.start), float64(b.end)
	if end <= start {
		return ratio, intersecting
	}

	visible := minFloat(end, bottom) - maxFloat(start, top)
	if visible <= 0 {
		return ratio, intersecting
	}

	ratio = visible / (end - start)
	intersecting = true
	return ratio, intersecting
}

// bucketOf counts the thresholds reached by ratio. A zero threshold is
// reached by any intersection.
func bucketOf(ratio float64, intersecting bool, thresholds []float64) (bucket int) {
	if !intersecting {
		return bucket
	}
	for _, t := range thresholds {
		if ratio >= t {
			bucket++
		}
	}
	return bucket
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// navEvent records default suppression for a key-driven navigation.
type navEvent struct {
	prevented bool
}

func (e *navEvent) PreventDefault() { e.prevented = true }

// viewportDocument resolves section ids to scroll targets in the model.
type viewportDocument struct {
	model *Model
}

func (d viewportDocument) ElementByID(id string) (el interact.Element, found bool) {
	b, ok := d.model.layout.block(id)
	if !ok {
		return el, found
	}
	el = sectionElement{model: d.model, block: b}
	found = true
	return el, found
}

type sectionElement struct {
	model *Model
	block block
}

// ScrollIntoView aligns the block per opts.Block. Smooth behavior animates
// on ticks; anything else jumps.
func (e sectionElement) ScrollIntoView(opts interact.ScrollOptions) {
	height := e.model.viewport.Height
	target := e.block.start

	switch opts.Block {
	case "center":
		target = e.block.start - (height-(e.block.end-e.block.start))/2
	case "end":
		target = e.block.end - height
	case "nearest":
		offset := e.model.viewport.YOffset
		switch {
		case e.block.start >= offset && e.block.end <= offset+height:
			target = offset
		case e.block.start < offset:
			target = e.block.start
		default:
			target = e.block.end - height
		}
	}

	e.model.scrollTo(target, opts.Behavior == "smooth")
}
