package interact

import (
	"testing"
)

func TestMouseTrackerPublishesEveryEvent(t *testing.T) {
	source := newFakePointer()

	var seen []Position
	tracker := NewMouseTracker(source, func(p Position) { seen = append(seen, p) })
	defer tracker.Close()

	if got := tracker.Track(true); got != (Position{}) {
		t.Errorf("Expected initial {0,0}, got %+v", got)
	}

	source.move(Position{X: 1, Y: 2})
	source.move(Position{X: 1, Y: 2})
	source.move(Position{X: 5, Y: 9})

	if len(seen) != 3 {
		t.Errorf("Expected 3 published positions, got %d", len(seen))
	}
	if got := tracker.Position(); got != (Position{X: 5, Y: 9}) {
		t.Errorf("Expected {5,9}, got %+v", got)
	}
}

func TestMouseTrackerDisabled(t *testing.T) {
	source := newFakePointer()
	tracker := NewMouseTracker(source, nil)

	if got := tracker.Track(false); got != (Position{}) {
		t.Errorf("Expected {0,0}, got %+v", got)
	}
	if source.subscribes != 0 {
		t.Errorf("Expected no subscription while disabled, got %d", source.subscribes)
	}
}

func TestMouseTrackerDisableStopsUpdates(t *testing.T) {
	source := newFakePointer()
	// The source keeps calling dropped listeners; the tracker must ignore them.
	source.keepAfterDrop = true

	updates := 0
	tracker := NewMouseTracker(source, func(Position) { updates++ })

	tracker.Track(true)
	source.move(Position{X: 3, Y: 4})

	if got := tracker.Track(false); got != (Position{}) {
		t.Errorf("Expected {0,0} after disable, got %+v", got)
	}

	source.move(Position{X: 7, Y: 7})
	source.move(Position{X: 8, Y: 8})

	if updates != 1 {
		t.Errorf("Expected 1 update, got %d", updates)
	}
	if got := tracker.Position(); got != (Position{}) {
		t.Errorf("Expected {0,0}, got %+v", got)
	}
}

func TestMouseTrackerReleasesOnce(t *testing.T) {
	source := newFakePointer()
	tracker := NewMouseTracker(source, nil)

	tracker.Track(true)
	tracker.Track(true)
	tracker.Track(false)
	tracker.Track(false)
	tracker.Close()

	if source.subscribes != 1 {
		t.Errorf("Expected 1 subscribe, got %d", source.subscribes)
	}
	if source.unsubscribes != 1 {
		t.Errorf("Expected 1 unsubscribe, got %d", source.unsubscribes)
	}

	tracker.Track(true)
	tracker.Close()

	if source.subscribes != 2 || source.unsubscribes != 2 {
		t.Errorf("Expected balanced 2/2, got %d/%d", source.subscribes, source.unsubscribes)
	}
}
