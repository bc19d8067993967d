// Package interact derives UI state from injectable event sources: pointer
// position, clipboard copy feedback, the active section and in-page
// navigation.
//
// Each hook owns its subscription and releases it exactly once. Callbacks
// that arrive after a release or a replacement are dropped.
package interact

import (
	"time"

	"go.uber.org/zap"
)

// Position is a pointer location in viewport units.
type Position struct {
	X int
	Y int
}

// PointerSource delivers pointer movement. The returned function removes
// the listener.
type PointerSource interface {
	Subscribe(listener func(Position)) (unsubscribe func())
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed calls.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// RealClock returns a Clock backed by time.AfterFunc.
func RealClock() (clock Clock) {
	clock = realClock{}
	return clock
}

func orNop(logger *zap.Logger) (out *zap.Logger) {
	out = logger
	if out == nil {
		out = zap.NewNop()
	}
	return out
}
