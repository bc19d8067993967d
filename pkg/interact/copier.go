package interact

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// CopiedWindow is how long IsCopied stays true after a successful copy.
const CopiedWindow = 2000 * time.Millisecond

// CopierConfig configures a Copier. Only Primary is required.
type CopierConfig struct {
	Primary  Clipboard
	Fallback Clipboard
	Clock    Clock
	// Window defaults to CopiedWindow.
	Window time.Duration
	// OnChange is called with the new flag whenever it flips.
	OnChange func(copied bool)
	Logger   *zap.Logger
}

// Copier copies text and exposes a timed "copied" flag.
type Copier struct {
	primary  Clipboard
	fallback Clipboard
	clock    Clock
	window   time.Duration
	onChange func(bool)
	logger   *zap.Logger

	mu         sync.Mutex
	copied     bool
	pending    Timer
	generation uint64
	closed     bool
}

// NewCopier builds a Copier from cfg.
func NewCopier(cfg CopierConfig) (copier *Copier) {
	copier = &Copier{
		primary:  cfg.Primary,
		fallback: cfg.Fallback,
		clock:    cfg.Clock,
		window:   cfg.Window,
		onChange: cfg.OnChange,
		logger:   orNop(cfg.Logger),
	}

	if copier.clock == nil {
		copier.clock = RealClock()
	}
	if copier.window <= 0 {
		copier.window = CopiedWindow
	}

	return copier
}

// Copy writes text to the clipboard. Empty text is ignored. If both the
// primary and the fallback clipboard fail, the flag is left alone and
// nothing is reported.
func (c *Copier) Copy(text string) {
	if text == "" {
		return
	}

	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	if !c.write(text) {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	if c.pending != nil {
		c.pending.Stop()
	}
	c.generation++
	generation := c.generation
	c.pending = c.clock.AfterFunc(c.window, func() {
		c.reset(generation)
	})

	changed := !c.copied
	c.copied = true
	c.mu.Unlock()

	if changed && c.onChange != nil {
		c.onChange(true)
	}
}

// IsCopied reports whether a copy succeeded within the window.
func (c *Copier) IsCopied() (copied bool) {
	c.mu.Lock()
	copied = c.copied
	c.mu.Unlock()
	return copied
}

// Close cancels any pending reset. Later copies are ignored.
func (c *Copier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.generation++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Copier) write(text string) (ok bool) {
	if c.primary != nil {
		err := c.primary.WriteAll(text)
		if err == nil {
			ok = true
			return ok
		}
		c.logger.Debug("primary clipboard failed", zap.Error(err))
	}

	if c.fallback != nil {
		err := c.fallback.WriteAll(text)
		if err == nil {
			ok = true
			return ok
		}
		c.logger.Debug("fallback clipboard failed", zap.Error(err))
	}

	return ok
}

func (c *Copier) reset(generation uint64) {
	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	changed := c.copied
	c.copied = false
	c.mu.Unlock()

	if changed && c.onChange != nil {
		c.onChange(false)
	}
}
