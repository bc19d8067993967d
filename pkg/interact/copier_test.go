package interact

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCopySetsFlagForWindow(t *testing.T) {
	clock := &fakeClock{}
	primary := &fakeClipboard{}

	copier := NewCopier(CopierConfig{Primary: primary, Clock: clock})
	defer copier.Close()

	copier.Copy("me@example.com")

	if !copier.IsCopied() {
		t.Fatal("Expected copied after successful write")
	}

	clock.advance(CopiedWindow - time.Millisecond)
	if !copier.IsCopied() {
		t.Error("Expected still copied before window ends")
	}

	clock.advance(time.Millisecond)
	if copier.IsCopied() {
		t.Error("Expected reset after window")
	}
}

func TestCopyTwiceRestartsWindow(t *testing.T) {
	clock := &fakeClock{}
	copier := NewCopier(CopierConfig{Primary: &fakeClipboard{}, Clock: clock})
	defer copier.Close()

	copier.Copy("x")
	clock.advance(1500 * time.Millisecond)
	copier.Copy("x")

	if got := clock.pending(); got != 1 {
		t.Errorf("Expected exactly 1 pending timer, got %d", got)
	}

	// Past the first window, short of the second.
	clock.advance(1999 * time.Millisecond)
	if !copier.IsCopied() {
		t.Error("Expected copied until 2000ms after the second call")
	}

	clock.advance(time.Millisecond)
	if copier.IsCopied() {
		t.Error("Expected reset 2000ms after the second call")
	}
}

func TestCopyEmptyIsNoop(t *testing.T) {
	clock := &fakeClock{}
	primary := &fakeClipboard{}
	fallback := &fakeClipboard{}

	copier := NewCopier(CopierConfig{Primary: primary, Fallback: fallback, Clock: clock})
	defer copier.Close()

	copier.Copy("")

	if copier.IsCopied() {
		t.Error("Expected not copied")
	}
	if primary.count() != 0 || fallback.count() != 0 {
		t.Errorf("Expected no clipboard calls, got %d/%d", primary.count(), fallback.count())
	}
	if clock.pending() != 0 {
		t.Error("Expected no timer")
	}
}

func TestCopyFallback(t *testing.T) {
	tests := []struct {
		name        string
		primaryErr  error
		fallbackErr error
		wantCopied  bool
		wantPrimary int
		wantFall    int
	}{
		{name: "primary succeeds", wantCopied: true, wantPrimary: 1, wantFall: 0},
		{name: "fallback succeeds", primaryErr: errors.New("denied"), wantCopied: true, wantPrimary: 1, wantFall: 1},
		{name: "both fail", primaryErr: errors.New("denied"), fallbackErr: errors.New("no tty"), wantCopied: false, wantPrimary: 1, wantFall: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{}
			primary := &fakeClipboard{err: tt.primaryErr}
			fallback := &fakeClipboard{err: tt.fallbackErr}

			copier := NewCopier(CopierConfig{Primary: primary, Fallback: fallback, Clock: clock})
			defer copier.Close()

			copier.Copy("text")

			if copier.IsCopied() != tt.wantCopied {
				t.Errorf("Expected copied=%v, got %v", tt.wantCopied, copier.IsCopied())
			}
			if primary.count() != tt.wantPrimary {
				t.Errorf("Expected %d primary writes, got %d", tt.wantPrimary, primary.count())
			}
			if fallback.count() != tt.wantFall {
				t.Errorf("Expected %d fallback writes, got %d", tt.wantFall, fallback.count())
			}
			if !tt.wantCopied && clock.pending() != 0 {
				t.Error("Expected no timer after failed copy")
			}
		})
	}
}

func TestCopierCloseCancelsTimer(t *testing.T) {
	clock := &fakeClock{}

	changes := 0
	copier := NewCopier(CopierConfig{
		Primary:  &fakeClipboard{},
		Clock:    clock,
		OnChange: func(bool) { changes++ },
	})

	copier.Copy("x")
	copier.Close()

	if clock.pending() != 0 {
		t.Errorf("Expected no pending timer after close, got %d", clock.pending())
	}

	clock.advance(CopiedWindow)
	if changes != 1 {
		t.Errorf("Expected only the set notification, got %d", changes)
	}

	copier.Copy("y")
	if changes != 1 {
		t.Error("Expected copies after close to be ignored")
	}
}

func TestCopierOnChange(t *testing.T) {
	clock := &fakeClock{}

	var flips []bool
	copier := NewCopier(CopierConfig{
		Primary:  &fakeClipboard{},
		Clock:    clock,
		OnChange: func(copied bool) { flips = append(flips, copied) },
	})
	defer copier.Close()

	copier.Copy("a")
	copier.Copy("b")
	clock.advance(CopiedWindow)

	if len(flips) != 2 || !flips[0] || flips[1] {
		t.Errorf("Expected [true false], got %v", flips)
	}
}

func TestCopierRealClock(t *testing.T) {
	done := make(chan bool, 2)
	copier := NewCopier(CopierConfig{
		Primary:  &fakeClipboard{},
		Window:   10 * time.Millisecond,
		OnChange: func(copied bool) { done <- copied },
	})
	defer copier.Close()

	copier.Copy("x")

	select {
	case copied := <-done:
		if !copied {
			t.Fatal("Expected set notification first")
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for set")
	}

	select {
	case copied := <-done:
		if copied {
			t.Error("Expected reset notification")
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for reset")
	}
}

func TestTerminalClipboard(t *testing.T) {
	var buf bytes.Buffer
	tc := &TerminalClipboard{Out: &buf}

	err := tc.WriteAll("hello")
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	// base64("hello") inside an OSC 52 clipboard sequence.
	if !strings.HasPrefix(buf.String(), "\x1b]52;c;aGVsbG8=") {
		t.Errorf("Unexpected sequence %q", buf.String())
	}

	err = (&TerminalClipboard{}).WriteAll("x")
	if err == nil {
		t.Error("Expected error without output")
	}
}

func TestSystemClipboard(t *testing.T) {
	var got string
	orig := clipboardWriteAll
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}
	defer func() { clipboardWriteAll = orig }()

	err := SystemClipboard{}.WriteAll("me@example.com")
	// Headless hosts report the clipboard as unsupported before the write.
	if err != nil {
		t.Skipf("system clipboard unavailable: %v", err)
	}

	if got != "me@example.com" {
		t.Errorf("Expected write to reach clipboard, got %q", got)
	}
}
