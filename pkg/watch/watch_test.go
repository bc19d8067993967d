package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")

	err := os.WriteFile(path, []byte("a"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan struct{}, 10)
	done := make(chan error, 1)

	w := New(path, 50*time.Millisecond, nil)
	go func() {
		done <- w.Run(ctx, func() {
			calls.Add(1)
			changed <- struct{}{}
		})
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		err = os.WriteFile(path, []byte{byte('a' + i)}, 0600)
		if err != nil {
			t.Fatalf("Failed to write test file: %v", err)
		}
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for change")
	}

	// Let any stray debounce expire.
	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("Expected 1 debounced call, got %d", got)
	}

	cancel()
	select {
	case err = <-done:
		if err != nil {
			t.Errorf("Expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for watcher to stop")
	}
}

func TestRunIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")

	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	done := make(chan error, 1)

	w := New(path, 20*time.Millisecond, nil)
	go func() {
		done <- w.Run(ctx, func() { calls.Add(1) })
	}()

	time.Sleep(100 * time.Millisecond)

	err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	if got := calls.Load(); got != 0 {
		t.Errorf("Expected no calls for other files, got %d", got)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w := New("/nonexistent/dir/portfolio.yaml", 0, nil)

	err := w.Run(context.Background(), func() {})
	if err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestNewDefaults(t *testing.T) {
	w := New("a/../portfolio.yaml", 0, nil)

	if w.debounce != DefaultDebounce {
		t.Errorf("Expected default debounce, got %v", w.debounce)
	}
	want, err := filepath.Abs("portfolio.yaml")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if w.path != want {
		t.Errorf("Expected %q, got %q", want, w.path)
	}
}
