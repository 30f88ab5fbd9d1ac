package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var calls int32
	d := &debouncer{window: 30 * time.Millisecond}

	for i := 0; i < 10; i++ {
		d.trigger(func() { atomic.AddInt32(&calls, 1) })
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 coalesced call, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var calls int32
	d := &debouncer{window: 30 * time.Millisecond}
	d.trigger(func() { atomic.AddInt32(&calls, 1) })
	d.cancel()

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected cancelled trigger to never fire, got %d calls", got)
	}
}

func TestDebouncerSequentialBursts(t *testing.T) {
	var calls int32
	d := &debouncer{window: 20 * time.Millisecond}

	d.trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(80 * time.Millisecond)
	d.trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected 2 separated calls, got %d", got)
	}
}

func TestWatchSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.yaml")
	if err := os.WriteFile(path, []byte("mode: stack_reach\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("mode: front_center\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-ctx.Done():
		t.Fatal("watcher never reported the write")
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Errorf("unexpected watch error: %v", err)
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.yaml")
	if err := os.WriteFile(path, []byte("mode: stack_reach\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls int32
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	go func() {
		_ = Watch(ctx, path, 20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("sibling file writes should be ignored, got %d calls", got)
	}
}
