package ingest

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestStartWatcher_InitialScanAndNewFiles(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "existing.pdf"), "%PDF")
	write(t, filepath.Join(root, "readme.txt"), "x")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
		Debounce:    20 * time.Millisecond,
		SkipHidden:  true,
	})
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	next := func() string {
		t.Helper()
		select {
		case p := <-events:
			return p
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for watcher event")
			return ""
		}
	}

	if got := filepath.Base(next()); got != "existing.pdf" {
		t.Errorf("initial event = %s, want existing.pdf", got)
	}

	write(t, filepath.Join(root, "new.pdf"), "%PDF new")
	if got := filepath.Base(next()); got != "new.pdf" {
		t.Errorf("event = %s, want new.pdf", got)
	}

	cancel()
	for range events {
	}
}

func TestStartWatcherRequiresRoots(t *testing.T) {
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}); err == nil {
		t.Fatal("expected error without roots")
	}
}
