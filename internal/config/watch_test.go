package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("duration_ms: 1000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan File, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(f File, err error) {
			if err != nil {
				t.Errorf("reload failed: %v", err)
				return
			}
			got <- f
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(4 * ReloadDebounce)
	defer tick.Stop()
	for {
		select {
		case f := <-got:
			if f.DurationMS != 2500 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("Watch returned error: %v", err)
			}
			return
		case <-tick.C:
			// Writes are spaced past the debounce window and repeated until the
			// watcher has registered the directory.
			if err := os.WriteFile(path, []byte("duration_ms: 2500\n"), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ConfigFileName)
	if err := Watch(context.Background(), path, func(File, error) {}); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestReloadSkipsRemovedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	calls := 0
	if reloadExisting(path, func(File, error) { calls++ }) {
		t.Fatalf("expected a missing file to be skipped")
	}
	if calls != 0 {
		t.Fatalf("expected no reload for a missing file, got %d", calls)
	}

	if err := os.WriteFile(path, []byte("duration_ms: 1800\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	var got File
	if !reloadExisting(path, func(f File, err error) {
		if err != nil {
			t.Fatalf("reload failed: %v", err)
		}
		got = f
	}) {
		t.Fatalf("expected an existing file to reload")
	}
	if got.DurationMS != 1800 {
		t.Fatalf("expected reloaded duration 1800, got %d", got.DurationMS)
	}
}

func TestWatchIgnoresMovedAwayFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("duration_ms: 1000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan File, 8)
	go func() { _ = Watch(ctx, path, func(f File, _ error) { got <- f }) }()

	// Give the watcher time to register the directory before moving the file.
	time.Sleep(4 * ReloadDebounce)
	if err := os.Rename(path, filepath.Join(dir, "moved.yaml")); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	select {
	case f := <-got:
		t.Fatalf("moved file triggered a reload: %+v", f)
	case <-time.After(6 * ReloadDebounce):
	}
}
