package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/timedialog/internal/util"
	"github.com/fsnotify/fsnotify"
)

// Watch reloads path whenever it is written or created and passes the
// result to fn. A file that was moved away or deleted is not reloaded. The parent directory is watched so that
// editors that replace the file atomically are picked up. Bursts of events
// within ReloadDebounce produce one reload. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, fn func(File, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(ReloadDebounce, func() {
					select {
					case reload <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(ReloadDebounce)
			}
		case <-reload:
			reloadExisting(target, fn)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			util.LogError("config watcher", err)
		}
	}
}

// reloadExisting loads path into fn unless the file is gone, in which case
// the running configuration is kept.
func reloadExisting(path string, fn func(File, error)) bool {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false
	}
	f, err := Load(path)
	fn(f, err)
	return true
}
