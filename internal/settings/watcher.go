package settings

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when the settings file changes, so a running app can
// reload its defaults without restarting. fsnotify is the primary
// mechanism with a stat-based polling fallback for filesystems that do not
// support it.
type Watcher struct {
	path   string
	events chan struct{}
	done   chan struct{}
	fsw    *fsnotify.Watcher
	once   sync.Once

	pollInterval time.Duration
}

// Watch starts watching the settings file at path. The returned watcher's
// Events channel is buffered to 1 so bursts of writes coalesce into a
// single reload.
func Watch(path string) (*Watcher, error) {
	w := &Watcher{
		path:         path,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: 2 * time.Second,
	}

	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		err = fsw.Add(path)
	}
	if err != nil {
		if fsw != nil {
			fsw.Close()
		}
		slog.Info("settings: fsnotify unavailable, polling instead", "path", path, "error", err)
		go w.poll()
		return w, nil
	}

	w.fsw = fsw
	go w.run()
	return w, nil
}

// Events delivers one signal per settings change.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)
		if w.fsw != nil {
			w.fsw.Close()
		}
	})
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				w.notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("settings: watch error", "error", err)
		}
	}
}

func (w *Watcher) poll() {
	var lastMod time.Time
	if info, err := os.Stat(w.path); err == nil {
		lastMod = info.ModTime()
	}
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if mod := info.ModTime(); mod.After(lastMod) {
				lastMod = mod
				w.notify()
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
