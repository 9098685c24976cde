package rules

import (
	"os"
	"time"
)

// Watcher polls the overrides file's modification time and triggers a
// callback on change. It uses only the standard library for simplicity.
type Watcher struct {
	path      string
	interval  time.Duration
	onChange  func()
	stopCh    chan struct{}
	lastMTime time.Time
}

// NewWatcher creates a watcher for the given path and poll interval.
func NewWatcher(path string, interval time.Duration, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		// prime the mtime cache
		w.scan(true)
		for {
			select {
			case <-ticker.C:
				w.scan(false)
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

// scan checks the file's mtime and invokes onChange when it advanced.
func (w *Watcher) scan(prime bool) {
	fi, err := os.Stat(w.path)
	if err != nil {
		// file may not exist yet; keep polling
		return
	}
	mt := fi.ModTime()
	if w.lastMTime.IsZero() {
		w.lastMTime = mt
		return
	}
	if mt.After(w.lastMTime) {
		w.lastMTime = mt
		if !prime && w.onChange != nil {
			w.onChange()
		}
	}
}
