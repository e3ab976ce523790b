// Package watch signals when the store file is modified by someone else:
// a second terminal, a restored backup, a sync tool. The TUI uses it to
// refresh views whose data changed underneath them.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the bursts of events a single save produces
// (write + chmod, or create + rename for editors that replace the file).
const debounce = 200 * time.Millisecond

// Watcher watches one file. Each external modification is delivered as one
// tick on C after the debounce window closes.
type Watcher struct {
	C chan struct{}

	path string
	fsw  *fsnotify.Watcher
}

// New starts watching the file at path. The parent directory is watched
// rather than the file itself so replace-style saves keep working; the
// directory must exist.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{
		C:    make(chan struct{}, 1),
		path: filepath.Clean(path),
		fsw:  fsw,
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher. C is closed once the internal loop drains.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.C)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.C <- struct{}{}:
			default: // a tick is already pending
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the tracker simply
			// keeps running without external-change refresh.
		}
	}
}
