package layout

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports when a layout file changes on disk, so a host can reload
// controls between frames. The parent directory is watched rather than the
// file itself, since editors typically replace files on save.
type Watcher struct {
	// C receives a value after each change to the watched file. Events are
	// coalesced: a pending notification is never queued twice.
	C chan struct{}

	fw   *fsnotify.Watcher
	done chan struct{}
}

// Watch starts watching the given layout file.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		C:    make(chan struct{}, 1),
		fw:   fw,
		done: make(chan struct{}),
	}
	go w.run(filepath.Base(path))
	return w, nil
}

func (w *Watcher) run(name string) {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.C <- struct{}{}:
			default:
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
