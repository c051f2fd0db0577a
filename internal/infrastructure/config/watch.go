package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the tuning file whenever it changes on disk, so
// gameplay values can be adjusted without restarting. Stage files are
// deliberately not watched; a level rebuild mid-session would scramble
// entity state.
type Watcher struct {
	fw      *fsnotify.Watcher
	base    string
	onLoad  func(*Tuning)
	onError func(error)
	done    chan struct{}
}

// Watch starts watching basePath/tuning.yaml. onLoad receives each
// successfully reloaded tuning; onError receives parse and watch
// failures. Both are called from the watcher goroutine.
func Watch(basePath string, onLoad func(*Tuning), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(basePath); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", basePath, err)
	}

	w := &Watcher{
		fw:      fw,
		base:    basePath,
		onLoad:  onLoad,
		onError: onError,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != "tuning.yaml" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			tuning, err := NewLoader(w.base).LoadTuning()
			if err != nil {
				w.onError(err)
				continue
			}
			w.onLoad(tuning)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.onError(err)
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
