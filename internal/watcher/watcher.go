// Package watcher notifies when the persistence slot file changes on
// disk, so an interactive session can pick up writes from other
// processes.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the write+rename burst a slot update produces.
const debounceDelay = 100 * time.Millisecond

// Event signals that the watched slot file changed.
type Event struct {
	Path string
}

// Watcher watches a single slot file for external modifications.
// It watches the parent directory because atomic writes replace the file
// by rename, which drops a watch placed on the file itself.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	slotPath   string
	eventsChan chan Event
	done       chan struct{}

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a watcher for the given slot file.
func New(slotPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		slotPath:   slotPath,
		eventsChan: make(chan Event, 16),
		done:       make(chan struct{}),
	}, nil
}

// Events returns the channel for receiving change events.
func (w *Watcher) Events() <-chan Event {
	return w.eventsChan
}

// Start begins watching. The slot's directory must already exist.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(filepath.Dir(w.slotPath)); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.slotPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleNotify()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: slot watch error: %v", err)
		}
	}
}

// scheduleNotify emits one event after the debounce window closes.
func (w *Watcher) scheduleNotify() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, func() {
		select {
		case <-w.done:
		case w.eventsChan <- Event{Path: w.slotPath}:
		default:
		}
	})
}
