// Package watch re-runs the cleanup rule list whenever one of the rule
// destinations changes on disk. Events are debounced so a burst of writes
// triggers a single run.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"sweepd/internal/clean"
	"sweepd/internal/log"
	"sweepd/pkg/types"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors rule destinations using fsnotify and triggers the engine
// after a quiet period.
type Watcher struct {
	engine *clean.Engine
	rules  []types.Rule

	// Quiet period between the last event and a re-run
	debounce time.Duration

	// Directories being watched
	directories []string

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a watcher over every distinct rule destination.
func New(engine *clean.Engine, rules []types.Rule, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		engine:    engine,
		rules:     rules,
		debounce:  debounce,
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}

	for _, rule := range rules {
		if err := w.addDirectory(rule.Destination); err != nil {
			fsWatcher.Close()
			return nil, err
		}
	}
	return w, nil
}

// addDirectory registers a directory with the fsnotify watcher
func (w *Watcher) addDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	// fsnotify tolerates duplicate adds; the list is only for Directories()
	for _, existing := range w.directories {
		if existing == dir {
			return nil
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.directories = append(w.directories, dir)
	log.WithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// Start begins the event loop. Each filesystem event arms (or re-arms) the
// debounce timer; when it fires the whole rule list is run once.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		log.Debug("Watcher event loop started")

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				log.WithFields(
					log.F("path", event.Name),
					log.F("op", event.Op.String()),
				).Debug("Filesystem event")

				if timer == nil {
					timer = time.NewTimer(w.debounce)
					fire = timer.C
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(w.debounce)
				}

			case <-fire:
				timer = nil
				fire = nil
				log.Info("Change detected, running cleanup rules")
				w.engine.Run(w.rules)

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.WithFields(log.F("error", err)).Error("fsnotify watcher error")

			case <-w.stopChan:
				if timer != nil {
					timer.Stop()
				}
				log.Debug("Watcher event loop received stop signal")
				return
			}
		}
	}()

	log.Info("Watcher started")
	return nil
}

// Stop halts the watching process
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.WithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false

	log.Info("Watcher stopped")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the list of directories being watched
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirs := make([]string, len(w.directories))
	copy(dirs, w.directories)
	return dirs
}
