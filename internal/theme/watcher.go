package theme

import (
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"kun/internal/logger"
)

// Watcher rescans the store when theme files in the user directory
// change, so edits show up without restarting the editor.
type Watcher struct {
	store    *Store
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewWatcher starts watching the store's user directory. The directory
// is created if absent so the watch can be established. onChange runs
// on the watcher goroutine after each rescan; callers marshal back to
// the UI thread themselves.
func NewWatcher(store *Store, log logger.Logger, onChange func()) (*Watcher, error) {
	if log == nil {
		log = logger.Nop{}
	}

	if err := os.MkdirAll(store.userDir, 0o755); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(store.userDir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		store:    store,
		logger:   log,
		watcher:  fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()

	log.Debug("ThemeWatcher", "watching user themes directory", map[string]interface{}{
		"dir": store.userDir,
	})
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Info("ThemeWatcher", "theme file changed, rescanning", map[string]interface{}{
				"path": event.Name,
				"op":   event.Op.String(),
			})
			w.store.Rescan()
			if w.onChange != nil {
				w.onChange()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warning("ThemeWatcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Shutdown() {
	close(w.done)
	w.watcher.Close()
}
