package ml

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the store when an artifact file is rewritten. Events are
// debounced because editors and atomic-rename deploys emit several per file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	store    *Store
	logger   *zap.Logger
	onReload func()
	done     chan struct{}
}

const reloadDebounce = 500 * time.Millisecond

// NewWatcher watches the directory containing the store's artifacts.
// onReload runs after every successful swap; it may be nil.
func NewWatcher(store *Store, logger *zap.Logger, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(store.paths.Scaler)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fsw, store: store, logger: logger, onReload: onReload, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.isArtifact(event.Name) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			if err := w.store.Reload(); err != nil {
				w.logger.Error("model reload failed, keeping previous bundle", zap.Error(err))
				continue
			}
			w.logger.Info("model artifacts reloaded")
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("artifact watcher error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) isArtifact(name string) bool {
	base := filepath.Base(name)
	return base == filepath.Base(w.store.paths.Scaler) ||
		base == filepath.Base(w.store.paths.Logistic) ||
		base == filepath.Base(w.store.paths.DecisionTree)
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
