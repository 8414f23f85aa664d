package cmd

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pick/logging"
)

// definitionWatcher reports writes to a single definition file. The watch
// is on the containing directory: editors that replace the file on save
// would drop a watch added on the file itself.
type definitionWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	last     time.Time
	changes  chan struct{}
	logger   *logrus.Entry
}

func newDefinitionWatcher(path string) (*definitionWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &definitionWatcher{
		watcher:  watcher,
		path:     abs,
		debounce: 100 * time.Millisecond,
		changes:  make(chan struct{}, 1),
		logger:   logging.NewLogger("watch"),
	}
	go w.loop()
	return w, nil
}

func (w *definitionWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if time.Since(w.last) < w.debounce {
				continue
			}
			w.last = time.Now()
			w.logger.WithField("path", w.path).Debug("Definition changed")
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("Watcher error")
		}
	}
}

// Changes buffers at most one pending notification, so a change that
// lands while the menu is open is not lost.
func (w *definitionWatcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *definitionWatcher) Close() error {
	return w.watcher.Close()
}
