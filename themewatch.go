package escore

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher reports theme file changes for hot reload. Changed file paths
// are delivered on Events, debounced so editors that write in bursts produce
// one event. The caller reloads on its own frame loop; the watcher goroutine
// never touches the component tree.
type ThemeWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

const themeWatchDebounce = 100 * time.Millisecond

// NewThemeWatcher watches the given directories for theme file changes.
func NewThemeWatcher(dirs ...string) (*ThemeWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}
	tw := &ThemeWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher and closes its channels.
func (tw *ThemeWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
		close(tw.Events)
		close(tw.Errors)
	})
	return err
}

func (tw *ThemeWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isThemeFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < themeWatchDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case tw.Events <- event.Name:
			case <-tw.closeCh:
				return
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case tw.Errors <- err:
			case <-tw.closeCh:
				return
			}
		case <-tw.closeCh:
			return
		}
	}
}

func isThemeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
