package walker

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce drops repeat events for the same file inside this window.
const watchDebounce = 100 * time.Millisecond

// AssetWatcher reports changes to a fixed set of files. It watches their
// parent directories so editors that replace files atomically are still
// seen. Only cleaned absolute file names are posted on Events; reloading is
// left to the consumer.
type AssetWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewAssetWatcher starts watching files.
func NewAssetWatcher(files ...string) (*AssetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("walker: watch: %w", err)
	}

	aw := &AssetWatcher{
		watcher: w,
		files:   make(map[string]bool, len(files)),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("walker: watch %s: %w", f, err)
		}
		aw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("walker: watch %s: %w", dir, err)
		}
	}
	go aw.run()
	return aw, nil
}

// Close stops the watcher and closes Events and Errors.
func (w *AssetWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *AssetWatcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < watchDebounce {
				continue
			}
			last[name] = now
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Watches reports whether path is one of the watched files.
func (w *AssetWatcher) Watches(path string) bool {
	abs, err := filepath.Abs(path)
	return err == nil && w.files[abs]
}
