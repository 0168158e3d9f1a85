package interactive

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rail44/drills/internal/log"
)

const debounceDelay = 100 * time.Millisecond

// FileWatcher calls onChange after writes to a single file settle
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
	logger   log.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewFileWatcher watches filePath and its directory, so files replaced by
// editors on save are still picked up
func NewFileWatcher(filePath string, onChange func(), logger log.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	err = watcher.Add(filePath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("couldn't watch directory", "dir", dir, "error", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		filePath: filepath.Clean(filePath),
		onChange: onChange,
		logger:   logger,
	}, nil
}

// Start delivers events until ctx is done or the watcher is closed
func (fw *FileWatcher) Start(ctx context.Context) {
	defer fw.stopTimer()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.filePath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				fw.debounce()
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Error("watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) debounce() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(debounceDelay, fw.onChange)
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
}

// Close stops watching
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
