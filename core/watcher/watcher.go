package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"traitscope/core/cache"
	"traitscope/core/logger"
	"traitscope/core/models"
)

type FileWatcher interface {
	Watch() error
	Close() error
}

type FileWatcherImpl struct {
	FileWatcher *models.FileWatcher
}

// NewFileWatcher watches the directory holding targetPath rather than
// the file itself, so editors that replace the file on save (remove,
// rename, create) do not silently detach the watch.
func NewFileWatcher(targetPath string) (*FileWatcherImpl, error) {
	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", targetPath, err)
	}

	fw, err := models.NewFileWatcher(filepath.Clean(abs))
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &FileWatcherImpl{FileWatcher: fw}, nil
}

func (fw *FileWatcherImpl) Watch() error {
	watchDir := filepath.Dir(fw.FileWatcher.TargetPath)
	if err := fw.FileWatcher.Watcher.Add(watchDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchDir, err)
	}
	logger.Debug("Watching %s for changes to %s", watchDir, filepath.Base(fw.FileWatcher.TargetPath))

	if err := fw.FileWatcher.OnStart(); err != nil {
		logger.Error("Watcher.OnStart failed: %v", err)
	}

	for {
		select {
		case event, ok := <-fw.FileWatcher.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !fw.isTargetEvent(event.Name) {
				continue
			}

			log := logger.GetLogFromLevel(logger.DEBUG)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log = logger.GetLogFromLevel(logger.INFO)
			}
			log("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				cache.GetCache().InvalidateFile(fw.FileWatcher.TargetPath)
			}

			fw.debounceGenerate()

		case err, ok := <-fw.FileWatcher.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcherImpl) isTargetEvent(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return filepath.Clean(abs) == fw.FileWatcher.TargetPath
}

func (fw *FileWatcherImpl) debounceGenerate() {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	fw.FileWatcher.DebounceTimer = time.AfterFunc(500*time.Millisecond, func() {
		logger.Debug("File changes detected, regenerating...")
		if err := fw.FileWatcher.OnChange(); err != nil {
			logger.Error("Watcher.OnChange failed: %v", err)
		}
	})
}

func (fw *FileWatcherImpl) Close() error {
	fw.FileWatcher.Mutex.Lock()
	defer fw.FileWatcher.Mutex.Unlock()

	if fw.FileWatcher.DebounceTimer != nil {
		fw.FileWatcher.DebounceTimer.Stop()
	}

	if err := fw.FileWatcher.OnClose(); err != nil {
		logger.Error("Watcher.OnClose failed: %v", err)
	}

	return fw.FileWatcher.Watcher.Close()
}
