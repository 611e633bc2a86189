package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type FileWatcher struct {
	Watcher       *fsnotify.Watcher
	TargetPath    string
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnStart       func() error
	OnChange      func() error
	OnClose       func() error
}

func NewFileWatcher(targetPath string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw := &FileWatcher{
		Watcher:    watcher,
		TargetPath: targetPath,
		OnStart:    func() error { return fmt.Errorf("OnStart not set") },
		OnChange:   func() error { return fmt.Errorf("OnChange not set") },
		OnClose:    func() error { return fmt.Errorf("OnClose not set") },
	}

	return fw, nil
}

func (fw *FileWatcher) AddOnStartFunc(onStart func() error) {
	fw.OnStart = onStart
}

func (fw *FileWatcher) AddOnChangeFunc(onChange func() error) {
	fw.OnChange = onChange
}

func (fw *FileWatcher) AddOnCloseFunc(onClose func() error) {
	fw.OnClose = onClose
}
