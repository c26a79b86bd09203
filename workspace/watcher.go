package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileWatcher polls the workspace root and keeps the workspace in sync with
// the .ace files on disk.
type FileWatcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	done         chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange, if set, is called after a file was re-parsed. doc is nil
	// when the file was deleted.
	OnChange func(path string, doc *Document)
}

func NewFileWatcher(w *Workspace, interval time.Duration) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		pollInterval: interval,
		modTimes:     make(map[string]time.Time),
	}
}

func (fw *FileWatcher) Start() {
	fw.done = make(chan struct{})
	go fw.run()
}

// Stop ends polling. Once it returns, OnChange is no longer called.
func (fw *FileWatcher) Stop() {
	close(fw.stopCh)
	if fw.done != nil {
		<-fw.done
	}
}

func (fw *FileWatcher) run() {
	defer close(fw.done)

	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.scan()

	for {
		select {
		case <-fw.stopCh:
			return
		case <-ticker.C:
			fw.scan()
		}
	}
}

func (fw *FileWatcher) scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(fw.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != fw.workspace.RootDir() && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Ext {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := fw.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			fw.modTimes[path] = info.ModTime()
			if err := fw.workspace.ScanFile(path); err != nil {
				return nil
			}
			fw.notify(path, fw.workspace.GetFile(path))
		}
		return nil
	})

	for path := range fw.modTimes {
		if !currentFiles[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
			fw.notify(path, nil)
		}
	}
}

func (fw *FileWatcher) notify(path string, doc *Document) {
	if fw.OnChange != nil {
		fw.OnChange(path, doc)
	}
}
