package workspace

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFileWatcherScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.ace")
	writeFile(t, path, "1+2")
	writeFile(t, filepath.Join(root, ".hidden", "skip.ace"), "1")

	w := New(root)
	fw := NewFileWatcher(w, time.Hour)

	changes := map[string]*Document{}
	calls := 0
	fw.OnChange = func(path string, doc *Document) {
		calls++
		changes[path] = doc
	}

	fw.scan()
	if calls != 1 {
		t.Fatalf("got %d change notifications, want 1", calls)
	}
	if doc := changes[path]; doc == nil || doc.ParseErr != nil {
		t.Fatalf("expected parsed document for %s, got %+v", path, doc)
	}

	fw.scan()
	if calls != 1 {
		t.Errorf("unchanged file was re-parsed")
	}

	writeFile(t, path, "1+")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	fw.scan()
	if calls != 2 {
		t.Fatalf("got %d change notifications, want 2", calls)
	}
	if doc := w.GetFile(path); doc == nil || doc.ParseErr == nil {
		t.Errorf("expected parse error after edit, got %+v", doc)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	fw.scan()
	if calls != 3 || changes[path] != nil {
		t.Errorf("deletion not reported")
	}
	if w.GetFile(path) != nil {
		t.Errorf("deleted file still in workspace")
	}
}

func TestFileWatcherStartStop(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.ace"), "7")

	w := New(root)
	fw := NewFileWatcher(w, 10*time.Millisecond)
	seen := make(chan string, 8)
	fw.OnChange = func(path string, doc *Document) {
		seen <- path
	}

	fw.Start()
	defer fw.Stop()

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the initial scan")
	}
}

func TestFileWatcherStopWaitsForScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.ace")
	writeFile(t, path, "7")

	fw := NewFileWatcher(New(root), time.Millisecond)
	var calls atomic.Int32
	fw.OnChange = func(path string, doc *Document) {
		time.Sleep(20 * time.Millisecond)
		calls.Add(1)
	}

	fw.Start()
	time.Sleep(5 * time.Millisecond)
	fw.Stop()
	stopped := calls.Load()

	writeFile(t, path, "8")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != stopped {
		t.Errorf("OnChange called %d times after Stop returned", got-stopped)
	}
}

func TestFileWatcherStopWithoutStart(t *testing.T) {
	fw := NewFileWatcher(New(t.TempDir()), time.Second)
	fw.Stop()
}
