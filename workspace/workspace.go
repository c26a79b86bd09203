// Package workspace keeps the parse state of the .ace documents under a root
// directory and serves it over the Language Server Protocol.
package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/ace/syntax"
)

// Ext is the file extension of expression documents.
const Ext = ".ace"

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	docs    map[string]*Document
	log     commonlog.Logger
}

// Document is the last known content of a file and the result of parsing
// it. Exactly one of Expr and ParseErr is set.
type Document struct {
	Path     string
	Content  []byte
	Expr     syntax.Expr
	ParseErr error
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		docs:    make(map[string]*Document),
		log:     commonlog.GetLogger("ace.workspace"),
	}
}

// ParseContent parses the contents of a document. A single trailing line
// ending, as left by most editors, is not part of the expression.
func ParseContent(content []byte) (syntax.Expr, error) {
	content = bytes.TrimSuffix(content, []byte("\n"))
	content = bytes.TrimSuffix(content, []byte("\r"))
	return syntax.Parse(string(content))
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == Ext {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	expr, parseErr := ParseContent(content)
	doc := &Document{
		Path:     path,
		Content:  content,
		Expr:     expr,
		ParseErr: parseErr,
	}

	w.mu.Lock()
	w.docs[path] = doc
	w.mu.Unlock()

	if parseErr != nil {
		w.log.Debugf("%s: %v", path, parseErr)
	} else {
		w.log.Debugf("%s: %s", path, expr)
	}
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.docs, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}
