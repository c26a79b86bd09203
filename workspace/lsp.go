package workspace

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "ace"

const diagnosticSource = "ace"

type LSPServer struct {
	workspace *Workspace
	watcher   *FileWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string
	notify    glsp.NotifyFunc
	log       commonlog.Logger
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		log:     commonlog.GetLogger("ace.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir)
	ls.log.Infof("workspace root %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.notify = ctx.Notify

	if err := ls.workspace.ScanAll(); err != nil {
		ls.log.Warningf("scan %s: %v", ls.workspace.RootDir(), err)
	}

	ls.watcher = NewFileWatcher(ls.workspace, time.Second)
	ls.watcher.OnChange = func(path string, doc *Document) {
		ls.publish(pathToURI(path), doc)
	}
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publish(params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			doc := ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publish(params.TextDocument.URI, doc)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.publish(params.TextDocument.URI, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.publish(params.TextDocument.URI, ls.workspace.UpdateFile(path, []byte(*params.Text)))
		return nil
	}
	if err := ls.workspace.ScanFile(path); err != nil {
		ls.log.Warningf("rescan %s: %v", path, err)
		return nil
	}
	ls.publish(params.TextDocument.URI, ls.workspace.GetFile(path))
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil || doc.Expr == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: doc.Expr.String(),
		},
	}, nil
}

func (ls *LSPServer) publish(uri protocol.DocumentUri, doc *Document) {
	if ls.notify == nil {
		return
	}
	ls.notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnosticsFor(doc),
	})
}

// diagnosticsFor reports a document that does not parse as a single error
// covering all of its content. The result is never nil so that clients
// clear earlier diagnostics.
func diagnosticsFor(doc *Document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc == nil || doc.ParseErr == nil {
		return diagnostics
	}

	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource
	return append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   endPosition(doc.Content),
		},
		Severity: &severity,
		Source:   &source,
		Message:  doc.ParseErr.Error(),
	})
}

// endPosition returns the LSP position just past the last character of
// content. Characters are counted in UTF-16 code units.
func endPosition(content []byte) protocol.Position {
	lines := strings.Split(string(content), "\n")
	last := lines[len(lines)-1]
	return protocol.Position{
		Line:      protocol.UInteger(len(lines) - 1),
		Character: protocol.UInteger(len(utf16.Encode([]rune(last)))),
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
