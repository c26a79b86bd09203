package workspace

import (
	"path/filepath"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnosticsFor(t *testing.T) {
	w := New(t.TempDir())

	if diags := diagnosticsFor(nil); diags == nil || len(diags) != 0 {
		t.Errorf("closed document: got %v, want empty non-nil slice", diags)
	}

	ok := w.UpdateFile("ok.ace", []byte("1+2"))
	if diags := diagnosticsFor(ok); diags == nil || len(diags) != 0 {
		t.Errorf("valid document: got %v, want empty non-nil slice", diags)
	}

	bad := w.UpdateFile("bad.ace", []byte("(1 +\n 2"))
	diags := diagnosticsFor(bad)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("expected error severity")
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 1, Character: 2},
	}
	if d.Range != want {
		t.Errorf("range: got %+v, want %+v", d.Range, want)
	}
	if d.Message == "" {
		t.Errorf("empty message")
	}
}

func TestEndPosition(t *testing.T) {
	tests := []struct {
		content string
		want    protocol.Position
	}{
		{"", protocol.Position{Line: 0, Character: 0}},
		{"1+2", protocol.Position{Line: 0, Character: 3}},
		{"1+\n", protocol.Position{Line: 1, Character: 0}},
		{"é𝄞", protocol.Position{Line: 0, Character: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			if got := endPosition([]byte(tt.content)); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestURIConversion(t *testing.T) {
	path, err := uriToPath("file:///tmp/work/main.ace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/tmp/work/main.ace" {
		t.Errorf("got %q", path)
	}
	if uri := pathToURI("/tmp/work/main.ace"); uri != "file:///tmp/work/main.ace" {
		t.Errorf("got %q", uri)
	}
	if path, _ := uriToPath("untitled:1"); path != "untitled:1" {
		t.Errorf("non-file URI changed: %q", path)
	}
}

func TestHover(t *testing.T) {
	ls := NewLSPServer("test")
	ls.workspace = New(t.TempDir())
	ls.workspace.UpdateFile("/tmp/main.ace", []byte("2*3+4"))

	params := &protocol.HoverParams{}
	params.TextDocument.URI = "file:///tmp/main.ace"

	hover, err := ls.textDocumentHover(nil, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hover == nil {
		t.Fatal("expected hover")
	}
	content, ok := hover.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("unexpected contents %T", hover.Contents)
	}
	if content.Value != "BinOp(BinOp(Int(2), Mul, Int(3)), Add, Int(4))" {
		t.Errorf("got %q", content.Value)
	}

	params.TextDocument.URI = "file:///tmp/other.ace"
	if hover, _ := ls.textDocumentHover(nil, params); hover != nil {
		t.Errorf("expected no hover for unknown document")
	}
}

func TestInitializedScansWorkspace(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.ace")
	writeFile(t, path, "1+2\n")

	ls := NewLSPServer("test")
	ls.workspace = New(root)

	ctx := &glsp.Context{Notify: func(method string, params any) {}}
	if err := ls.initialized(ctx, &protocol.InitializedParams{}); err != nil {
		t.Fatalf("initialized: %v", err)
	}
	defer ls.shutdown(ctx)

	doc := ls.workspace.GetFile(path)
	if doc == nil || doc.ParseErr != nil {
		t.Errorf("expected %s to be parsed on initialization, got %+v", path, doc)
	}
}
