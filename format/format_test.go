package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/ace/syntax"
)

func TestTextEncoder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2", "BinOp(Int(1), Add, Int(2))\n"},
		{"2*3+4", "BinOp(BinOp(Int(2), Mul, Int(3)), Add, Int(4))\n"},
		{"(1+2)*3", "BinOp(BinOp(Int(1), Add, Int(2)), Mul, Int(3))\n"},
		{"6-3-2", "BinOp(Int(6), Sub, BinOp(Int(3), Sub, Int(2)))\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTextEncoder(&buf).Encode(syntax.MustParse(tt.input)); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestASTJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewASTJSONEncoder(&buf).Encode(syntax.MustParse("0*(1-2)")); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, buf.Bytes()); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := `{"kind":"binop","op":"Mul","left":{"kind":"int","value":0},"right":{"kind":"binop","op":"Sub","left":{"kind":"int","value":1},"right":{"kind":"int","value":2}}}`
	if compact.String() != want {
		t.Errorf("got %s\nwant %s", compact.String(), want)
	}
}

func TestReprEncoder(t *testing.T) {
	text, err := NewReprEncoder(nil).MarshalText(syntax.MustParse("1+2"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, want := range []string{"BinOp", "Left", "Right"} {
		if !strings.Contains(string(text), want) {
			t.Errorf("output %q does not mention %s", text, want)
		}
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range Names {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := NewEncoder("yaml", &bytes.Buffer{}); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
