package syntax

import (
	"strings"
	"testing"
)

func TestGrammarVerifies(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("grammar does not verify: %v", err)
	}

	for _, name := range []string{"Expression", "Additive", "Multiplicative", "Atom", "AddOp", "MulOp", "integer"} {
		if g[name] == nil {
			t.Errorf("missing production %s", name)
		}
	}
}

func TestGrammarSource(t *testing.T) {
	if !strings.Contains(GrammarSource(), StartProduction+" ") {
		t.Errorf("grammar source does not define %s", StartProduction)
	}
}
