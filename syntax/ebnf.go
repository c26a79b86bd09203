package syntax

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// StartProduction is the production of grammar.ebnf that describes a whole
// input.
const StartProduction = "Expression"

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the EBNF description of the expression language.
func GrammarSource() string {
	return grammarSource
}

// Grammar parses the EBNF description and verifies it from
// StartProduction.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, StartProduction); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
