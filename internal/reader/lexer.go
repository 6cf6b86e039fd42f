// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package reader implements the two-phase tokenize-then-parse pipeline
// that turns source text into an object.Object tree.
package reader

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// schemeLexer tokenizes source text: insert an implicit boundary around
// every '(' and ')', then split on whitespace. A regex lexer with Open,
// Close, Atom, and whitespace rules produces exactly that token stream.
// Only participle's lexer is used here — the grammar itself is
// hand-walked in parser.go; see DESIGN.md for why a grammar-engine parser
// isn't used for that part.
var schemeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\(`},
	{Name: "Close", Pattern: `\)`},
	{Name: "Atom", Pattern: `[^\s()]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

// token is one lexed unit: its Type name ("Open", "Close", or "Atom") and
// literal text.
type token struct {
	Type  string
	Value string
}

// tokenize runs src through schemeLexer and returns the non-whitespace
// token stream.
func tokenize(src string) ([]token, error) {
	lex, err := schemeLexer.LexString("", src)
	if err != nil {
		return nil, err
	}

	symbols := schemeLexer.Symbols()
	whitespace := symbols["whitespace"]

	var tokens []token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			break
		}
		if tok.Type == whitespace {
			continue
		}
		tokens = append(tokens, token{Type: tokenTypeName(symbols, tok.Type), Value: tok.Value})
	}
	return tokens, nil
}

func tokenTypeName(symbols map[string]lexer.TokenType, want lexer.TokenType) string {
	for name, tt := range symbols {
		if tt == want {
			return name
		}
	}
	return ""
}
