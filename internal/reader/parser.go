// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package reader

import (
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

// Read tokenizes and parses src into a single Object, per the grammar:
//
//	expr := atom | '(' list ')'
//	list := ε | expr list
//	atom := keyword | boolean | integer | symbol
func Read(src string) (*object.Object, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) && p.tokens[p.pos].Type == "Close" {
		return nil, errs.UnexpectedClose()
	}
	return expr, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parseExpr parses a single expr: atom | '(' list ')'. Running out of
// tokens here means an expression was expected but the input was empty.
func (p *parser) parseExpr() (*object.Object, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, errs.UnexpectedEOI()
	}

	switch tok.Type {
	case "Close":
		return nil, errs.UnexpectedClose()
	case "Open":
		p.advance()
		return p.parseList()
	default:
		p.advance()
		return classifyAtom(tok.Value), nil
	}
}

// parseList parses list := ε | expr list, consuming the closing ')'. The
// empty list () parses to Null; otherwise it builds a right-leaning chain
// of Pairs terminated by Null. Running out of tokens here means a list was
// opened but never closed.
func (p *parser) parseList() (*object.Object, error) {
	var elems []*object.Object
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, errs.UnclosedParen()
		}
		if tok.Type == "Close" {
			p.advance()
			return object.FromSequence(elems), nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, expr)
	}
}

// classifyAtom applies the atom-classification rules in order: reserved
// keyword, #t/#f boolean, signed 128-bit integer, else symbol.
func classifyAtom(text string) *object.Object {
	if kw, ok := object.KeywordFromIdentifier(text); ok {
		return object.NewKeyword(kw)
	}
	switch text {
	case "#t":
		return object.NewBoolean(true)
	case "#f":
		return object.NewBoolean(false)
	}
	if n, ok := object.ParseInt128(text); ok {
		return object.NewNumber(n)
	}
	return object.NewSymbol(text)
}
