// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package errs defines the error kinds the reader and evaluator can raise,
// each carrying a stable oops code and a numeric Kind for callers that
// prefer to branch on an integer.
package errs

import "github.com/samber/oops"

// Kind identifies an error kind. Zero value KindUnknown is never returned
// by a constructor in this package; it's the fallback for KindOf on errors
// this package did not produce.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnclosedParen
	KindUnexpectedClose
	KindUnexpectedEOI
	KindNotAPair
	KindNotASymbol
	KindNotAProcedure
	KindMalformedList
	KindQuoteMalformed
	KindIfMalformed
	KindLambdaMalformed
	KindDefineMalformed
	KindNotEvaluable
	KindUnboundSymbol
	KindArity
	KindTypeMismatch
	KindClosedOverScopeGone
)

var kindNames = [...]string{
	KindUnknown:             "UNKNOWN",
	KindUnclosedParen:       "UNCLOSED_PAREN",
	KindUnexpectedClose:     "UNEXPECTED_CLOSE",
	KindUnexpectedEOI:       "UNEXPECTED_EOI",
	KindNotAPair:            "NOT_A_PAIR",
	KindNotASymbol:          "NOT_A_SYMBOL",
	KindNotAProcedure:       "NOT_A_PROCEDURE",
	KindMalformedList:       "MALFORMED_LIST",
	KindQuoteMalformed:      "QUOTE_MALFORMED",
	KindIfMalformed:         "IF_MALFORMED",
	KindLambdaMalformed:     "LAMBDA_MALFORMED",
	KindDefineMalformed:     "DEFINE_MALFORMED",
	KindNotEvaluable:        "NOT_EVALUABLE",
	KindUnboundSymbol:       "UNBOUND_SYMBOL",
	KindArity:               "ARITY",
	KindTypeMismatch:        "TYPE_MISMATCH",
	KindClosedOverScopeGone: "CLOSED_OVER_SCOPE_GONE",
}

// String returns the stable oops code for k.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

var kindByCode = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// KindOf recovers the Kind from any error produced by this package's
// constructors, or KindUnknown if err is nil or wasn't produced here.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return KindUnknown
	}
	if k, ok := kindByCode[oopsErr.Code()]; ok {
		return k
	}
	return KindUnknown
}

// UnclosedParen reports end of input while a list was still open.
func UnclosedParen() error {
	return oops.Code(KindUnclosedParen.String()).Errorf("unclosed paren: end of input while expecting more")
}

// UnexpectedClose reports a ')' with no matching '('.
func UnexpectedClose() error {
	return oops.Code(KindUnexpectedClose.String()).Errorf("unexpected close paren")
}

// UnexpectedEOI reports empty input where an expression was expected.
func UnexpectedEOI() error {
	return oops.Code(KindUnexpectedEOI.String()).Errorf("unexpected end of input")
}

// NotAPair reports car/cdr applied to a non-Pair.
func NotAPair(kind string) error {
	return oops.Code(KindNotAPair.String()).With("kind", kind).Errorf("not a pair: %s", kind)
}

// NotASymbol reports an expression that was required to be a Symbol.
func NotASymbol(kind string) error {
	return oops.Code(KindNotASymbol.String()).With("kind", kind).Errorf("not a symbol: %s", kind)
}

// NotAProcedure reports application of a non-Procedure.
func NotAProcedure(kind string) error {
	return oops.Code(KindNotAProcedure.String()).With("kind", kind).Errorf("not a procedure: %s", kind)
}

// MalformedList reports a list whose terminating cdr is not Null.
func MalformedList() error {
	return oops.Code(KindMalformedList.String()).Errorf("malformed list: terminating cdr is not null")
}

// QuoteMalformed reports a quote form with no operand at all. Trailing
// operands beyond the first are silently ignored, not rejected — see
// DESIGN.md for why the stricter rejection isn't implemented.
func QuoteMalformed() error {
	return oops.Code(KindQuoteMalformed.String()).Errorf("malformed quote: requires at least one operand")
}

// IfMalformed reports an if form with the wrong operand count, or a
// two-armed if whose predicate is false.
func IfMalformed(reason string) error {
	return oops.Code(KindIfMalformed.String()).With("reason", reason).Errorf("malformed if: %s", reason)
}

// LambdaMalformed reports a lambda form missing its params list, or whose
// params or body is not a proper list.
func LambdaMalformed(reason string) error {
	return oops.Code(KindLambdaMalformed.String()).With("reason", reason).Errorf("malformed lambda: %s", reason)
}

// DefineMalformed reports a define form whose first operand isn't a Symbol,
// or whose operand count is wrong.
func DefineMalformed(reason string) error {
	return oops.Code(KindDefineMalformed.String()).With("reason", reason).Errorf("malformed define: %s", reason)
}

// NotEvaluable reports a top-level expression shape eval does not handle.
func NotEvaluable(kind string) error {
	return oops.Code(KindNotEvaluable.String()).With("kind", kind).Errorf("not evaluable: %s", kind)
}

// UnboundSymbol reports a symbol with no binding in the lexical chain.
func UnboundSymbol(name string) error {
	return oops.Code(KindUnboundSymbol.String()).With("symbol", name).Errorf("unbound symbol: %s", name)
}

// Arity reports a lambda called with the wrong number of operands.
func Arity(want, got int) error {
	return oops.Code(KindArity.String()).
		With("want", want).
		With("got", got).
		Errorf("arity mismatch: want %d operand(s), got %d", want, got)
}

// TypeMismatch reports an operand of the wrong Object kind to a builtin.
func TypeMismatch(expected, got string) error {
	return oops.Code(KindTypeMismatch.String()).
		With("expected", expected).
		With("got", got).
		Errorf("type mismatch: expected %s, got %s", expected, got)
}

// ClosedOverScopeGone reports a Lambda whose captured environment has been
// collected because nothing else keeps it alive.
func ClosedOverScopeGone() error {
	return oops.Code(KindClosedOverScopeGone.String()).Errorf("closed-over scope is gone")
}

// Display renders err the way the REPL prints it to the user: the message
// alone, with no structured error rendering beyond a display string.
func Display(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
