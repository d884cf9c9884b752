package parser

import (
	"strings"

	"github.com/ava12/lrx"
	"github.com/ava12/lrx/scanner"
)

// Error codes used by parser:
const (
	// ErrUnexpectedToken indicates a syntax error recovery could not absorb.
	// Error message contains the token text and the expected symbol names.
	ErrUnexpectedToken = iota + lrx.SyntaxErrors

	// ErrUnexpectedEof is ErrUnexpectedToken at end of input.
	ErrUnexpectedEof

	// ErrReduce indicates a failed reduction callback. The position points
	// at the current lookahead, which may or may not be the culprit.
	ErrReduce

	// ErrNoGoto indicates a corrupt bundle: no Goto cell after a reduction.
	ErrNoGoto

	// ErrBadCallbacks indicates that the callback list does not cover the
	// bundle's rule list.
	ErrBadCallbacks
)

func unexpectedTokenError(tok *scanner.Token, expected []string) *lrx.Error {
	return lrx.FormatErrorPos(
		tok,
		ErrUnexpectedToken,
		"unexpected token %q, expecting one of: %s",
		tok.Text(),
		strings.Join(expected, ", "),
	)
}

func unexpectedEofError(tok *scanner.Token, expected []string) *lrx.Error {
	return lrx.FormatErrorPos(
		tok,
		ErrUnexpectedEof,
		"unexpected end of input, expecting one of: %s",
		strings.Join(expected, ", "),
	)
}

func reduceError(tok *scanner.Token, rule int, cause error) *lrx.Error {
	return lrx.FormatErrorPos(tok, ErrReduce, "rule %d reduction failed near token %q: %s", rule, tok.Text(), cause.Error())
}

func noGotoError(state, symbol int) *lrx.Error {
	return lrx.FormatError(ErrNoGoto, "no goto from state %d on symbol %d", state, symbol)
}

func badCallbacksError(got, expected int) *lrx.Error {
	return lrx.FormatError(ErrBadCallbacks, "bundle has %d reduction callbacks for %d rules", got, expected)
}
