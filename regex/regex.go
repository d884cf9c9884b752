// Package regex implements the pattern engine used for terminal definitions.
//
// Patterns are anchored: a match is reported only if the pattern covers the
// whole input. Besides the full match flag the engine reports a partial
// match flag telling whether appending more input could still produce a full
// match; the scanner relies on it for maximal-munch decisions over a stream.
//
// Supported syntax: byte literals, escapes (\n \t, class shortcuts
// \d \l \u \s, any other escaped byte matches itself), ".", character
// classes with ranges and inversion, grouping "(...)", alternation "|",
// repetitions "*" "+" "?" "{m}" "{m,}" "{m,n}", and zero-width look-ahead
// "(?=...)" / "(?!...)".
package regex

import (
	"strings"

	"github.com/ava12/lrx/internal/ints"
)

// Regex is a compiled pattern. It is immutable and safe for concurrent use.
type Regex struct {
	pattern string
	root    *node
	// root with the implicit end-of-input anchor appended
	anchored *node
}

// Match is a match report.
type Match struct {
	// Full tells whether the pattern matches the entire input.
	Full bool

	// Partial tells whether the pattern could match some extension of the
	// input. Never set together with Full.
	Partial bool

	// Pos contains the input offsets surviving the match, in ascending
	// order. With the end-of-input anchor a non-empty set means the input
	// length is reachable.
	Pos []int
}

// New compiles a pattern.
// Returns nil and lrx.Error with ErrPatternSyntax code on malformed patterns.
func New(pattern string) (*Regex, error) {
	root, e := parsePattern(pattern)
	if e != nil {
		return nil, e
	}

	return &Regex{
		pattern:  pattern,
		root:     root,
		anchored: concat(root, &node{kind: endKind}),
	}, nil
}

// MustCompile is like New but panics on malformed patterns.
// It simplifies safe initialization of global variables holding patterns.
func MustCompile(pattern string) *Regex {
	r, e := New(pattern)
	if e != nil {
		panic(e)
	}
	return r
}

// Match runs the pattern over text.
// Returns lrx.Error with ErrEmptyInput code if text is empty.
func (r *Regex) Match(text string) (Match, error) {
	if text == "" {
		return Match{}, emptyInputError()
	}

	st := matchState{text: text}
	res := r.anchored.match(&st, ints.NewSet(0))

	full := !res.IsEmpty()
	return Match{
		Full:    full,
		Partial: st.partial && !full,
		Pos:     res.ToSlice(),
	}, nil
}

// String reconstructs pattern text from the compiled tree. The result is
// not necessarily the original text (character classes are expanded), but
// compiling it again yields a pattern with identical match behavior.
func (r *Regex) String() string {
	var b strings.Builder
	r.root.str(&b)
	return b.String()
}
