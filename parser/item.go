package parser

import (
	"github.com/ava12/lrx/scanner"
)

// Item is a parse stack entry: either a shifted token or a nonterminal
// produced by a reduction. Every item records the state the parser entered
// when pushing it and the source span it covers.
type Item struct {
	state  int
	symbol int
	loc    scanner.Location
	token  *scanner.Token // nil for nonterminal items
	value  any
}

func (i *Item) State() int {
	return i.state
}

func (i *Item) Symbol() int {
	return i.symbol
}

func (i *Item) Loc() scanner.Location {
	return i.loc
}

// IsToken tells whether the item was shifted from the input rather than
// reduced.
func (i *Item) IsToken() bool {
	return i.token != nil
}

// Text returns the token text for token items and an empty string for
// nonterminal items.
func (i *Item) Text() string {
	if i.token == nil {
		return ""
	}
	return i.token.Text()
}

// Token returns the shifted token, or nil for nonterminal items.
func (i *Item) Token() *scanner.Token {
	return i.token
}

// Value returns the semantic value for nonterminal items and nil for token
// items.
func (i *Item) Value() any {
	return i.value
}
