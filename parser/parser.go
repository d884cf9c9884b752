// Package parser defines the table-driven shift-reduce parser.
//
// A Parser is built once from a grammar.Grammar bundle and a reduction
// callback per rule, and may then run any number of concurrent parses; each
// Parse call owns its scanner and stack. Syntax errors are absorbed where
// the grammar marks recovery points with the ERROR symbol, otherwise they
// abort the parse.
package parser

import (
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava12/lrx/grammar"
	"github.com/ava12/lrx/regex"
	"github.com/ava12/lrx/scanner"
)

// ReductionFunc produces the semantic value for one rule. items holds the
// popped right-hand-side entries in top-first order, i.e. reversed with
// respect to the rule body. The callback for rule 0 produces the final
// parse result. A non-nil error aborts the parse.
type ReductionFunc = func(items []*Item) (any, error)

// Parser is immutable after New and safe for concurrent use.
type Parser struct {
	grammar   *grammar.Grammar
	funcs     []ReductionFunc
	terminals []scanner.Terminal
}

// New validates the bundle and compiles its terminal patterns.
// Returns nil and lrx.Error on a malformed bundle or pattern.
func New(g *grammar.Grammar, funcs []ReductionFunc) (*Parser, error) {
	e := g.Validate()
	if e != nil {
		return nil, e
	}
	if len(funcs) != len(g.Reductions) {
		return nil, badCallbacksError(len(funcs), len(g.Reductions))
	}

	terminals := make([]scanner.Terminal, len(g.Terminals))
	for i, td := range g.Terminals {
		re, e := regex.New(td.Re)
		if e != nil {
			return nil, e
		}
		terminals[i] = scanner.Terminal{Id: td.Id, Re: re}
	}

	return &Parser{g, funcs, terminals}, nil
}

// Parse consumes input to the first accept or fatal error. name is used in
// locations and error messages.
// Returns the value produced by the rule 0 callback and a flag telling
// whether any recovery happened along the way.
func (p *Parser) Parse(name string, input io.ByteScanner) (result any, errored bool, e error) {
	pc := &parseContext{
		parser:  p,
		scanner: scanner.New(name, input, p.terminals, p.grammar.EofSymbol(), p.grammar.IgnoreSymbol()),
		stack:   []*Item{{}},
	}
	result, e = pc.parse()
	return result, pc.errored, e
}

type parseContext struct {
	parser     *Parser
	scanner    *scanner.Scanner
	stack      []*Item
	errored    bool
	recovering bool
}

func (pc *parseContext) top() *Item {
	return pc.stack[len(pc.stack)-1]
}

func (pc *parseContext) push(item *Item) {
	pc.stack = append(pc.stack, item)
}

func (pc *parseContext) parse() (any, error) {
	g := pc.parser.grammar
	tok, e := pc.scanner.Next()
	if e != nil {
		return nil, e
	}

	for {
		act := g.Action(pc.top().state, tok.Symbol())
		switch act.Action {
		case grammar.Shift:
			pc.push(&Item{state: int(act.State), symbol: tok.Symbol(), loc: tok.Loc(), token: tok})
			tok, e = pc.scanner.Next()
			if e != nil {
				return nil, e
			}

		case grammar.Reduce:
			result, accepted, e := pc.reduce(int(act.State), tok)
			if accepted || e != nil {
				return result, e
			}

		default:
			tok, e = pc.recover(tok)
			if e != nil {
				return nil, e
			}
		}
	}
}

// reduce pops one rule's right-hand side, runs its callback, and pushes the
// resulting nonterminal through the Goto cell. Rule 0 accepts instead.
// The lookahead is only used for error reporting.
func (pc *parseContext) reduce(rule int, tok *scanner.Token) (result any, accepted bool, e error) {
	g := pc.parser.grammar
	red := g.Reductions[rule]

	items := make([]*Item, red.Pops)
	for i := 0; i < red.Pops; i++ {
		items[i] = pc.top()
		pc.stack = pc.stack[:len(pc.stack)-1]
	}

	var loc scanner.Location
	if red.Pops > 0 {
		loc = scanner.Span(items[len(items)-1].loc, items[0].loc)
	} else {
		loc = pc.top().loc
	}

	if pc.recovering {
		errSym := g.ErrorSymbol()
		for _, item := range items {
			if item.symbol == errSym {
				pc.recovering = false
				break
			}
		}
	}

	value, e := pc.parser.funcs[rule](items)
	if e != nil {
		return nil, false, reduceError(tok, rule, e)
	}

	if rule == 0 {
		return value, true, nil
	}

	act := g.Action(pc.top().state, red.Nonterm)
	if act.Action != grammar.Goto {
		return nil, false, noGotoError(pc.top().state, red.Nonterm)
	}

	pc.push(&Item{state: int(act.State), symbol: red.Nonterm, loc: loc, value: value})
	return nil, false, nil
}

// recover handles an Error cell. Outside recovery mode it pops the stack to
// the nearest state that shifts the ERROR symbol and relabels the offending
// token as ERROR, keeping its text and location; inside recovery mode it
// discards lookaheads until the table accepts one. Recovery mode ends when
// a reduction consumes the shifted ERROR item.
func (pc *parseContext) recover(tok *scanner.Token) (*scanner.Token, error) {
	g := pc.parser.grammar

	if pc.recovering {
		if tok.Symbol() == g.EofSymbol() {
			return nil, unexpectedEofError(tok, pc.expectedSymbols())
		}
		return pc.scanner.Next()
	}

	pc.errored = true
	pc.recovering = true
	expected := pc.expectedSymbols()

	errSym := g.ErrorSymbol()
	for len(pc.stack) > 0 && g.Action(pc.top().state, errSym).Action != grammar.Shift {
		pc.stack = pc.stack[:len(pc.stack)-1]
	}

	if len(pc.stack) == 0 {
		if tok.Symbol() == g.EofSymbol() {
			return nil, unexpectedEofError(tok, expected)
		}
		return nil, unexpectedTokenError(tok, expected)
	}

	return scanner.NewToken(errSym, tok.Text(), tok.Loc(), tok.SourceName()), nil
}

// expectedSymbols collects the names of symbols the current state shifts,
// deduplicated and sorted for stable error messages.
func (pc *parseContext) expectedSymbols() []string {
	g := pc.parser.grammar
	seen := make(map[string]bool)
	for symbol := 1; symbol <= g.NumCols; symbol++ {
		if g.Action(pc.top().state, symbol).Action == grammar.Shift {
			seen[g.SymbolName(symbol)] = true
		}
	}

	names := maps.Keys(seen)
	slices.Sort(names)
	return names
}
