// Package grammar defines the parse table bundle driving the parser.
// Bundles are produced by an external table generator; this package only
// gives them a shape and checks that a bundle is internally consistent.
package grammar

// Cell actions:
const (
	Error byte = iota
	Shift
	Reduce
	Goto
)

// ParseAction is one parse table cell: what to do on a symbol, and the
// target state (Shift, Goto) or rule id (Reduce).
type ParseAction struct {
	Action byte
	State  uint16
}

// Reduction describes one rule: how many items its right-hand side pops and
// which nonterminal it reduces to.
type Reduction struct {
	Pops    int
	Nonterm int
}

// TerminalDef holds a terminal pattern as text so that the pattern can be
// compiled when a parser is created for the bundle.
type TerminalDef struct {
	Id int
	Re string
}

// Grammar is a complete parse table bundle.
//
// Symbol ids run from 0 to NumSymbols-1. Symbol 0 is the start nonterminal
// and has no table column; the column for symbol n is n-1. The top three
// ids are reserved: NumSymbols-3 is the ERROR recovery symbol, NumSymbols-2
// is EOF, NumSymbols-1 is IGNORE.
type Grammar struct {
	// ParseTable is a dense NumRows x NumCols matrix in row-major order.
	ParseTable []ParseAction
	NumRows    int
	NumCols    int

	Reductions  []Reduction
	SymbolNames []string
	Terminals   []TerminalDef
	NumSymbols  int
}

func (g *Grammar) ErrorSymbol() int {
	return g.NumSymbols - 3
}

func (g *Grammar) EofSymbol() int {
	return g.NumSymbols - 2
}

func (g *Grammar) IgnoreSymbol() int {
	return g.NumSymbols - 1
}

// Action returns the table cell for a state and a symbol.
func (g *Grammar) Action(state, symbol int) ParseAction {
	return g.ParseTable[state*g.NumCols+symbol-1]
}

// SymbolName returns the display name for a symbol id, or a placeholder if
// the bundle carries no name for it.
func (g *Grammar) SymbolName(symbol int) string {
	if symbol >= 0 && symbol < len(g.SymbolNames) {
		return g.SymbolNames[symbol]
	}
	return "?"
}

// Validate checks bundle shape: table size, cell targets, reduction and
// terminal ids. Returns nil on a consistent bundle.
func (g *Grammar) Validate() error {
	if g.NumSymbols < 4 {
		return tooFewSymbolsError(g.NumSymbols)
	}
	if g.NumCols != g.NumSymbols-1 {
		return wrongColumnCountError(g.NumCols, g.NumSymbols)
	}
	if len(g.ParseTable) != g.NumRows*g.NumCols {
		return wrongTableSizeError(len(g.ParseTable), g.NumRows*g.NumCols)
	}
	if len(g.SymbolNames) != g.NumSymbols {
		return wrongNameCountError(len(g.SymbolNames), g.NumSymbols)
	}

	for i, cell := range g.ParseTable {
		switch cell.Action {
		case Shift, Goto:
			if int(cell.State) >= g.NumRows {
				return wrongCellError(i/g.NumCols, i%g.NumCols+1, int(cell.State))
			}
		case Reduce:
			if int(cell.State) >= len(g.Reductions) {
				return wrongCellError(i/g.NumCols, i%g.NumCols+1, int(cell.State))
			}
		}
	}

	for i, r := range g.Reductions {
		if r.Pops < 0 || r.Nonterm < 0 || r.Nonterm >= g.NumSymbols {
			return wrongReductionError(i, r.Pops, r.Nonterm)
		}
	}

	for i, term := range g.Terminals {
		if term.Id <= 0 || term.Id >= g.NumSymbols {
			return wrongTerminalError(i, term.Id)
		}
	}

	return nil
}
