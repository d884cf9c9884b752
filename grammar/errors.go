package grammar

import (
	"github.com/ava12/lrx"
)

// Error codes used by grammar:
const (
	TooFewSymbolsError = iota + lrx.GrammarErrors
	WrongColumnCountError
	WrongTableSizeError
	WrongNameCountError
	WrongCellError
	WrongReductionError
	WrongTerminalError
)

func tooFewSymbolsError(numSymbols int) *lrx.Error {
	return lrx.FormatError(TooFewSymbolsError, "bundle defines %d symbols, at least 4 required", numSymbols)
}

func wrongColumnCountError(numCols, numSymbols int) *lrx.Error {
	return lrx.FormatError(WrongColumnCountError, "table has %d columns for %d symbols", numCols, numSymbols)
}

func wrongTableSizeError(got, expected int) *lrx.Error {
	return lrx.FormatError(WrongTableSizeError, "table has %d cells, expecting %d", got, expected)
}

func wrongNameCountError(got, expected int) *lrx.Error {
	return lrx.FormatError(WrongNameCountError, "bundle has %d symbol names for %d symbols", got, expected)
}

func wrongCellError(state, symbol, target int) *lrx.Error {
	return lrx.FormatError(WrongCellError, "cell [%d, %d] points outside the bundle: %d", state, symbol, target)
}

func wrongReductionError(rule, pops, nonterm int) *lrx.Error {
	return lrx.FormatError(WrongReductionError, "reduction %d is malformed: pops %d to symbol %d", rule, pops, nonterm)
}

func wrongTerminalError(index, id int) *lrx.Error {
	return lrx.FormatError(WrongTerminalError, "terminal #%d has invalid symbol id %d", index, id)
}
