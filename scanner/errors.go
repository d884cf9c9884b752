package scanner

import (
	"fmt"

	"github.com/ava12/lrx"
)

// Error codes used by scanner:
const (
	// ErrBadToken indicates that no terminal can match at current position.
	// Error message contains the dead buffer text.
	ErrBadToken = iota + lrx.LexicalErrors

	// ErrRead indicates that the underlying stream failed with something
	// other than end of input.
	ErrRead
)

func badTokenError(name, text string, line, col int) *lrx.Error {
	return lrx.NewError(ErrBadToken, fmt.Sprintf("bad token %q", text), name, line, col)
}

func readError(name string, cause error, line, col int) *lrx.Error {
	return lrx.NewError(ErrRead, fmt.Sprintf("read failed: %s", cause.Error()), name, line, col)
}
