package regex

import (
	"fmt"

	"github.com/ava12/lrx"
)

// Error codes used by regex:
const (
	// ErrPatternSyntax indicates a malformed pattern passed to New.
	// Error message describes the fault; except for an empty pattern it also
	// contains the pattern and the offset where the fault was found.
	ErrPatternSyntax = iota + lrx.PatternErrors
)

const (
	// ErrEmptyInput indicates a Match call on empty input.
	ErrEmptyInput = iota + lrx.MatchErrors
)

func patternError(pattern string, pos int, msg string, params ...any) *lrx.Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return lrx.FormatError(ErrPatternSyntax, "pattern %q char %d: %s", pattern, pos, msg)
}

func emptyPatternError() *lrx.Error {
	return lrx.FormatError(ErrPatternSyntax, "empty pattern is not valid")
}

func emptyInputError() *lrx.Error {
	return lrx.FormatError(ErrEmptyInput, "cannot match empty input")
}
