package scanner

// Location is a text span in 1-based human-readable coordinates.
// LineEnd and CharEnd address the last byte of the span, not one past it.
type Location struct {
	LineStart, CharStart int
	LineEnd, CharEnd     int
}

// Span returns the location covering both a and b, assuming a starts no
// later than b ends.
func Span(a, b Location) Location {
	return Location{a.LineStart, a.CharStart, b.LineEnd, b.CharEnd}
}

type Token struct {
	symbol     int
	text       string
	loc        Location
	sourceName string
}

func NewToken(symbol int, text string, loc Location, sourceName string) *Token {
	return &Token{symbol, text, loc, sourceName}
}

func (t *Token) Symbol() int {
	return t.symbol
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Loc() Location {
	return t.loc
}

func (t *Token) SourceName() string {
	return t.sourceName
}

func (t *Token) Line() int {
	return t.loc.LineStart
}

func (t *Token) Col() int {
	return t.loc.CharStart
}
