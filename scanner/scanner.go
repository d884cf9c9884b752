// Package scanner defines the maximal-munch lexical analyzer.
//
// The scanner pulls bytes from an io.ByteScanner one at a time, matches the
// accumulated buffer against an ordered terminal list, and emits the longest
// token some terminal fully matches. Ties at the winning length go to the
// terminal declared first. Terminals whose symbol is the ignore symbol are
// swallowed, which is how grammars express whitespace and comments.
package scanner

import (
	"io"

	"github.com/ava12/lrx/regex"
)

// Terminal is a lexical category: a symbol id plus the pattern matching it.
// Terminal order is significant, earlier entries win length ties.
type Terminal struct {
	Id int
	Re *regex.Regex
}

// Scanner reads one token per Next call. It is single-use and owns its
// input stream for the duration of the parse.
type Scanner struct {
	name         string
	input        io.ByteScanner
	terminals    []Terminal
	eofSymbol    int
	ignoreSymbol int

	lineNum, charNum int
	lastLineLength   int
	// position of the byte most recently returned by get
	curLine, curChar int
	pending          []byte
}

// New creates a Scanner reading from input. name is used in token locations
// and error messages. The terminal slice is not copied; callers must not
// modify it afterwards.
func New(name string, input io.ByteScanner, terminals []Terminal, eofSymbol, ignoreSymbol int) *Scanner {
	return &Scanner{
		name:         name,
		input:        input,
		terminals:    terminals,
		eofSymbol:    eofSymbol,
		ignoreSymbol: ignoreSymbol,
		lineNum:      1,
		charNum:      1,
		pending:      make([]byte, 0, 2),
	}
}

// get returns the next input byte with \r and \r\n normalized to \n,
// keeping line and column counters current.
func (s *Scanner) get() (byte, error) {
	var c byte
	if len(s.pending) > 0 {
		c = s.pending[len(s.pending)-1]
		s.pending = s.pending[:len(s.pending)-1]
	} else {
		b, e := s.input.ReadByte()
		if e != nil {
			return 0, e
		}

		c = b
		if c == '\r' {
			b, e = s.input.ReadByte()
			if e == nil && b != '\n' {
				s.pending = append(s.pending, b)
			}
			c = '\n'
		}
	}

	s.curLine = s.lineNum
	s.curChar = s.charNum
	if c == '\n' {
		s.lineNum++
		s.lastLineLength = s.charNum
		s.charNum = 1
	} else {
		s.charNum++
	}
	return c, nil
}

// unget pushes the last byte returned by get back, rolling the position
// counters back with it. Only one unget may be outstanding.
func (s *Scanner) unget(c byte) {
	s.pending = append(s.pending, c)
	if c == '\n' {
		s.lineNum--
		s.charNum = s.lastLineLength
	} else {
		s.charNum--
	}
}

// Next fetches the next significant token.
// Returns a token with the EOF symbol and empty text at end of input.
// Returns nil token and lrx.Error on a lexical error.
func (s *Scanner) Next() (*Token, error) {
	for {
		t, e := s.next()
		if e != nil || t.symbol != s.ignoreSymbol {
			return t, e
		}
	}
}

func (s *Scanner) firstFullMatch(text string, loc Location) *Token {
	for _, term := range s.terminals {
		m, e := term.Re.Match(text)
		if e == nil && m.Full {
			return NewToken(term.Id, text, loc, s.name)
		}
	}
	return nil
}

func (s *Scanner) next() (*Token, error) {
	startLine, startChar := s.lineNum, s.charNum
	endLine, endChar := startLine, startChar
	text := make([]byte, 0, 16)
	foundMatch := false

	for {
		c, e := s.get()
		if e != nil {
			if e != io.EOF {
				return nil, readError(s.name, e, s.lineNum, s.charNum)
			}

			if len(text) == 0 {
				loc := Location{s.lineNum, s.charNum, s.lineNum, s.charNum}
				return NewToken(s.eofSymbol, "", loc, s.name), nil
			}

			// input ended mid-token: take the buffer if some terminal
			// fully covers it
			if foundMatch {
				tok := s.firstFullMatch(string(text), Location{startLine, startChar, endLine, endChar})
				if tok != nil {
					return tok, nil
				}
			}
			return nil, badTokenError(s.name, string(text), startLine, startChar)
		}

		if len(text) == 0 && (c == ' ' || c == '\t' || c == '\n') {
			// leading whitespace is not part of any token; whitespace
			// elsewhere is, strings may contain it
			startLine, startChar = s.lineNum, s.charNum
			endLine, endChar = startLine, startChar
			continue
		}

		prevEndLine, prevEndChar := endLine, endChar
		text = append(text, c)
		endLine, endChar = s.curLine, s.curChar

		foundNew := false
		foundPartial := false
		buf := string(text)
		for _, term := range s.terminals {
			m, e := term.Re.Match(buf)
			if e != nil {
				return nil, e
			}

			if m.Full {
				foundNew = true
			} else if m.Partial {
				foundPartial = true
			}
		}

		switch {
		case !foundMatch && foundNew:
			foundMatch = true

		case foundMatch && !foundNew && !foundPartial:
			// the maximal munch is one byte back: give the byte back and
			// take the first terminal covering the shortened buffer
			s.unget(c)
			text = text[:len(text)-1]
			tok := s.firstFullMatch(string(text), Location{startLine, startChar, prevEndLine, prevEndChar})
			if tok != nil {
				return tok, nil
			}
			return nil, badTokenError(s.name, string(text), startLine, startChar)

		case !foundMatch && !foundNew && !foundPartial:
			// the buffer is dead and the patterns are anchored, no amount
			// of further input revives it
			return nil, badTokenError(s.name, string(text), startLine, startChar)
		}
	}
}
