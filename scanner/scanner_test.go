package scanner

import (
	"strings"
	"testing"

	"github.com/ava12/lrx"
	"github.com/ava12/lrx/internal/test"
	"github.com/ava12/lrx/regex"
)

const (
	numSym = iota + 1
	nameSym
	opSym
	eqSym
	assignSym
	eofSym
	ignoreSym
)

func testTerminals() []Terminal {
	return []Terminal{
		{numSym, regex.MustCompile("\\d+")},
		{nameSym, regex.MustCompile("\\l(\\l|\\d)*")},
		{eqSym, regex.MustCompile("==")},
		{assignSym, regex.MustCompile("=")},
		{opSym, regex.MustCompile("\\+|-")},
		{ignoreSym, regex.MustCompile("#[^\\n]*\\n")},
	}
}

func testScanner(src string) *Scanner {
	return New("src", strings.NewReader(src), testTerminals(), eofSym, ignoreSym)
}

type tokenSample struct {
	symbol int
	text   string
}

func checkTokens(t *testing.T, src string, samples []tokenSample) {
	t.Helper()
	s := testScanner(src)
	for i, sample := range samples {
		tok, e := s.Next()
		if e != nil {
			t.Fatalf("source %q, token #%d: unexpected error: %s", src, i, e.Error())
		}

		if tok.Symbol() != sample.symbol || tok.Text() != sample.text {
			t.Fatalf(
				"source %q, token #%d: expecting %q (%d), got %q (%d)",
				src, i, sample.text, sample.symbol, tok.Text(), tok.Symbol(),
			)
		}
	}

	tok, e := s.Next()
	if e != nil {
		t.Fatalf("source %q: unexpected error: %s", src, e.Error())
	}
	if tok.Symbol() != eofSym {
		t.Fatalf("source %q: expecting EOF, got %q (%d)", src, tok.Text(), tok.Symbol())
	}
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n "}
	for _, src := range sources {
		checkTokens(t, src, nil)
	}
}

func TestTokenStream(t *testing.T) {
	checkTokens(t, "123 foo1+bar - 4", []tokenSample{
		{numSym, "123"},
		{nameSym, "foo1"},
		{opSym, "+"},
		{nameSym, "bar"},
		{opSym, "-"},
		{numSym, "4"},
	})
}

func TestMaximalMunch(t *testing.T) {
	// both "=" and "==" fully match a lone "="; the longer match wins
	// whenever a second "=" follows
	checkTokens(t, "= == ===", []tokenSample{
		{assignSym, "="},
		{eqSym, "=="},
		{eqSym, "=="},
		{assignSym, "="},
	})
}

func TestFirstMatchWins(t *testing.T) {
	terminals := []Terminal{
		{nameSym, regex.MustCompile("\\l+")},
		{numSym, regex.MustCompile("foo")},
	}
	s := New("src", strings.NewReader("foo"), terminals, eofSym, ignoreSym)
	tok, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectInt(t, nameSym, tok.Symbol())
}

func TestIgnoreTokens(t *testing.T) {
	checkTokens(t, "1 #comment\n2", []tokenSample{
		{numSym, "1"},
		{numSym, "2"},
	})
}

func TestUngetAtBoundary(t *testing.T) {
	// the scanner reads one byte past "12", ungets it, and must still
	// deliver "+" intact
	checkTokens(t, "12+3", []tokenSample{
		{numSym, "12"},
		{opSym, "+"},
		{numSym, "3"},
	})
}

func TestMidTokenEof(t *testing.T) {
	// input ends while "==" is still partially matching; the full match
	// over the buffer wins
	checkTokens(t, "=", []tokenSample{
		{assignSym, "="},
	})
}

func TestLocations(t *testing.T) {
	s := testScanner("12+3\n # c\r\n456 x")
	samples := []struct {
		text string
		loc  Location
	}{
		{"12", Location{1, 1, 1, 2}},
		{"+", Location{1, 3, 1, 3}},
		{"3", Location{1, 4, 1, 4}},
		{"456", Location{3, 1, 3, 3}},
		{"x", Location{3, 5, 3, 5}},
	}

	for i, sample := range samples {
		tok, e := s.Next()
		if e != nil {
			t.Fatalf("token #%d: unexpected error: %s", i, e.Error())
		}
		if tok.Text() != sample.text {
			t.Fatalf("token #%d: expecting %q, got %q", i, sample.text, tok.Text())
		}
		if tok.Loc() != sample.loc {
			t.Fatalf("token #%d (%q): expecting location %v, got %v", i, sample.text, sample.loc, tok.Loc())
		}
	}
}

func TestNewlineNormalization(t *testing.T) {
	// \r, \n, and \r\n all advance the line counter once
	for _, nl := range []string{"\n", "\r", "\r\n"} {
		s := testScanner("a" + nl + "b")
		tok, e := s.Next()
		test.Assert(t, e == nil, "unexpected error: %v", e)
		test.ExpectStr(t, "a", tok.Text())

		tok, e = s.Next()
		test.Assert(t, e == nil, "unexpected error: %v", e)
		test.ExpectStr(t, "b", tok.Text())
		test.ExpectInt(t, 2, tok.Loc().LineStart)
		test.ExpectInt(t, 1, tok.Loc().CharStart)
	}
}

func TestBadToken(t *testing.T) {
	s := testScanner("12 $abc")
	tok, e := s.Next()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectStr(t, "12", tok.Text())

	_, e = s.Next()
	test.ExpectErrorCode(t, ErrBadToken, e)
	ee := e.(*lrx.Error)
	test.ExpectInt(t, 1, ee.Line)
	test.ExpectInt(t, 4, ee.Col)
	test.Assert(t, strings.Contains(ee.Message, "$"), "expecting buffer text in message, got %q", ee.Message)
}

func TestBadTokenAtEof(t *testing.T) {
	// "==" matched nothing fully when input ended
	terminals := []Terminal{{eqSym, regex.MustCompile("==")}}
	s := New("src", strings.NewReader("="), terminals, eofSym, ignoreSym)
	_, e := s.Next()
	test.ExpectErrorCode(t, ErrBadToken, e)
}

func TestSpan(t *testing.T) {
	a := Location{1, 2, 1, 5}
	b := Location{3, 1, 3, 4}
	test.Expect(t, Span(a, b) == Location{1, 2, 3, 4}, Location{1, 2, 3, 4}, Span(a, b))
}
