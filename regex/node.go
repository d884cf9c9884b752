package regex

import (
	"strconv"
	"strings"

	"github.com/ava12/lrx/internal/ints"
)

type nodeKind int

const (
	literalKind nodeKind = iota
	dotKind
	classKind
	concatKind
	alterKind
	repeatKind
	groupKind
	lookAheadKind
	endKind
)

// Unbounded is the repetition limit meaning "no upper bound".
const Unbounded = -1

// node is a pattern tree node. Which fields are meaningful depends on kind;
// children are owned exclusively by their parent.
type node struct {
	kind     nodeKind
	sym      byte   // literalKind
	syms     []byte // classKind, expanded
	invert   bool   // classKind
	min, max int    // repeatKind, max may be Unbounded
	negative bool   // lookAheadKind
	left     *node
	right    *node // concatKind, alterKind
}

func literal(sym byte) *node {
	return &node{kind: literalKind, sym: sym}
}

func charClass() *node {
	return &node{kind: classKind, syms: make([]byte, 0)}
}

func (n *node) pushRange(lo, hi byte) {
	for c := lo; c <= hi; c++ {
		n.syms = append(n.syms, c)
	}
}

func concat(left, right *node) *node {
	return &node{kind: concatKind, left: left, right: right}
}

// matchState carries per-call matcher state: the input and the partial flag
// set by leaves that run into the end of input.
type matchState struct {
	text    string
	partial bool
}

// match consumes a set of live positions and returns the set of positions
// surviving this node. The input set is never modified.
func (n *node) match(st *matchState, pos *ints.Set) *ints.Set {
	switch n.kind {
	case literalKind, dotKind, classKind:
		return n.matchLeaf(st, pos)

	case concatKind:
		out := n.left.match(st, pos)
		if out.IsEmpty() {
			return out
		}
		return n.right.match(st, out)

	case alterKind:
		return n.left.match(st, pos).Union(n.right.match(st, pos))

	case repeatKind:
		return n.matchRepeat(st, pos)

	case groupKind:
		return n.left.match(st, pos)

	case lookAheadKind:
		out := ints.NewSet()
		for _, p := range pos.ToSlice() {
			sub := matchState{text: st.text}
			res := n.left.match(&sub, ints.NewSet(p))
			if res.IsEmpty() == n.negative {
				out.Add(p)
			}
		}
		return out

	default: // endKind
		out := ints.NewSet()
		if pos.Contains(len(st.text)) {
			out.Add(len(st.text))
		}
		return out
	}
}

func (n *node) matchLeaf(st *matchState, pos *ints.Set) *ints.Set {
	out := ints.NewSet()
	for _, p := range pos.ToSlice() {
		if p >= len(st.text) {
			st.partial = true
			continue
		}

		c := st.text[p]
		ok := false
		switch n.kind {
		case literalKind:
			ok = (c == n.sym)
		case dotKind:
			ok = true
		case classKind:
			found := false
			for _, s := range n.syms {
				if c == s {
					found = true
					break
				}
			}
			ok = (found != n.invert)
		}

		if ok {
			out.Add(p + 1)
		}
	}
	return out
}

// matchRepeat runs the inner pattern over the whole live set once per
// repetition, emitting every set reached at a count within bounds.
// A position held in place by a zero-width inner match stays in the set
// forever, so the live set reaches a fixed point; detecting it bounds the
// loop for patterns like (a*)*.
func (n *node) matchRepeat(st *matchState, pos *ints.Set) *ints.Set {
	out := ints.NewSet()
	if n.min == 0 {
		out.Union(pos)
	}

	cur := pos
	count := 0
	for !cur.IsEmpty() && (n.max == Unbounded || count < n.max) {
		next := n.left.match(st, cur)
		count++
		if count >= n.min {
			out.Union(next)
		}

		if next.IsEqual(cur) && count >= n.min {
			break
		}
		cur = next
	}
	return out
}

const metaChars = ".^$*?+|()[{"

func writeSym(b *strings.Builder, sym byte, meta string) {
	switch sym {
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\\':
		b.WriteString(`\\`)
	default:
		if strings.IndexByte(meta, sym) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(sym)
	}
}

// str reconstructs pattern text for this subtree. Expanded character
// classes are printed member by member; the result parses back to a tree
// with identical match behavior, not necessarily identical text.
func (n *node) str(b *strings.Builder) {
	switch n.kind {
	case literalKind:
		writeSym(b, n.sym, metaChars)

	case dotKind:
		b.WriteByte('.')

	case classKind:
		b.WriteByte('[')
		if n.invert {
			b.WriteByte('^')
		}
		for _, sym := range n.syms {
			writeSym(b, sym, "]-^")
		}
		b.WriteByte(']')

	case concatKind:
		n.left.str(b)
		n.right.str(b)

	case alterKind:
		n.left.str(b)
		b.WriteByte('|')
		n.right.str(b)

	case repeatKind:
		n.left.str(b)
		switch {
		case n.min == 0 && n.max == 1:
			b.WriteByte('?')
		case n.min == 0 && n.max == Unbounded:
			b.WriteByte('*')
		case n.min == 1 && n.max == Unbounded:
			b.WriteByte('+')
		case n.min == n.max:
			b.WriteByte('{')
			b.WriteString(strconv.Itoa(n.min))
			b.WriteByte('}')
		default:
			b.WriteByte('{')
			b.WriteString(strconv.Itoa(n.min))
			b.WriteByte(',')
			if n.max != Unbounded {
				b.WriteString(strconv.Itoa(n.max))
			}
			b.WriteByte('}')
		}

	case groupKind:
		b.WriteByte('(')
		n.left.str(b)
		b.WriteByte(')')

	case lookAheadKind:
		if n.negative {
			b.WriteString("(?!")
		} else {
			b.WriteString("(?=")
		}
		n.left.str(b)
		b.WriteByte(')')

	case endKind:
		b.WriteByte('$')
	}
}
