package matcher

import (
	"strconv"
	"strings"
	"sync"

	"github.com/coregx/ahocorasick"
)

// Kind identifies the variant of a Node and determines which fields are valid.
type Kind uint8

const (
	// KindPredicate matches one byte accepted by a byte table.
	KindPredicate Kind = iota

	// KindLiteral matches a fixed string as a single step.
	KindLiteral

	// KindStrings matches any one of a set of fixed strings.
	KindStrings

	// KindSequence runs two children left to right.
	KindSequence

	// KindChoice runs two children on the same position and unions the results.
	KindChoice

	// KindRepeat applies its child between min and max times.
	KindRepeat

	// KindLazy resolves its child through a factory on every traversal.
	KindLazy

	// KindBind maps the text matched by its child to the node matched next.
	KindBind
)

// String returns a human-readable representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindPredicate:
		return "Predicate"
	case KindLiteral:
		return "Literal"
	case KindStrings:
		return "Strings"
	case KindSequence:
		return "Sequence"
	case KindChoice:
		return "Choice"
	case KindRepeat:
		return "Repeat"
	case KindLazy:
		return "Lazy"
	case KindBind:
		return "Bind"
	default:
		return "Unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Unbounded is the max argument of Repeat meaning "no upper limit".
const Unbounded = -1

// StringsAutomatonThreshold is the number of strings at which Strings builds an
// Aho-Corasick automaton to reject positions where no string can start.
const StringsAutomatonThreshold = 8

// Node is one node of a combinator tree.
//
// A Node is immutable once constructed and may be shared by any number of
// trees and used from multiple goroutines concurrently. Which fields are
// meaningful depends on the Kind.
type Node struct {
	kind Kind

	// KindPredicate
	table  *[256]bool
	single int // the only accepted byte, or -1
	desc   string

	// KindLiteral
	lit string

	// KindStrings
	lits   []string
	maxLen int
	auto   *ahocorasick.Automaton

	// KindSequence, KindChoice: left and right.
	// KindRepeat, KindBind: left is the child.
	left, right *Node

	// KindRepeat
	min, max int

	// KindLazy
	factory func() *Node
	memo    bool

	// KindBind
	mapper func(string) *Node
}

// Kind returns the variant of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Bounds returns the min and max counts of a KindRepeat node.
// max is Unbounded when there is no upper limit.
func (n *Node) Bounds() (min, max int) {
	return n.min, n.max
}

// Children returns the statically known children of the node.
// Lazy and Bind nodes only expose what exists before matching.
func (n *Node) Children() []*Node {
	switch n.kind {
	case KindSequence, KindChoice:
		return []*Node{n.left, n.right}
	case KindRepeat, KindBind:
		return []*Node{n.left}
	default:
		return nil
	}
}

// Accepts reports whether a KindPredicate node accepts byte c.
// It returns false for every other kind.
func (n *Node) Accepts(c byte) bool {
	return n.kind == KindPredicate && n.table[c]
}

// newPredicate evaluates fn once per byte value; fn must be pure.
func newPredicate(desc string, fn func(byte) bool) *Node {
	var table [256]bool
	single, count := -1, 0
	for c := 0; c < 256; c++ {
		if fn(byte(c)) {
			table[c] = true
			single = c
			count++
		}
	}
	if count != 1 {
		single = -1
	}
	return &Node{kind: KindPredicate, table: &table, single: single, desc: desc}
}

// Any matches any single byte.
func Any() *Node {
	return newPredicate(".", func(byte) bool { return true })
}

// Char matches the single byte c.
func Char(c byte) *Node {
	return newPredicate(quoteByte(c), func(b byte) bool { return b == c })
}

// Chars matches one byte from cs.
func Chars(cs ...byte) *Node {
	var set [256]bool
	for _, c := range cs {
		set[c] = true
	}
	var b strings.Builder
	b.WriteByte('[')
	for _, c := range cs {
		b.WriteString(quoteClassByte(c))
	}
	b.WriteByte(']')
	return newPredicate(b.String(), func(c byte) bool { return set[c] })
}

// Not matches any byte except c.
func Not(c byte) *Node {
	return newPredicate("[^"+quoteClassByte(c)+"]", func(b byte) bool { return b != c })
}

// Range matches one byte between c1 and c2 inclusive.
// The bounds may be given in either order.
func Range(c1, c2 byte) *Node {
	lo, hi := int(c1), int(c2)
	desc := "[" + quoteClassByte(c1) + "-" + quoteClassByte(c2) + "]"
	return newPredicate(desc, func(b byte) bool {
		c := int(b)
		return (c-lo)*(c-hi) <= 0
	})
}

// Pred matches one byte accepted by fn.
// fn is evaluated for all 256 byte values at construction and must be pure.
func Pred(fn func(byte) bool) *Node {
	return newPredicate("<pred>", fn)
}

// Str matches the string s as one step.
func Str(s string) *Node {
	return &Node{kind: KindLiteral, lit: s}
}

// Strings matches any one of the given strings.
// Duplicates are ignored. Large sets are pre-filtered with an Aho-Corasick
// automaton so positions where no string occurs are rejected in one pass.
func Strings(s1, s2 string, rest ...string) *Node {
	all := append([]string{s1, s2}, rest...)
	lits := make([]string, 0, len(all))
	seen := make(map[string]struct{}, len(all))
	maxLen, hasEmpty := 0, false
	for _, s := range all {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		lits = append(lits, s)
		maxLen = max(maxLen, len(s))
		hasEmpty = hasEmpty || s == ""
	}

	n := &Node{kind: KindStrings, lits: lits, maxLen: maxLen}
	// An empty string matches everywhere, which leaves nothing to pre-filter.
	if len(lits) >= StringsAutomatonThreshold && !hasEmpty {
		builder := ahocorasick.NewBuilder()
		for _, s := range lits {
			builder.AddPattern([]byte(s))
		}
		if auto, err := builder.Build(); err == nil {
			n.auto = auto
		}
	}
	return n
}

// Lazy defers construction of a node to match time.
//
// factory is called on every traversal and never cached, which lets a node
// refer to itself or to a sibling that does not exist yet:
//
//	var expr *matcher.Node
//	term := matcher.OneOf(
//		matcher.Str("()"),
//		matcher.Char('(').Then(matcher.Lazy(func() *matcher.Node { return expr })).ThenChar(')'),
//	)
//	expr = term.Many1()
//
// A factory returning nil contributes no positions.
func Lazy(factory func() *Node) *Node {
	return &Node{kind: KindLazy, factory: factory}
}

// Memo is Lazy with the factory result cached after the first call.
// The factory must always return an equivalent node.
func Memo(factory func() *Node) *Node {
	return &Node{kind: KindLazy, factory: sync.OnceValue(factory), memo: true}
}

// String returns a regex-like description of the node.
// Lazy nodes are not expanded, so recursive grammars print finitely.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.kind {
	case KindPredicate:
		b.WriteString(n.desc)
	case KindLiteral:
		b.WriteString(strconv.Quote(n.lit))
	case KindStrings:
		b.WriteString("(?:")
		for i, s := range n.lits {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(strconv.Quote(s))
		}
		b.WriteByte(')')
	case KindSequence:
		n.left.write(b)
		n.right.write(b)
	case KindChoice:
		b.WriteString("(?:")
		n.left.write(b)
		b.WriteByte('|')
		n.right.write(b)
		b.WriteByte(')')
	case KindRepeat:
		b.WriteString("(?:")
		n.left.write(b)
		b.WriteByte(')')
		switch {
		case n.min == 0 && n.max == Unbounded:
			b.WriteByte('*')
		case n.min == 1 && n.max == Unbounded:
			b.WriteByte('+')
		case n.max == Unbounded:
			b.WriteString("{" + strconv.Itoa(n.min) + ",}")
		case n.min == n.max:
			b.WriteString("{" + strconv.Itoa(n.min) + "}")
		default:
			b.WriteString("{" + strconv.Itoa(n.min) + "," + strconv.Itoa(n.max) + "}")
		}
	case KindLazy:
		if n.memo {
			b.WriteString("<memo>")
		} else {
			b.WriteString("<lazy>")
		}
	case KindBind:
		b.WriteString("<bind ")
		n.left.write(b)
		b.WriteByte('>')
	}
}

func quoteByte(c byte) string {
	if strings.IndexByte(`\.*+?|()[]{}^$`, c) >= 0 {
		return `\` + string(c)
	}
	return quoteClassByte(c)
}

func quoteClassByte(c byte) string {
	switch {
	case c == '\\' || c == ']' || c == '-' || c == '^' || c == '[':
		return `\` + string(c)
	case c < 0x20 || c >= 0x7F:
		return `\x` + strconv.FormatUint(uint64(c)|0x100, 16)[1:]
	default:
		return string(c)
	}
}
