package matcher

import (
	"strconv"
	"strings"
)

// Then matches n followed by other.
func (n *Node) Then(other *Node) *Node {
	return &Node{kind: KindSequence, left: n, right: other}
}

// ThenChar matches n followed by the byte c.
func (n *Node) ThenChar(c byte) *Node {
	return n.Then(Char(c))
}

// ThenStr matches n followed by the string s.
func (n *Node) ThenStr(s string) *Node {
	return n.Then(Str(s))
}

// Or matches either n or other.
func (n *Node) Or(other *Node) *Node {
	return &Node{kind: KindChoice, left: n, right: other}
}

// OrChar matches either n or the byte c.
func (n *Node) OrChar(c byte) *Node {
	return n.Or(Char(c))
}

// OrStr matches either n or the string s.
func (n *Node) OrStr(s string) *Node {
	return n.Or(Str(s))
}

// Seq chains the nodes left to right. The fold is left-associative.
func Seq(m1, m2 *Node, rest ...*Node) *Node {
	n := m1.Then(m2)
	for _, m := range rest {
		n = n.Then(m)
	}
	return n
}

// OneOf matches any of the nodes. The fold is left-associative.
func OneOf(m1, m2 *Node, rest ...*Node) *Node {
	n := m1.Or(m2)
	for _, m := range rest {
		n = n.Or(m)
	}
	return n
}

// Repeat applies n at least min and at most max times.
// max may be Unbounded. Panics if min < 0 or a bounded max is below min.
//
// Repeating an unbounded repetition collapses into a single repetition when
// the two describe the same language, e.g. (a*)* becomes a* and (a+)+ becomes
// a+. Nested closures then cost one fixpoint instead of one per nesting level.
func (n *Node) Repeat(min, max int) *Node {
	if min < 0 {
		panic("matcher: negative repeat minimum " + strconv.Itoa(min))
	}
	if max != Unbounded && max < min {
		panic("matcher: repeat maximum " + strconv.Itoa(max) +
			" below minimum " + strconv.Itoa(min))
	}

	// (c{a,})^k is c{a*k,}, so the union over k in [min, max] is c{a*min,}
	// unless k = 0 is allowed and a > 1 (then the empty match stands apart).
	if n.kind == KindRepeat && n.max == Unbounded && max != 0 && (min >= 1 || n.min <= 1) {
		return &Node{kind: KindRepeat, left: n.left, min: n.min * min, max: Unbounded}
	}
	return &Node{kind: KindRepeat, left: n, min: min, max: max}
}

// Times applies n exactly times times.
func (n *Node) Times(times int) *Node {
	return n.Repeat(times, times)
}

// ManyMin applies n at least min times.
func (n *Node) ManyMin(min int) *Node {
	return n.Repeat(min, Unbounded)
}

// Many applies n zero or more times.
func (n *Node) Many() *Node {
	return n.Repeat(0, Unbounded)
}

// Many1 applies n one or more times.
func (n *Node) Many1() *Node {
	return n.Repeat(1, Unbounded)
}

// Bind matches n, passes the matched text to mapper and then matches the node
// mapper returns. It lets later input depend on earlier input:
//
//	word := matcher.Not(' ').Many1()
//	echo := word.Bind(func(s string) *matcher.Node {
//		return matcher.Str(" xxx " + s)
//	})
//	echo.Match("abc xxx abc") // true
//
// mapper is called once per distinct end position of n and must be safe for
// concurrent use. A nil result contributes no positions.
func (n *Node) Bind(mapper func(matched string) *Node) *Node {
	return &Node{kind: KindBind, left: n, mapper: mapper}
}

// Class merges single-byte predicates into one predicate accepting any byte
// that one of them accepts. Nodes of other kinds are combined with OneOf.
// Panics if items is empty.
func Class(items ...*Node) *Node {
	if len(items) == 0 {
		panic("matcher: empty class")
	}
	if len(items) == 1 {
		return items[0]
	}

	var table [256]bool
	var desc strings.Builder
	desc.WriteByte('[')
	for _, it := range items {
		if it.kind != KindPredicate {
			return OneOf(items[0], items[1], items[2:]...)
		}
		for c := 0; c < 256; c++ {
			table[c] = table[c] || it.table[c]
		}
		d := it.desc
		if len(d) > 2 && d[0] == '[' && d[1] != '^' {
			d = d[1 : len(d)-1]
		}
		desc.WriteString(d)
	}
	desc.WriteByte(']')
	return newPredicate(desc.String(), func(c byte) bool { return table[c] })
}
