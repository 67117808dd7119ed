package matcher

import "github.com/coregx/combex/internal/scan"

// prefilter summarizes how a tree can start: the bytes that can begin a
// non-empty match and whether the empty string may match. Every match starts
// at offset 0, so an input whose first byte is outside first (or an empty
// input when the tree is not nullable) is rejected without evaluation.
//
// The summary over-approximates: Lazy and Bind parts that cannot be seen
// through at construction count as "any byte, maybe empty".
type prefilter struct {
	first    scan.Table
	nullable bool
}

// anyStart is the summary that rejects nothing.
func anyStart() prefilter {
	var p prefilter
	for i := range p.first {
		p.first[i] = true
	}
	p.nullable = true
	return p
}

// analyze computes the prefilter of n. Lazy factories are never called, so
// recursive grammars under construction are safe to analyze.
func analyze(n *Node) prefilter {
	var p prefilter
	switch n.kind {
	case KindPredicate:
		p.first = *n.table
	case KindLiteral:
		if n.lit == "" {
			p.nullable = true
		} else {
			p.first[n.lit[0]] = true
		}
	case KindStrings:
		for _, s := range n.lits {
			if s == "" {
				p.nullable = true
			} else {
				p.first[s[0]] = true
			}
		}
	case KindSequence:
		p = analyze(n.left)
		if p.nullable {
			right := analyze(n.right)
			p.union(right)
			p.nullable = right.nullable
		}
	case KindChoice:
		p = analyze(n.left)
		right := analyze(n.right)
		p.union(right)
		p.nullable = p.nullable || right.nullable
	case KindRepeat:
		if n.max == 0 {
			p.nullable = true
			break
		}
		p = analyze(n.left)
		if n.min == 0 {
			p.nullable = true
		}
	case KindBind:
		p = analyze(n.left)
		if p.nullable {
			p = anyStart()
		}
	default:
		p = anyStart()
	}
	return p
}

func (p *prefilter) union(other prefilter) {
	for i, ok := range other.first {
		p.first[i] = p.first[i] || ok
	}
}

// rejects reports whether text certainly does not match.
func (p *prefilter) rejects(text string) bool {
	if len(text) == 0 {
		return !p.nullable
	}
	return !p.first[text[0]]
}
