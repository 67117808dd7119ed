package matcher

import (
	"strings"
	"sync"

	"github.com/coregx/combex/internal/conv"
	"github.com/coregx/combex/internal/sparse"
)

// evaluator holds per-call mutable state for evaluating a tree over one input.
// Trees themselves carry no mutable state; every concurrent match gets its own
// evaluator from evaluatorPool.
//
// Every parse method appends the positions a node reaches to dst and returns
// the extended slice. The appended segment is duplicate-free, but callers that
// combine several segments must deduplicate across them.
type evaluator struct {
	text   string
	data   []byte // text as bytes, converted on first use
	config Config
	depth  int

	capacity uint32
	free     []*sparse.SparseSet
}

var evaluatorPool = sync.Pool{
	New: func() any {
		return &evaluator{}
	},
}

func getEvaluator(text string, data []byte, config Config) *evaluator {
	e := evaluatorPool.Get().(*evaluator)
	e.text = text
	e.data = data
	e.config = config
	e.depth = 0
	e.capacity = conv.OffsetCapacity(len(text))
	return e
}

func putEvaluator(e *evaluator) {
	e.text = ""
	e.data = nil
	evaluatorPool.Put(e)
}

// bytes returns the input as a byte slice for the scanners and the automaton.
func (e *evaluator) bytes() []byte {
	if e.data == nil && len(e.text) > 0 {
		e.data = []byte(e.text)
	}
	return e.data
}

// acquire returns an empty set able to hold every offset of the input.
// Sets are recycled with release; nested repetitions hold several at once.
func (e *evaluator) acquire() *sparse.SparseSet {
	if n := len(e.free); n > 0 {
		s := e.free[n-1]
		e.free = e.free[:n-1]
		if uint32(s.Capacity()) < e.capacity { //nolint:gosec // G115: capacity fits uint32
			s.Resize(e.capacity)
		}
		s.Clear()
		return s
	}
	return sparse.NewSparseSet(e.capacity)
}

func (e *evaluator) release(s *sparse.SparseSet) {
	e.free = append(e.free, s)
}

// dedup removes duplicates from dst[start:] in place, keeping first occurrences.
func (e *evaluator) dedup(dst []int, start int) []int {
	if len(dst)-start < 2 {
		return dst
	}
	seen := e.acquire()
	w := start
	for _, off := range dst[start:] {
		if seen.Insert(conv.IntToUint32(off)) {
			dst[w] = off
			w++
		}
	}
	e.release(seen)
	return dst[:w]
}

// parse appends the offsets n reaches from at.
func (e *evaluator) parse(n *Node, at int, dst []int) []int {
	if e.config.MaxDepth > 0 && e.depth >= e.config.MaxDepth {
		return dst
	}
	e.depth++

	switch n.kind {
	case KindPredicate:
		if at < len(e.text) && n.table[e.text[at]] {
			dst = append(dst, at+1)
		}
	case KindLiteral:
		if strings.HasPrefix(e.text[at:], n.lit) {
			dst = append(dst, at+len(n.lit))
		}
	case KindStrings:
		dst = e.parseStrings(n, at, dst)
	case KindSequence:
		dst = e.parseSequence(n, at, dst)
	case KindChoice:
		start := len(dst)
		dst = e.parse(n.left, at, dst)
		dst = e.parse(n.right, at, dst)
		dst = e.dedup(dst, start)
	case KindRepeat:
		dst = e.parseRepeat(n, at, dst)
	case KindLazy:
		if child := n.factory(); child != nil {
			dst = e.parse(child, at, dst)
		}
	case KindBind:
		dst = e.parseBind(n, at, dst)
	}

	e.depth--
	return dst
}

func (e *evaluator) parseStrings(n *Node, at int, dst []int) []int {
	if n.auto != nil {
		window := e.bytes()[at:]
		if len(window) > n.maxLen {
			window = window[:n.maxLen]
		}
		if !n.auto.IsMatch(window) {
			return dst
		}
	}
	rest := e.text[at:]
	// Distinct strings that are both prefixes of rest differ in length,
	// so the appended ends are already distinct.
	for _, s := range n.lits {
		if strings.HasPrefix(rest, s) {
			dst = append(dst, at+len(s))
		}
	}
	return dst
}

func (e *evaluator) parseSequence(n *Node, at int, dst []int) []int {
	mids := e.parse(n.left, at, nil)
	switch len(mids) {
	case 0:
		return dst
	case 1:
		return e.parse(n.right, mids[0], dst)
	}
	start := len(dst)
	for _, mid := range mids {
		dst = e.parse(n.right, mid, dst)
	}
	return e.dedup(dst, start)
}

func (e *evaluator) parseBind(n *Node, at int, dst []int) []int {
	ends := e.parse(n.left, at, nil)
	start := len(dst)
	for _, end := range ends {
		next := n.mapper(e.text[at:end])
		if next == nil {
			continue
		}
		dst = e.parse(next, end, dst)
	}
	return e.dedup(dst, start)
}

// step applies child to every offset in from and appends the union to dst.
func (e *evaluator) step(child *Node, from, dst []int) []int {
	start := len(dst)
	for _, at := range from {
		dst = e.parse(child, at, dst)
	}
	return e.dedup(dst, start)
}
