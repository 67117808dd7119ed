package matcher

import (
	"github.com/coregx/combex/internal/conv"
	"github.com/coregx/combex/internal/scan"
)

// parseRepeat expands a repetition as a breadth-first fixpoint over offsets.
//
// The mandatory min applications run first and produce the frontier. Each
// following round applies the child to every offset queued by the previous
// round; only offsets never seen before are recorded and queued again. The
// visited set grows monotonically and holds at most len(text)+1 offsets, so the
// loop terminates even when the child matches the empty string. A bounded max
// allows max-min rounds: a round is one pass over the whole queue, so the count
// is a repetition count rather than a number of positions.
func (e *evaluator) parseRepeat(n *Node, at int, dst []int) []int {
	child := n.left
	if e.config.EnableRunScan && child.kind == KindPredicate {
		return e.repeatRun(n, at, dst)
	}

	frontier := []int{at}
	var spare []int
	for i := 0; i < n.min; i++ {
		spare = e.step(child, frontier, spare[:0])
		if len(spare) == 0 {
			return dst
		}
		frontier, spare = spare, frontier
	}

	visited := e.acquire()
	defer e.release(visited)
	for _, off := range frontier {
		visited.Insert(conv.IntToUint32(off))
	}
	dst = append(dst, frontier...)

	queue := frontier
	var out []int
	for round := 0; len(queue) > 0 && (n.max == Unbounded || round < n.max-n.min); round++ {
		spare = spare[:0]
		for _, off := range queue {
			out = e.parse(child, off, out[:0])
			for _, next := range out {
				if visited.Insert(conv.IntToUint32(next)) {
					dst = append(dst, next)
					spare = append(spare, next)
				}
			}
		}
		queue, spare = spare, queue
	}
	return dst
}

// repeatRun handles a repetition of a single-byte predicate. Every application
// consumes exactly one byte, so the reachable offsets are the contiguous range
// [at+min, at+min(run, max)] where run is the length of the accepted byte run.
func (e *evaluator) repeatRun(n *Node, at int, dst []int) []int {
	rest := e.bytes()[at:]
	if n.max != Unbounded && len(rest) > n.max {
		rest = rest[:n.max]
	}

	var run int
	if c := n.left.single; c >= 0 {
		run = scan.RunOf(rest, byte(c))
	} else {
		run = scan.Run(rest, n.left.table)
	}
	if run < n.min {
		return dst
	}
	for k := n.min; k <= run; k++ {
		dst = append(dst, at+k)
	}
	return dst
}
