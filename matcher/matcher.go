// Package matcher implements a matching engine built from composable
// combinators.
//
// A tree of Nodes is evaluated by propagating a set of reachable input
// positions: each node maps one position to the set of positions it can reach,
// and a match succeeds iff the end of the input is reachable from offset 0.
// There is no backtracking and no search; the whole input must be consumed.
//
// The node variants are:
//   - Predicate: one byte accepted by a test (Any, Char, Chars, Not, Range, Pred)
//   - Literal: a fixed string (Str) or one of several (Strings)
//   - Sequence and Choice (Then, Or, Seq, OneOf)
//   - Repeat: a breadth-first fixpoint that terminates even when the child
//     matches the empty string (Repeat, Times, Many, Many1, ManyMin)
//   - Lazy: a node resolved at match time, for recursive grammars (Lazy, Memo)
//   - Bind: later matching chosen from earlier matched text (Bind)
//
// Basic usage:
//
//	ident := matcher.OneOf(matcher.Char('_'), matcher.Range('a', 'z')).
//		Then(matcher.OneOf(matcher.Char('_'), matcher.Range('a', 'z'), matcher.Range('0', '9')).Many())
//	ident.Match("snake_case_1") // true
//	ident.Match("1st")          // false
//
// Trees are immutable and safe for concurrent use. The engine works on bytes;
// it has no notion of Unicode.
package matcher

// Engine evaluates a tree under a Config.
//
// An Engine is safe to use concurrently from multiple goroutines.
type Engine struct {
	root      *Node
	config    Config
	prefilter *prefilter // nil when disabled
}

// NewEngine returns an engine for root using config.
func NewEngine(root *Node, config Config) (*Engine, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{root: root, config: config}
	if config.EnablePrefilter {
		pf := analyze(root)
		e.prefilter = &pf
	}
	return e, nil
}

// Root returns the tree the engine evaluates.
func (e *Engine) Root() *Node {
	return e.root
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Match reports whether the tree consumes all of b starting at offset 0.
func (e *Engine) Match(b []byte) bool {
	text := string(b)
	if e.prefilter != nil && e.prefilter.rejects(text) {
		return false
	}
	return matchFull(e.root, e.config, text, b)
}

// MatchString reports whether the tree consumes all of s starting at offset 0.
func (e *Engine) MatchString(s string) bool {
	if e.prefilter != nil && e.prefilter.rejects(s) {
		return false
	}
	return matchFull(e.root, e.config, s, nil)
}

// Parse returns the set of positions the tree reaches from at.
func (e *Engine) Parse(at Position) PositionSet {
	return parseFrom(e.root, e.config, at)
}

// Match reports whether n consumes all of text starting at offset 0,
// using DefaultConfig.
func (n *Node) Match(text string) bool {
	return matchFull(n, DefaultConfig(), text, nil)
}

// MatchBytes is like Match but takes a byte slice.
func (n *Node) MatchBytes(b []byte) bool {
	return matchFull(n, DefaultConfig(), string(b), b)
}

// Parse returns the set of positions n reaches from at, using DefaultConfig.
func (n *Node) Parse(at Position) PositionSet {
	return parseFrom(n, DefaultConfig(), at)
}

func matchFull(root *Node, config Config, text string, data []byte) bool {
	e := getEvaluator(text, data, config)
	defer putEvaluator(e)

	for _, off := range e.parse(root, 0, nil) {
		if off == len(text) {
			return true
		}
	}
	return false
}

func parseFrom(root *Node, config Config, at Position) PositionSet {
	e := getEvaluator(at.text, nil, config)
	defer putEvaluator(e)

	return newPositionSet(at.text, e.parse(root, at.offset, nil))
}
