// Package combex provides a regular-expression engine built from composable
// matcher combinators.
//
// A pattern compiles into a tree of matcher nodes that is evaluated by
// propagating sets of reachable input positions. There is no backtracking, so
// patterns such as (a*)* or (x+x+)+y stay fast on long inputs. Matching is
// whole-input: a Regex matches a text only if it can consume all of it.
//
// Basic usage:
//
//	re, err := combex.Compile(`[_a-zA-Z][_0-9a-zA-Z]*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("snake_case_1") // true
//	re.MatchString("1st")          // false
//
// Grammars that regular expressions cannot express are built directly from
// the matcher package and wrapped with New:
//
//	var expr *matcher.Node
//	term := matcher.Str("()").Or(matcher.Char('(').Then(matcher.Lazy(func() *matcher.Node {
//	    return expr
//	})).ThenChar(')'))
//	expr = term.Many1()
//	re, _ := combex.New(expr)
//	re.MatchString("(()())") // true
//
// Syntax (see package syntax for the grammar):
//   - x|y alternation, xy concatenation, (x) grouping
//   - x* zero or more, x+ one or more
//   - . any byte, [a-z0-9_] character class, \c literal c
//
// The engine works on bytes and has no anchors, flags, captures or search
// functions.
package combex

import (
	"github.com/coregx/combex/matcher"
	"github.com/coregx/combex/syntax"
)

// Regex represents a compiled regular expression.
//
// A Regex is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	re := combex.MustCompile(`(a|b)+`)
//	if re.MatchString("abba") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *matcher.Engine
	pattern string
}

// Compile parses a pattern and returns a Regex that matches it.
//
// Returns a *syntax.Error if the pattern is invalid.
//
// Example:
//
//	re, err := combex.Compile(`[0-9]+(\.[0-9]+)*`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, matcher.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var ident = combex.MustCompile(`[_a-zA-Z][_0-9a-zA-Z]*`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("combex: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := combex.DefaultConfig()
//	config.EnableRunScan = false
//	re, err := combex.CompileWithConfig("(a|b)*", config)
func CompileWithConfig(pattern string, config matcher.Config) (*Regex, error) {
	node, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}

	engine, err := matcher.NewEngine(node, config)
	if err != nil {
		return nil, err
	}

	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// New wraps a hand-built matcher tree.
//
// String reports the tree's own rendering, since there is no source pattern.
func New(node *matcher.Node) (*Regex, error) {
	engine, err := matcher.NewEngine(node, matcher.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: node.String()}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() matcher.Config {
	return matcher.DefaultConfig()
}

// QuoteMeta returns a string that escapes all metacharacters inside the
// argument text; the returned string is a pattern matching the literal text.
//
// The empty string has no pattern form, since an empty pattern is an error.
//
// Example:
//
//	escaped := combex.QuoteMeta("1+1")
//	// escaped = `1\+1`
//	combex.MustCompile(escaped).MatchString("1+1") // true
func QuoteMeta(s string) string {
	return syntax.QuoteMeta(s)
}

// Match reports whether the pattern matches all of b.
//
// Example:
//
//	re := combex.MustCompile(`a+b`)
//	re.Match([]byte("aaab")) // true
//	re.Match([]byte("aaabc")) // false
func (r *Regex) Match(b []byte) bool {
	return r.engine.Match(b)
}

// MatchString reports whether the pattern matches all of s.
func (r *Regex) MatchString(s string) bool {
	return r.engine.MatchString(s)
}

// Node returns the compiled matcher tree.
//
// The tree can be combined with other nodes to build larger grammars.
func (r *Regex) Node() *matcher.Node {
	return r.engine.Root()
}

// Config returns the configuration the Regex was compiled with.
func (r *Regex) Config() matcher.Config {
	return r.engine.Config()
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}
