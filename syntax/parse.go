// Package syntax compiles a small regular-expression grammar into a matcher
// tree.
//
// The grammar is:
//
//	expr      = term { "|" term }.
//	term      = factor { factor }.   ends at end of pattern, ")" or "|"
//	factor    = elem [ "*" | "+" ].
//	elem      = "(" expr ")" | "[" rangeItem { rangeItem } "]" | "." | "\" char | char.
//	rangeItem = char "-" char | char.
//
// The meta characters are:
//
//	|  alternation
//	*  zero or more
//	+  one or more
//	.  any byte
//	() grouping
//	[] character class; a-z is an inclusive range, bounds in either order
//	\  makes the following byte literal
//
// Parsing is a single left-to-right pass with one byte of lookahead. Every
// element position accepts any byte, so a meta character where an element is
// expected is a literal: "*a" matches "*a" and "a**" matches "*", "aa*" and so
// on. Inside a class only "-" and "]" are special, and a "]" in first position
// is a member.
package syntax

import (
	"fmt"

	"github.com/coregx/combex/matcher"
)

type parser struct {
	pattern string
	pos     int
}

// Parse compiles pattern into a matcher tree.
// Errors are always of type *Error.
func Parse(pattern string) (node *matcher.Node, err error) {
	p := &parser{pattern: pattern}
	defer func() {
		if r := recover(); r != nil {
			node = nil
			err = &Error{
				Code:    ErrInternal,
				Pattern: pattern,
				Offset:  p.pos,
				Err:     fmt.Errorf("%v", r),
			}
		}
	}()

	node, err = p.parseExpr()
	if err != nil {
		return nil, err
	}
	// parseExpr only stops early at a ')' that closes nothing.
	if !p.eof() {
		return nil, p.errorf(ErrUnexpectedParen, "end of pattern")
	}
	return node, nil
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *matcher.Node {
	node, err := Parse(pattern)
	if err != nil {
		panic("syntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return node
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() byte {
	return p.pattern[p.pos]
}

func (p *parser) errorf(code ErrorCode, expected string) *Error {
	return &Error{Code: code, Pattern: p.pattern, Offset: p.pos, Expected: expected}
}

// next consumes one byte, reporting ErrUnexpectedEnd naming what was expected.
func (p *parser) next(expected string) (byte, error) {
	if p.eof() {
		return 0, p.errorf(ErrUnexpectedEnd, expected)
	}
	c := p.pattern[p.pos]
	p.pos++
	return c, nil
}

// expect consumes the delimiter c or reports code.
func (p *parser) expect(c byte, code ErrorCode) error {
	if p.eof() || p.peek() != c {
		return p.errorf(code, "'"+string(c)+"'")
	}
	p.pos++
	return nil
}

// expr = term { "|" term }
func (p *parser) parseExpr() (*matcher.Node, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = node.Or(next)
	}
	return node, nil
}

// term = factor { factor }
func (p *parser) parseTerm() (*matcher.Node, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() != ')' && p.peek() != '|' {
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = node.Then(next)
	}
	return node, nil
}

// factor = elem [ "*" | "+" ]
func (p *parser) parseFactor() (*matcher.Node, error) {
	node, err := p.parseElem()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		switch p.peek() {
		case '*':
			p.pos++
			return node.Many(), nil
		case '+':
			p.pos++
			return node.Many1(), nil
		}
	}
	return node, nil
}

// elem = "(" expr ")" | "[" rangeItem { rangeItem } "]" | "." | "\" char | char
func (p *parser) parseElem() (*matcher.Node, error) {
	c, err := p.next("an element")
	if err != nil {
		return nil, err
	}

	switch c {
	case '(':
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')', ErrMissingParen); err != nil {
			return nil, err
		}
		return node, nil
	case '[':
		node, err := p.parseClass()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']', ErrMissingBracket); err != nil {
			return nil, err
		}
		return node, nil
	case '.':
		return matcher.Any(), nil
	case '\\':
		lit, err := p.next("an escaped character")
		if err != nil {
			return nil, err
		}
		return matcher.Char(lit), nil
	default:
		return matcher.Char(c), nil
	}
}

// parseClass reads rangeItem { rangeItem } up to, not including, the "]".
func (p *parser) parseClass() (*matcher.Node, error) {
	var items []*matcher.Node
	for {
		item, err := p.parseRangeItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.eof() || p.peek() == ']' {
			break
		}
	}
	return matcher.Class(items...), nil
}

// rangeItem = char "-" char | char
func (p *parser) parseRangeItem() (*matcher.Node, error) {
	lo, err := p.next("a class character")
	if err != nil {
		return nil, err
	}
	if p.eof() || p.peek() != '-' {
		return matcher.Char(lo), nil
	}
	p.pos++
	hi, err := p.next("a range end character")
	if err != nil {
		return nil, err
	}
	return matcher.Range(lo, hi), nil
}
