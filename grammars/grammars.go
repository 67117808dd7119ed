// Package grammars provides ready-made recursive grammars built from matcher
// combinators.
//
// Each grammar is built once at package initialization. Self-reference goes
// through matcher.Lazy or matcher.Memo, so the node graphs may be cyclic.
// All grammars match whole inputs and are safe for concurrent use.
package grammars

import (
	"github.com/coregx/combex/matcher"
)

// Brackets matches non-empty sequences of balanced parentheses.
//
//	expr = term { term }
//	term = "()" | "(" expr ")"
var Brackets = newBrackets()

// Arithmetic matches integer arithmetic expressions with the four binary
// operators, unary minus and parentheses. There is no whitespace.
//
//	expr = term { ("+" | "-") term }
//	term = fact { ("*" | "/") fact }
//	fact = digit { digit } | "-" fact | "(" expr ")"
var Arithmetic = newArithmetic()

// JSON matches a simplified JSON value: integer or decimal numbers, strings
// without escapes, true, false, null, arrays and objects. Blanks (space, tab,
// newline, carriage return) are allowed around punctuation.
//
//	value   = number | string | keyword | array | object
//	number  = digits | digits "." digits
//	string  = `"` { not `"` } `"`
//	keyword = "true" | "false" | "null"
//	array   = "[" "]" | "[" value { "," value } "]"
//	field   = string ":" value
//	object  = "{" "}" | "{" field { "," field } "}"
var JSON = newJSON()

// GoKeyword matches exactly one of the Go language keywords.
var GoKeyword = matcher.Strings(
	"break", "case", "chan", "const", "continue", "default", "defer",
	"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
	"interface", "map", "package", "range", "return", "select", "struct",
	"switch", "type", "var",
)

// IsBalanced reports whether s is a non-empty sequence of balanced
// parentheses.
func IsBalanced(s string) bool {
	return Brackets.Match(s)
}

// IsArithmetic reports whether s is a well-formed arithmetic expression.
func IsArithmetic(s string) bool {
	return Arithmetic.Match(s)
}

// IsJSON reports whether s is a JSON value in the simplified grammar.
func IsJSON(s string) bool {
	return JSON.Match(s)
}

// IsGoKeyword reports whether s is a Go keyword.
func IsGoKeyword(s string) bool {
	return GoKeyword.Match(s)
}

func newBrackets() *matcher.Node {
	var expr *matcher.Node
	term := matcher.OneOf(
		matcher.Str("()"),
		matcher.Char('(').Then(matcher.Lazy(func() *matcher.Node { return expr })).ThenChar(')'),
	)
	expr = term.Many1()
	return expr
}

func newArithmetic() *matcher.Node {
	var fact, expr *matcher.Node
	fact = matcher.OneOf(
		matcher.Range('0', '9').Many1(),
		matcher.Char('-').Then(matcher.Lazy(func() *matcher.Node { return fact })),
		matcher.Char('(').Then(matcher.Lazy(func() *matcher.Node { return expr })).ThenChar(')'),
	)
	term := fact.Then(matcher.Chars('*', '/').Then(fact).Many())
	expr = term.Then(matcher.Chars('+', '-').Then(term).Many())
	return expr
}

func newJSON() *matcher.Node {
	blank := matcher.Chars(' ', '\t', '\n', '\r').Many()
	punct := func(c byte) *matcher.Node {
		return matcher.Seq(blank, matcher.Char(c), blank)
	}
	objStart, objEnd := punct('{'), punct('}')
	arrStart, arrEnd := punct('['), punct(']')
	colon, comma := punct(':'), punct(',')

	var array, object *matcher.Node

	digits := matcher.Range('0', '9').Many1()
	number := digits.Or(matcher.Seq(digits, matcher.Char('.'), digits))
	str := matcher.Seq(matcher.Char('"'), matcher.Not('"').Many(), matcher.Char('"'))
	keyword := matcher.Strings("true", "false", "null")

	// Memo resolves each forward reference once; both are assigned before the
	// first match runs.
	value := matcher.OneOf(
		number,
		str,
		keyword,
		matcher.Memo(func() *matcher.Node { return array }),
		matcher.Memo(func() *matcher.Node { return object }),
	)

	array = matcher.OneOf(
		arrStart.Then(arrEnd),
		matcher.Seq(arrStart, value.Then(comma.Then(value).Many()), arrEnd),
	)
	field := matcher.Seq(str, colon, value)
	object = matcher.OneOf(
		objStart.Then(objEnd),
		matcher.Seq(objStart, field.Then(comma.Then(field).Many()), objEnd),
	)
	return value
}
