package matcher

import (
	"fmt"
	"strconv"
)

// Position identifies a point in an input text.
//
// Positions are small values that borrow the text they point into. Two
// positions are equal (==) iff they refer to the same text and offset.
type Position struct {
	text   string
	offset int
}

// NewPosition returns the position at offset within text.
// Panics if offset is outside [0, len(text)].
func NewPosition(text string, offset int) Position {
	if offset < 0 || offset > len(text) {
		panic("matcher: position offset " + strconv.Itoa(offset) +
			" out of range [0, " + strconv.Itoa(len(text)) + "]")
	}
	return Position{text: text, offset: offset}
}

// Start returns the position at offset 0 of text.
func Start(text string) Position {
	return Position{text: text}
}

// Text returns the input the position points into.
func (p Position) Text() string {
	return p.text
}

// Offset returns the byte offset of the position.
func (p Position) Offset() int {
	return p.offset
}

// AtEnd reports whether the position is terminal (offset == len(text)).
func (p Position) AtEnd() bool {
	return p.offset == len(p.text)
}

// Current returns the byte at the position.
// Panics at end of input.
func (p Position) Current() byte {
	return p.text[p.offset]
}

// Next returns the position advanced by one byte.
// Panics at end of input.
func (p Position) Next() Position {
	return p.Advance(1)
}

// Advance returns the position advanced by n bytes.
func (p Position) Advance(n int) Position {
	return NewPosition(p.text, p.offset+n)
}

// Consumed returns the part of the text before the position.
func (p Position) Consumed() string {
	return p.text[:p.offset]
}

// Remaining returns the part of the text from the position onwards.
func (p Position) Remaining() string {
	return p.text[p.offset:]
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("Position{parsed: %q, remain: %q}", p.Consumed(), p.Remaining())
}
