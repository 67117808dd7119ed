package matcher

import (
	"slices"
	"strconv"
	"strings"
)

// PositionSet is the set of positions a node can reach from a start position.
//
// All members point into the same text. The set is deduplicated and iterated
// in ascending offset order. The zero value is an empty set.
type PositionSet struct {
	text    string
	offsets []int
}

// newPositionSet takes ownership of offsets, which must be duplicate-free.
func newPositionSet(text string, offsets []int) PositionSet {
	slices.Sort(offsets)
	return PositionSet{text: text, offsets: offsets}
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	return len(s.offsets)
}

// IsEmpty reports whether the set has no members.
func (s PositionSet) IsEmpty() bool {
	return len(s.offsets) == 0
}

// Contains reports whether p is a member of the set.
func (s PositionSet) Contains(p Position) bool {
	if p.text != s.text {
		return false
	}
	_, found := slices.BinarySearch(s.offsets, p.offset)
	return found
}

// HasEnd reports whether the set contains the terminal position of its text,
// i.e. whether the whole input was consumed along some path.
func (s PositionSet) HasEnd() bool {
	n := len(s.offsets)
	return n > 0 && s.offsets[n-1] == len(s.text)
}

// Offsets returns the member offsets in ascending order.
func (s PositionSet) Offsets() []int {
	return slices.Clone(s.offsets)
}

// Positions returns the members in ascending offset order.
func (s PositionSet) Positions() []Position {
	out := make([]Position, len(s.offsets))
	for i, off := range s.offsets {
		out[i] = Position{text: s.text, offset: off}
	}
	return out
}

// String returns the member offsets, e.g. "{0, 2, 5}".
func (s PositionSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, off := range s.offsets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(off))
	}
	b.WriteByte('}')
	return b.String()
}
