// Package scan measures runs of bytes accepted by a byte class.
//
// The matcher uses these helpers to expand a repetition of a single-byte
// predicate in one pass instead of one fixpoint round per byte. The scanners
// are pure Go: a 256-entry lookup table for arbitrary classes and a SWAR
// (SIMD Within A Register) loop for runs of one repeated byte.
package scan

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo7 = 0x7F7F7F7F7F7F7F7F
	hi8 = 0x8080808080808080
)

// Table is a byte class: Table[b] reports whether b belongs to the class.
type Table = [256]bool

// IndexNotInTable returns the index of the first byte b in haystack with
// table[b] == false, or -1 if every byte is in the table.
func IndexNotInTable(haystack []byte, table *Table) int {
	if len(haystack) == 0 || table == nil {
		return -1
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}

// IndexNotByte returns the index of the first byte in haystack that differs
// from needle, or -1 if haystack consists only of needle.
//
// It processes 8 bytes at a time: after XOR with the broadcast needle, matching
// bytes become 0x00 and the first non-zero byte marks the end of the run.
func IndexNotByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] != needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101
	i := 0
	for i+8 <= n {
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		// High bit of each byte is set iff that byte of x is non-zero.
		// Adding 0x7F to the low seven bits never carries across bytes.
		nonZero := (((x & lo7) + lo7) | x) & hi8
		if nonZero != 0 {
			return i + bits.TrailingZeros64(nonZero)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if haystack[i] != needle {
			return i
		}
	}
	return -1
}

// Run returns the length of the longest prefix of haystack whose bytes all
// belong to table.
func Run(haystack []byte, table *Table) int {
	if idx := IndexNotInTable(haystack, table); idx >= 0 {
		return idx
	}
	if table == nil {
		return 0
	}
	return len(haystack)
}

// RunOf returns the length of the longest prefix of haystack made only of b.
func RunOf(haystack []byte, b byte) int {
	if idx := IndexNotByte(haystack, b); idx >= 0 {
		return idx
	}
	return len(haystack)
}
