package syntax

import "strings"

// metaChars are the bytes with a meaning outside a character class.
const metaChars = `|*+.()[]\`

// QuoteMeta returns s with every meta character escaped, so that the result
// parses to a pattern matching exactly s.
func QuoteMeta(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(metaChars, s[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
