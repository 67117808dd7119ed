package scan

import (
	"bytes"
	"testing"
)

func digitTable() *Table {
	var t Table
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	return &t
}

func TestIndexNotInTable(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		want     int
	}{
		{"empty", "", -1},
		{"all digits", "0123456789", -1},
		{"first byte", "a123", 0},
		{"middle", "12a34", 2},
		{"last", "1234567890123x", 13},
	}

	table := digitTable()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexNotInTable([]byte(tt.haystack), table)
			if got != tt.want {
				t.Errorf("IndexNotInTable(%q) = %d, want %d", tt.haystack, got, tt.want)
			}
		})
	}
}

func TestIndexNotInTable_NilTable(t *testing.T) {
	if got := IndexNotInTable([]byte("abc"), nil); got != -1 {
		t.Errorf("IndexNotInTable(nil table) = %d, want -1", got)
	}
}

func TestIndexNotByte(t *testing.T) {
	tests := []struct {
		name     string
		haystack []byte
		needle   byte
		want     int
	}{
		{"empty", nil, 'a', -1},
		{"short all same", []byte("aaaa"), 'a', -1},
		{"short differ", []byte("aab"), 'a', 2},
		{"exact word", []byte("aaaaaaaa"), 'a', -1},
		{"word boundary", []byte("aaaaaaaab"), 'a', 8},
		{"inside word", []byte("aaabaaaaaaaa"), 'a', 3},
		{"high byte", append(bytes.Repeat([]byte{0xFF}, 20), 0x7F), 0xFF, 20},
		{"zero needle", append(bytes.Repeat([]byte{0}, 17), 1), 0, 17},
		{"first", []byte("baaaaaaaaaaa"), 'a', 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexNotByte(tt.haystack, tt.needle)
			if got != tt.want {
				t.Errorf("IndexNotByte(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestIndexNotByte_AllPositions cross-checks the SWAR loop against a scalar scan.
func TestIndexNotByte_AllPositions(t *testing.T) {
	for n := 0; n < 40; n++ {
		for pos := 0; pos <= n; pos++ {
			buf := bytes.Repeat([]byte{'x'}, n)
			want := -1
			if pos < n {
				buf[pos] = 'y'
				want = pos
			}
			if got := IndexNotByte(buf, 'x'); got != want {
				t.Fatalf("n=%d pos=%d: got %d, want %d", n, pos, got, want)
			}
		}
	}
}

func TestRun(t *testing.T) {
	table := digitTable()
	if got := Run([]byte("123abc"), table); got != 3 {
		t.Errorf("Run = %d, want 3", got)
	}
	if got := Run([]byte("987"), table); got != 3 {
		t.Errorf("Run = %d, want 3", got)
	}
	if got := Run([]byte("x"), table); got != 0 {
		t.Errorf("Run = %d, want 0", got)
	}
	if got := Run([]byte("123"), nil); got != 0 {
		t.Errorf("Run(nil table) = %d, want 0", got)
	}
}

func TestRunOf(t *testing.T) {
	if got := RunOf(bytes.Repeat([]byte("a"), 100), 'a'); got != 100 {
		t.Errorf("RunOf = %d, want 100", got)
	}
	if got := RunOf([]byte("aaab"), 'a'); got != 3 {
		t.Errorf("RunOf = %d, want 3", got)
	}
	if got := RunOf(nil, 'a'); got != 0 {
		t.Errorf("RunOf(nil) = %d, want 0", got)
	}
}

func BenchmarkRunOf(b *testing.B) {
	data := bytes.Repeat([]byte("a"), 64*1024)
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = RunOf(data, 'a')
	}
}

func BenchmarkRun(b *testing.B) {
	data := bytes.Repeat([]byte("0123456789"), 6*1024)
	table := digitTable()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = Run(data, table)
	}
}
