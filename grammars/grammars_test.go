package grammars

import (
	"strings"
	"sync"
	"testing"

	"github.com/coregx/combex/matcher"
)

func TestIsBalanced(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"(", false},
		{")", false},
		{"()", true},
		{")(", false},
		{"((", false},
		{"))", false},
		{"()()", true},
		{"(())", true},
		{"(()", false},
		{"())", false},
		{"()()()", true},
		{"()(())", true},
		{"(())()", true},
		{"(()())()", true},
		{"(())()((()))()", true},
		{"(())()((())()", false},
		{"(())()(()))()", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsBalanced(tt.input); got != tt.want {
				t.Errorf("IsBalanced(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsBalanced_Deep(t *testing.T) {
	const depth = 300
	s := strings.Repeat("(", depth) + strings.Repeat(")", depth)
	if !IsBalanced(s) {
		t.Errorf("expected %d nested pairs to balance", depth)
	}
	if IsBalanced(s[1:]) {
		t.Error("expected a missing opener to be rejected")
	}
}

func TestIsArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"123", true},
		{"-6", true},
		{"--6", true},
		{"2*(3+4)", true},
		{"abc", false},
		{"12+", false},
		{"12*", false},
		{"+3", false},
		{"/6", false},
		{"6+3-", false},
		{"(12+345)*(67-890)+10/6", true},
		{"-6*18+(-3/978)", true},
		{"24/5774*(6/357+637)-2*7/52+5", true},
		{"24/5774*(6/357+637-2*7/52+5", false},
		{"7758*(6/314+552234)-2*61/(10+2/(40-38*5))", true},
		{"7758*(6/314+552234)-2*61/(10+2/40-38*5))", false},
		{"1 + 2", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsArithmetic(tt.input); got != tt.want {
				t.Errorf("IsArithmetic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

const sampleJSON = `{
    "a": 123,
    "b": 3.14,
    "c": "hello",
    "d": {
        "x": 100,
        "y": "world!"
    },
    "e": [
        12,
        34.56,
        {
            "name": "Xiao Ming",
            "age": 18,
            "score": [99.8, 87.5, 60.0]
        },
        "abc"
    ],
    "f": [],
    "g": {},
    "h": [true, {"m": false}],
    "i": null
}`

func TestIsJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"document", sampleJSON, true},
		{"integer", "123", true},
		{"decimal", "34.56", true},
		{"string", `"hello"`, true},
		{"true", "true", true},
		{"false", "false", true},
		{"null", "null", true},
		{"empty object", "{}", true},
		{"empty array", "[]", true},
		{"array of object", "[{}]", true},
		{"blank inside", "[ 1 ,\t2 ]", true},
		{"empty", "", false},
		{"open brace", "{", false},
		{"close brace", "}", false},
		{"extra brace", "{}}", false},
		{"missing comma", "[1, 2 3]", false},
		{"object without keys", "{1, 2, 3}", false},
		{"trailing dot", "1.", false},
		{"unterminated string", `"abc`, false},
		{"unknown keyword", "nil", false},
		{"trailing comma", "[1,]", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsJSON(tt.input); got != tt.want {
				t.Errorf("IsJSON(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsGoKeyword(t *testing.T) {
	for _, kw := range []string{"break", "func", "go", "goto", "fallthrough", "var"} {
		if !IsGoKeyword(kw) {
			t.Errorf("IsGoKeyword(%q) = false, want true", kw)
		}
	}
	for _, s := range []string{"", "fun", "funcs", "Go", "int", "nil", "gofunc"} {
		if IsGoKeyword(s) {
			t.Errorf("IsGoKeyword(%q) = true, want false", s)
		}
	}
}

func TestGoKeyword_Composes(t *testing.T) {
	// A space separated keyword list evaluates the set from many offsets.
	spaced := GoKeyword.Then(matcher.Char(' ').Then(GoKeyword).Many())
	if !spaced.Match("if else for range return") {
		t.Error("expected keyword list to match")
	}
	if spaced.Match("if else fore range") {
		t.Error("expected a non-keyword to be rejected")
	}
}

func TestConcurrentGrammars(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if !IsJSON(sampleJSON) || !IsBalanced("(()())") || !IsArithmetic("-(1+2)*3") {
					t.Error("concurrent grammar match failed")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkIsJSON(b *testing.B) {
	b.SetBytes(int64(len(sampleJSON)))
	for i := 0; i < b.N; i++ {
		IsJSON(sampleJSON)
	}
}

func BenchmarkIsArithmetic(b *testing.B) {
	expr := strings.Repeat("(12+345)*(67-890)+", 20) + "1"
	b.SetBytes(int64(len(expr)))
	for i := 0; i < b.N; i++ {
		IsArithmetic(expr)
	}
}
