package grammars_test

import (
	"fmt"

	"github.com/coregx/combex/grammars"
)

func ExampleIsBalanced() {
	fmt.Println(grammars.IsBalanced("(()())()"))
	fmt.Println(grammars.IsBalanced("(()"))
	// Output:
	// true
	// false
}

func ExampleIsArithmetic() {
	fmt.Println(grammars.IsArithmetic("-6*18+(-3/978)"))
	fmt.Println(grammars.IsArithmetic("6+3-"))
	// Output:
	// true
	// false
}

func ExampleIsJSON() {
	fmt.Println(grammars.IsJSON(`{"name": "combex", "tags": ["regex", "parser"], "stable": false}`))
	fmt.Println(grammars.IsJSON(`{"name": }`))
	// Output:
	// true
	// false
}
