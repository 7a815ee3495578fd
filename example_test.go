package propsat_test

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/proplogic/propsat"
	"github.com/proplogic/propsat/lexer"
)

func ExampleSolve() {
	// Problem, in reverse Polish notation: (a => b) && a && (! b)
	tok := lexer.New(strings.NewReader("a b => a && b ! &&"))

	result, err := propsat.Solve(tok, hclog.NewNullLogger())
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	if result.SAT {
		fmt.Println("satisfiable")
	} else {
		fmt.Println("unsatisfiable")
	}
	// Output: unsatisfiable
}
