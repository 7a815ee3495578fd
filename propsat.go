// Package propsat ties together the parser, Tseitin encoder, and DPLL
// solver into the small facade the command-line driver uses: parse a
// reverse-Polish formula, encode it to CNF, and report satisfiability.
package propsat

import (
	"github.com/hashicorp/go-hclog"

	"github.com/proplogic/propsat/ast"
	"github.com/proplogic/propsat/cnf"
	"github.com/proplogic/propsat/dpll"
	"github.com/proplogic/propsat/parser"
	"github.com/proplogic/propsat/tseitin"
	"github.com/proplogic/propsat/vartable"
)

// Result bundles everything a single parse-encode-solve run produced,
// for callers (the CLI driver, tests) that want to inspect intermediate
// state rather than only the final verdict.
type Result struct {
	VarTable *vartable.Table
	Formula  *ast.Node
	CNF      *cnf.CNF
	SAT      bool
}

// Solve parses tok as a reverse-Polish formula, Tseitin-encodes it, and
// decides satisfiability with DPLL. log receives Trace-level solver
// progress; pass hclog.NewNullLogger() for silent operation.
func Solve(tok parser.Tokenizer, log hclog.Logger) (*Result, error) {
	vt := vartable.New()
	f, err := parser.Parse(vt, tok)
	if err != nil {
		return nil, err
	}
	c := tseitin.ToCNF(vt, f)
	sat := dpll.IsSatisfiableLogged(vt, c, log)
	return &Result{VarTable: vt, Formula: f, CNF: c, SAT: sat}, nil
}

// Encode parses tok as a reverse-Polish formula and returns its Tseitin
// CNF encoding without running the solver, for the convert driver mode.
func Encode(tok parser.Tokenizer) (*vartable.Table, *cnf.CNF, error) {
	vt := vartable.New()
	f, err := parser.Parse(vt, tok)
	if err != nil {
		return nil, nil, err
	}
	return vt, tseitin.ToCNF(vt, f), nil
}
