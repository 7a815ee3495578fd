// Package tseitin implements the Tseitin transformation: structural
// translation of an arbitrary ast.Node formula into an equisatisfiable
// cnf.CNF, introducing one fresh auxiliary variable per connective.
package tseitin

import (
	"github.com/proplogic/propsat/ast"
	"github.com/proplogic/propsat/cnf"
	"github.com/proplogic/propsat/vartable"
)

// Encode recursively encodes the subtree rooted at f into c, returning a
// VarIndex x such that the emitted clauses entail x <=> f in every model.
// The base case (a VAR leaf) emits no clauses and returns the leaf's own
// variable. Clause emission order is part of the encoding's contract:
// DPLL's unit-propagation behavior depends on it.
func Encode(vt *vartable.Table, c *cnf.CNF, f *ast.Node) vartable.Index {
	switch f.Kind {
	case ast.Var:
		return f.Var

	case ast.Not:
		a := Encode(vt, c, f.Child)
		r := vt.Fresh()
		lr, la := lit(r), lit(a)
		// r <=> !a
		c.AddClause(cnf.Binary(-lr, -la))
		c.AddClause(cnf.Binary(la, lr))
		return r

	case ast.And:
		a := Encode(vt, c, f.Left)
		b := Encode(vt, c, f.Right)
		r := vt.Fresh()
		lr, la, lb := lit(r), lit(a), lit(b)
		// r <=> (a && b)
		c.AddClause(cnf.Binary(-lr, la))
		c.AddClause(cnf.Binary(-lr, lb))
		c.AddClause(cnf.Ternary(-la, -lb, lr))
		return r

	case ast.Or:
		a := Encode(vt, c, f.Left)
		b := Encode(vt, c, f.Right)
		r := vt.Fresh()
		lr, la, lb := lit(r), lit(a), lit(b)
		// r <=> (a || b)
		c.AddClause(cnf.Ternary(-lr, la, lb))
		c.AddClause(cnf.Binary(-la, lr))
		c.AddClause(cnf.Binary(-lb, lr))
		return r

	case ast.Implies:
		a := Encode(vt, c, f.Left)
		b := Encode(vt, c, f.Right)
		r := vt.Fresh()
		lr, la, lb := lit(r), lit(a), lit(b)
		// r <=> (a => b)
		c.AddClause(cnf.Ternary(-lr, -la, lb))
		c.AddClause(cnf.Binary(la, lr))
		c.AddClause(cnf.Binary(-lb, lr))
		return r

	case ast.Equiv:
		a := Encode(vt, c, f.Left)
		b := Encode(vt, c, f.Right)
		r := vt.Fresh()
		lr, la, lb := lit(r), lit(a), lit(b)
		// r <=> (a <=> b)
		c.AddClause(cnf.Ternary(-lr, -la, lb))
		c.AddClause(cnf.Ternary(-lr, -lb, la))
		c.AddClause(cnf.Ternary(lr, -la, -lb))
		c.AddClause(cnf.Ternary(lr, la, lb))
		return r

	default:
		panic("tseitin: invalid Kind")
	}
}

// ToCNF builds a new CNF, encodes f into it, and appends the unit clause
// (x) where x is the root auxiliary returned by Encode — forcing f true in
// every model of the resulting CNF and producing an equisatisfiable
// instance. If f is itself a bare variable, x is that variable's own
// index, and the unit clause still correctly forces it true.
func ToCNF(vt *vartable.Table, f *ast.Node) *cnf.CNF {
	c := cnf.New()
	x := Encode(vt, c, f)
	c.AddClause(cnf.Unary(lit(x)))
	return c
}

func lit(v vartable.Index) cnf.Literal { return cnf.Literal(v) }
