// Package cnf implements the conjunctive normal form representation used
// by the Tseitin encoder and DPLL solver: literals, fixed ternary clauses,
// and evaluation of both under a vartable.Table's current assignment.
package cnf

import "github.com/proplogic/propsat/vartable"

// Literal is a signed reference to a variable: positive asserts the
// variable true, negative asserts it false. Zero is never a valid
// literal; it is used only to pad unused clause slots.
type Literal int

// Var returns the VarIndex that l refers to, regardless of sign.
func (l Literal) Var() vartable.Index {
	if l < 0 {
		return vartable.Index(-l)
	}
	return vartable.Index(l)
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

// satisfied reports whether l evaluates to true against vt's current
// assignment; ok is false if the underlying variable is still undefined.
func (l Literal) satisfied(vt *vartable.Table) (sat, ok bool) {
	val := vt.Value(l.Var())
	if val == vartable.Undefined {
		return false, false
	}
	want := vartable.True
	if l < 0 {
		want = vartable.False
	}
	return val == want, true
}

// Clause is a disjunction of up to three literals. Every clause produced
// by Tseitin encoding (and the single top-level unit clause) fits in this
// shape; zero entries are unused slots and are skipped during evaluation.
type Clause struct {
	Lits [3]Literal
}

// Ternary builds a clause from up to three literals; pass 0 for unused
// slots. A nonzero literal must never be 0 by construction elsewhere.
func Ternary(a, b, c Literal) Clause {
	return Clause{Lits: [3]Literal{a, b, c}}
}

// Unary builds a single-literal clause.
func Unary(a Literal) Clause { return Ternary(a, 0, 0) }

// Binary builds a two-literal clause.
func Binary(a, b Literal) Clause { return Ternary(a, b, 0) }

// Eval returns the clause's value under vt's current assignment: True if
// any literal is satisfied, False if every literal is falsified,
// Undefined otherwise.
func (c Clause) Eval(vt *vartable.Table) vartable.Value {
	sawUndefined := false
	for _, lit := range c.Lits {
		if lit == 0 {
			continue
		}
		sat, ok := lit.satisfied(vt)
		if !ok {
			sawUndefined = true
			continue
		}
		if sat {
			return vartable.True
		}
	}
	if sawUndefined {
		return vartable.Undefined
	}
	return vartable.False
}

// UnitLiteral returns c's unit literal: the sole literal still Undefined
// when every other literal in c is already falsified. It returns 0 if no
// such literal exists (the clause is already satisfied, already false, or
// has more than one undefined literal).
func (c Clause) UnitLiteral(vt *vartable.Table) Literal {
	var unit Literal
	count := 0
	for _, lit := range c.Lits {
		if lit == 0 {
			continue
		}
		sat, ok := lit.satisfied(vt)
		if !ok {
			unit = lit
			count++
			continue
		}
		if sat {
			// Clause already satisfied; no unit literal.
			return 0
		}
	}
	if count == 1 {
		return unit
	}
	return 0
}

// CNF is an ordered sequence of clauses, interpreted as their conjunction.
// Clause order is significant: the DPLL solver's unit-propagation and
// decision behavior depends on it, per the Tseitin encoder's emission
// order contract.
type CNF struct {
	Clauses []Clause
}

// New returns an empty CNF, the vacuously true conjunction of zero clauses.
func New() *CNF {
	return &CNF{}
}

// AddClause appends cl, preserving insertion order.
func (c *CNF) AddClause(cl Clause) {
	c.Clauses = append(c.Clauses, cl)
}

// Eval scans the clauses in order: if any clause is False, the result is
// False immediately; if every clause is True, the result is True;
// otherwise it is Undefined.
func (c *CNF) Eval(vt *vartable.Table) vartable.Value {
	allTrue := true
	for _, cl := range c.Clauses {
		switch cl.Eval(vt) {
		case vartable.False:
			return vartable.False
		case vartable.Undefined:
			allTrue = false
		}
	}
	if allTrue {
		return vartable.True
	}
	return vartable.Undefined
}
