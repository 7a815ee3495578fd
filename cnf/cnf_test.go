package cnf

import (
	"testing"

	"github.com/proplogic/propsat/vartable"
)

func TestClauseEval(t *testing.T) {
	vt := vartable.New()
	a := vt.Intern("a")
	b := vt.Intern("b")
	cl := Binary(Literal(a), Literal(-b))

	if got := cl.Eval(vt); got != vartable.Undefined {
		t.Fatalf("Eval (both undefined) = %s; want undefined", got)
	}

	vt.SetValue(a, vartable.False)
	if got := cl.Eval(vt); got != vartable.Undefined {
		t.Fatalf("Eval (a false, b undefined) = %s; want undefined", got)
	}

	vt.SetValue(b, vartable.True)
	if got := cl.Eval(vt); got != vartable.False {
		t.Fatalf("Eval (a false, ¬b false) = %s; want false", got)
	}

	vt.SetValue(a, vartable.True)
	if got := cl.Eval(vt); got != vartable.True {
		t.Fatalf("Eval (a true) = %s; want true", got)
	}
}

func TestUnitLiteral(t *testing.T) {
	vt := vartable.New()
	a := vt.Intern("a")
	b := vt.Intern("b")
	c := vt.Intern("c")
	cl := Ternary(Literal(a), Literal(b), Literal(-c))

	if got := cl.UnitLiteral(vt); got != 0 {
		t.Fatalf("UnitLiteral (all undefined) = %d; want 0", got)
	}

	vt.SetValue(a, vartable.False)
	if got := cl.UnitLiteral(vt); got != 0 {
		t.Fatalf("UnitLiteral (two undefined) = %d; want 0", got)
	}

	vt.SetValue(b, vartable.False)
	if got, want := cl.UnitLiteral(vt), Literal(-c); got != want {
		t.Fatalf("UnitLiteral = %d; want %d", got, want)
	}

	vt.SetValue(c, vartable.False) // satisfies ¬c
	if got := cl.UnitLiteral(vt); got != 0 {
		t.Fatalf("UnitLiteral (clause satisfied) = %d; want 0", got)
	}
}

func TestCNFEvalShortCircuitsOnFalse(t *testing.T) {
	vt := vartable.New()
	a := vt.Intern("a")
	b := vt.Intern("b")
	vt.SetValue(a, vartable.False)

	c := New()
	c.AddClause(Unary(Literal(a)))          // false
	c.AddClause(Unary(Literal(b)))          // undefined
	if got := c.Eval(vt); got != vartable.False {
		t.Fatalf("Eval = %s; want false", got)
	}
}

func TestCNFEvalEmptyIsTrue(t *testing.T) {
	vt := vartable.New()
	if got := New().Eval(vt); got != vartable.True {
		t.Fatalf("Eval(empty CNF) = %s; want true", got)
	}
}

func TestCNFEvalAllTrue(t *testing.T) {
	vt := vartable.New()
	a := vt.Intern("a")
	vt.SetValue(a, vartable.True)
	c := New()
	c.AddClause(Unary(Literal(a)))
	if got := c.Eval(vt); got != vartable.True {
		t.Fatalf("Eval = %s; want true", got)
	}
}
