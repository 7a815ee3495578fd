package vartable

import "testing"

func TestInternSameNameSameIndex(t *testing.T) {
	vt := New()
	a := vt.Intern("a")
	b := vt.Intern("b")
	a2 := vt.Intern("a")
	if a != a2 {
		t.Fatalf("Intern(\"a\") = %d then %d; want same index", a, a2)
	}
	if a == b {
		t.Fatalf("distinct names got the same index %d", a)
	}
}

func TestFreshDistinctFromInterned(t *testing.T) {
	vt := New()
	a := vt.Intern("a")
	f1 := vt.Fresh()
	f2 := vt.Fresh()
	if f1 == a || f2 == a || f1 == f2 {
		t.Fatalf("Fresh indexes collided: a=%d f1=%d f2=%d", a, f1, f2)
	}
}

func TestValueDefaultsUndefined(t *testing.T) {
	vt := New()
	v := vt.Intern("x")
	if got := vt.Value(v); got != Undefined {
		t.Fatalf("Value(new var) = %s; want undefined", got)
	}
	vt.SetValue(v, True)
	if got := vt.Value(v); got != True {
		t.Fatalf("Value after SetValue(True) = %s; want true", got)
	}
}

func TestNameOfAnonymousIsStable(t *testing.T) {
	vt := New()
	f := vt.Fresh()
	name1 := vt.Name(f)
	name2 := vt.Name(f)
	if name1 != name2 {
		t.Fatalf("Name(fresh) not stable: %q then %q", name1, name2)
	}
	if name1 == "" {
		t.Fatal("Name(fresh) is empty")
	}
}

func TestNextUndefinedInsertionOrder(t *testing.T) {
	vt := New()
	a := vt.Intern("a")
	b := vt.Intern("b")
	c := vt.Intern("c")
	if got := vt.NextUndefined(); got != a {
		t.Fatalf("NextUndefined = %d; want first interned var %d", got, a)
	}
	vt.SetValue(a, True)
	if got := vt.NextUndefined(); got != b {
		t.Fatalf("NextUndefined = %d; want %d", got, b)
	}
	vt.SetValue(b, False)
	vt.SetValue(c, True)
	if got := vt.NextUndefined(); got != None {
		t.Fatalf("NextUndefined = %d; want None once all assigned", got)
	}
}
