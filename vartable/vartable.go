// Package vartable implements the variable table shared by the parser,
// Tseitin encoder, and DPLL solver: it interns source variable names,
// allocates anonymous auxiliary variables, and holds the mutable
// truth-value assignment that the solver scribbles on during search.
package vartable

import "fmt"

// Index uniquely identifies a variable within a Table. The zero Index, None,
// means "no variable" and is never returned by Intern or Fresh.
type Index int

// None is the reserved index meaning "no variable / absent literal".
const None Index = 0

// Value is a three-valued truth assignment.
type Value uint8

const (
	Undefined Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case Undefined:
		return "undefined"
	case True:
		return "true"
	case False:
		return "false"
	default:
		panic("vartable: invalid Value")
	}
}

// Table interns variable names to Indexes and stores each variable's
// current truth value. Index values are handed out sequentially starting
// at 1, so the slice position i-1 in names/values corresponds to Index(i);
// this means insertion order and index order coincide, which NextUndefined
// relies on to scan deterministically.
type Table struct {
	names  []string // names[i] is the name of Index(i+1); "" for anonymous
	values []Value
	byName map[string]Index
	anon   int // count of Fresh auxiliaries allocated
}

// New returns an empty variable table.
func New() *Table {
	return &Table{byName: make(map[string]Index)}
}

// Intern returns the Index bound to name, allocating a new variable with
// value Undefined if name hasn't been seen before. The same name always
// maps to the same Index.
func (t *Table) Intern(name string) Index {
	if idx, ok := t.byName[name]; ok {
		return idx
	}
	idx := t.alloc(name)
	t.byName[name] = idx
	return idx
}

// Fresh allocates a new anonymous variable, distinct from any interned
// name, with value Undefined.
func (t *Table) Fresh() Index {
	t.anon++
	return t.alloc("")
}

func (t *Table) alloc(name string) Index {
	t.names = append(t.names, name)
	t.values = append(t.values, Undefined)
	return Index(len(t.names))
}

// Value returns v's current truth value.
func (t *Table) Value(v Index) Value {
	return t.values[v-1]
}

// SetValue sets v's current truth value.
func (t *Table) SetValue(v Index, val Value) {
	t.values[v-1] = val
}

// Name returns a display name for v. Interned variables return the name
// they were interned with; anonymous (Tseitin) variables return a stable
// synthesized placeholder, since they only matter for pretty-printing.
func (t *Table) Name(v Index) string {
	if name := t.names[v-1]; name != "" {
		return name
	}
	return fmt.Sprintf("$t%d", v)
}

// NextUndefined returns some variable whose current value is Undefined, in
// deterministic insertion order, or None if every variable is assigned.
// The DPLL solver's decision step uses this for branching.
func (t *Table) NextUndefined() Index {
	for i, val := range t.values {
		if val == Undefined {
			return Index(i + 1)
		}
	}
	return None
}

// Len reports the number of variables (interned and anonymous) in t.
func (t *Table) Len() int {
	return len(t.names)
}
