// Package dpll implements a chronological-backtracking Davis-Putnam-
// Logemann-Loveland search over a cnf.CNF against a vartable.Table's
// mutable assignment. It has no conflict-driven clause learning, no
// watched literals, and no restarts: one decision, one unit-propagation
// pass, or one backtrack step per iteration.
package dpll

import (
	"github.com/hashicorp/go-hclog"
	"github.com/kr/pretty"

	"github.com/proplogic/propsat/cnf"
	"github.com/proplogic/propsat/vartable"
)

// reason distinguishes a branching decision from an assignment forced by
// unit propagation or a backtracking flip.
type reason int

const (
	chosen reason = iota
	implied
)

// assignment is one entry on the solver's assignment stack.
type assignment struct {
	v      vartable.Index
	reason reason
}

// status is the tri-valued result of a single solver iteration.
type status int

const (
	statusContinue status = iota
	statusSAT
	statusUnsat
)

type solver struct {
	vt    *vartable.Table
	cnf   *cnf.CNF
	stack []assignment
	log   hclog.Logger
}

// IsSatisfiable decides whether c is satisfiable against vt's current
// assignment. It initializes an empty assignment stack, iterates until a
// non-continue status, restores the stack to empty, and returns true iff
// the verdict was SAT. Variable assignments made during the search are
// left as scratch state of vt; they are not rolled back.
func IsSatisfiable(vt *vartable.Table, c *cnf.CNF) bool {
	return IsSatisfiableLogged(vt, c, hclog.NewNullLogger())
}

// IsSatisfiableLogged behaves like IsSatisfiable but threads a logger
// through the search, emitting Trace-level entries for each decision,
// propagation, and backtrack step.
func IsSatisfiableLogged(vt *vartable.Table, c *cnf.CNF, log hclog.Logger) bool {
	sv := &solver{vt: vt, cnf: c, log: log}

	var st status
	for {
		st = sv.iterate()
		if st != statusContinue {
			break
		}
	}

	sv.stack = sv.stack[:0]
	return st == statusSAT
}

// iterate performs one step of the DPLL loop: SAT check, conflict
// handling, unit propagation, then decision, in that order.
func (sv *solver) iterate() status {
	if sv.cnf.Eval(sv.vt) == vartable.True {
		if sv.log.IsTrace() {
			sv.log.Trace("sat", "assignment", pretty.Sprint(sv.stack))
		}
		return statusSAT
	}

	if sv.cnf.Eval(sv.vt) == vartable.False {
		return sv.backtrack()
	}

	if lit, clauseIdx, ok := sv.findUnit(); ok {
		v := lit.Var()
		val := vartable.True
		if lit < 0 {
			val = vartable.False
		}
		sv.push(v, implied)
		sv.vt.SetValue(v, val)
		sv.log.Trace("propagate", "var", v, "value", val, "clause", clauseIdx)
		return statusContinue
	}

	v := sv.vt.NextUndefined()
	if v == vartable.None {
		// Degenerate state: no unassigned variable and not yet SAT/UNSAT
		// under Eval. The next iteration's SAT check resolves it.
		return statusContinue
	}
	sv.push(v, chosen)
	sv.vt.SetValue(v, vartable.True)
	sv.log.Trace("decide", "var", v, "value", vartable.True)
	return statusContinue
}

// findUnit scans clauses in order and returns the first clause's unit
// literal, if any.
func (sv *solver) findUnit() (lit cnf.Literal, clauseIdx int, ok bool) {
	for i, cl := range sv.cnf.Clauses {
		if u := cl.UnitLiteral(sv.vt); u != 0 {
			return u, i, true
		}
	}
	return 0, 0, false
}

// backtrack walks the assignment stack looking for a decision that hasn't
// been tried both ways. If found, its polarity is flipped in place (the
// "flip"); all implications made since are unwound first. If no such
// decision exists, the formula is unsatisfiable.
func (sv *solver) backtrack() status {
	hasChosen := false
	for _, a := range sv.stack {
		if a.reason == chosen {
			hasChosen = true
			break
		}
	}
	if !hasChosen {
		return statusUnsat
	}

	for len(sv.stack) > 0 {
		top := sv.stack[len(sv.stack)-1]
		if top.reason == chosen {
			sv.stack[len(sv.stack)-1] = assignment{v: top.v, reason: implied}
			sv.vt.SetValue(top.v, vartable.False)
			sv.log.Trace("flip", "var", top.v, "value", vartable.False)
			return statusContinue
		}
		sv.vt.SetValue(top.v, vartable.Undefined)
		sv.stack = sv.stack[:len(sv.stack)-1]
	}
	// Unreachable: hasChosen guarantees a CHOSEN entry is found before the
	// stack empties.
	panic("dpll: backtrack exhausted stack without finding a decision")
}

func (sv *solver) push(v vartable.Index, r reason) {
	sv.stack = append(sv.stack, assignment{v: v, reason: r})
}
