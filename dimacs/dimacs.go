// Package dimacs renders this engine's own cnf.Clause values as DIMACS-style
// text for the convert driver mode, and parses that text back into the same
// type for round-trip testing and for re-solving a previously converted
// formula.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/proplogic/propsat/cnf"
	"github.com/proplogic/propsat/vartable"
)

// problemHeader is the declared #vars/#clauses from a "p cnf" line, if one
// was present.
type problemHeader struct {
	vars    int
	clauses int
	seen    bool
}

// Parse reads DIMACS CNF text and returns its clauses as cnf.Clause values,
// this engine's own ternary representation, rather than the generic
// arbitrary-width integer slices a general-purpose DIMACS reader would
// produce. Every CNF this engine ever produces — Tseitin output plus its
// single top-level unit clause — is ternary or smaller, so a DIMACS clause
// wider than three literals cannot have come from this engine; Parse
// rejects one as a domain error instead of reshaping or truncating it.
//
// A few common real-world DIMACS variations are accepted: comment lines
// ('c') may appear anywhere, not only in the preamble; a line containing a
// lone '%' truncates the rest of the file (a trailer some generators
// append); and the problem line may be absent, in which case no
// vars/clause-count cross-check is performed.
func Parse(r io.Reader) ([]cnf.Clause, error) {
	var header problemHeader
	var clauses []cnf.Clause
	var pending []int

	s := bufio.NewScanner(r)
	line := 0
scan:
	for s.Scan() {
		line++
		text := s.Text()
		switch {
		case text == "":
			continue
		case text[0] == 'c':
			continue
		case text == "%":
			break scan
		case text[0] == 'p':
			if err := parseProblemLine(text, &header, len(clauses)); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", line, err)
			}
			continue
		}
		for _, field := range strings.Fields(text) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: invalid literal %q: %w", line, field, err)
			}
			if n != 0 {
				pending = append(pending, n)
				continue
			}
			cl, err := clauseFromInts(pending)
			if err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", line, err)
			}
			clauses = append(clauses, cl)
			pending = nil
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		cl, err := clauseFromInts(pending)
		if err != nil {
			return nil, fmt.Errorf("dimacs: %w", err)
		}
		clauses = append(clauses, cl)
	}

	if header.seen {
		if err := checkHeader(header, clauses); err != nil {
			return nil, err
		}
	}
	return clauses, nil
}

func parseProblemLine(text string, header *problemHeader, clausesSoFar int) error {
	if clausesSoFar > 0 {
		return fmt.Errorf("problem line appears after clauses")
	}
	if header.seen {
		return fmt.Errorf("multiple problem lines")
	}
	fields := strings.Fields(text)
	if len(fields) != 4 || fields[0] != "p" {
		return fmt.Errorf("malformed problem line %q", text)
	}
	if fields[1] != "cnf" {
		return fmt.Errorf("only cnf supported; got %q", fields[1])
	}
	vars, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("malformed #vars: %w", err)
	}
	numClauses, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("malformed #clauses: %w", err)
	}
	if vars < 0 || numClauses < 0 {
		return fmt.Errorf("negative count in problem line %q", text)
	}
	*header = problemHeader{vars: vars, clauses: numClauses, seen: true}
	return nil
}

// clauseFromInts builds this engine's zero-padded ternary Clause from a
// DIMACS clause's literals, using cnf's own clause constructors so the
// shape is identical to one produced by Tseitin encoding.
func clauseFromInts(lits []int) (cnf.Clause, error) {
	switch len(lits) {
	case 0:
		return cnf.Clause{}, nil
	case 1:
		return cnf.Unary(cnf.Literal(lits[0])), nil
	case 2:
		return cnf.Binary(cnf.Literal(lits[0]), cnf.Literal(lits[1])), nil
	case 3:
		return cnf.Ternary(cnf.Literal(lits[0]), cnf.Literal(lits[1]), cnf.Literal(lits[2])), nil
	default:
		return cnf.Clause{}, fmt.Errorf("clause has %d literals; only up to 3 are supported", len(lits))
	}
}

func checkHeader(header problemHeader, clauses []cnf.Clause) error {
	if len(clauses) != header.clauses {
		return fmt.Errorf("dimacs: problem line specifies %d clauses, but there are %d", header.clauses, len(clauses))
	}
	seen := map[vartable.Index]struct{}{}
	for _, cl := range clauses {
		for _, lit := range cl.Lits {
			if lit == 0 {
				continue
			}
			v := lit.Var()
			if int(v) > header.vars {
				return fmt.Errorf("dimacs: formula contains var %d, but problem line asserts %d vars", v, header.vars)
			}
			seen[v] = struct{}{}
		}
	}
	if len(seen) > header.vars {
		return fmt.Errorf("dimacs: problem line specifies %d vars, but there are %d", header.vars, len(seen))
	}
	return nil
}

// Write renders clauses as DIMACS CNF text: a "p cnf <vars> <clauses>"
// header computed from the data, followed by one line per clause, each
// terminated by a 0.
func Write(w io.Writer, clauses []cnf.Clause) error {
	maxVar := vartable.Index(0)
	for _, cl := range clauses {
		for _, lit := range cl.Lits {
			if lit == 0 {
				continue
			}
			if v := lit.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", maxVar, len(clauses)); err != nil {
		return err
	}
	for _, cl := range clauses {
		var b strings.Builder
		for _, lit := range cl.Lits {
			if lit == 0 {
				continue
			}
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCNF is a convenience wrapper for writing a CNF value's own clauses.
func WriteCNF(w io.Writer, c *cnf.CNF) error {
	return Write(w, c.Clauses)
}

// NewVarTable allocates a fresh variable table whose Index values 1..n line
// up directly with the plain integers a DIMACS file uses as variables
// (DIMACS variables carry no names of their own), where n is the highest
// variable referenced by clauses. The result is suitable for handing
// straight to dpll.IsSatisfiable alongside clauses parsed by Parse.
func NewVarTable(clauses []cnf.Clause) *vartable.Table {
	maxVar := vartable.Index(0)
	for _, cl := range clauses {
		for _, lit := range cl.Lits {
			if lit == 0 {
				continue
			}
			if v := lit.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	vt := vartable.New()
	for i := vartable.Index(0); i < maxVar; i++ {
		vt.Fresh()
	}
	return vt
}
