package ast

import (
	"fmt"
	"strings"

	"github.com/proplogic/propsat/vartable"
)

// ParseInfix parses text in exactly the grammar Fprint produces — a bare
// variable name, "(! E)", or "(L OP R)" — and returns the resulting tree,
// interning variable names into vt. It is the round-trip inverse of
// pretty-printing: since the grammar is fully parenthesized, a single
// token of lookahead after each '(' is enough to tell a negation from a
// binary connective, so no operator precedence table is needed.
func ParseInfix(vt *vartable.Table, text string) (*Node, error) {
	p := &infixParser{vt: vt, toks: tokenizeInfix(text)}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("ast: trailing input after formula: %v", p.toks[p.pos:])
	}
	return n, nil
}

type infixParser struct {
	vt   *vartable.Table
	toks []string
	pos  int
}

func (p *infixParser) next() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	t := p.toks[p.pos]
	p.pos++
	return t, true
}

func (p *infixParser) peek() (string, bool) {
	if p.pos >= len(p.toks) {
		return "", false
	}
	return p.toks[p.pos], true
}

func (p *infixParser) parseExpr() (*Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("ast: unexpected end of input")
	}
	if tok != "(" {
		return MkVar(p.vt, tok), nil
	}

	if next, ok := p.peek(); ok && next == "!" {
		p.next()
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return MkUnary(Not, child), nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	opTok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("ast: expected connective, got end of input")
	}
	kind, err := kindFromOp(opTok)
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return MkBinary(kind, left, right), nil
}

func (p *infixParser) expect(tok string) error {
	got, ok := p.next()
	if !ok || got != tok {
		return fmt.Errorf("ast: expected %q, got %q", tok, got)
	}
	return nil
}

func kindFromOp(tok string) (Kind, error) {
	switch tok {
	case "&&":
		return And, nil
	case "||":
		return Or, nil
	case "=>":
		return Implies, nil
	case "<=>":
		return Equiv, nil
	default:
		return 0, fmt.Errorf("ast: %q is not a connective", tok)
	}
}

// tokenizeInfix splits Fprint's output into parens and whitespace-separated
// words: parens have no surrounding whitespace in Fprint's own output, so
// they are pried apart here before the usual field split.
func tokenizeInfix(text string) []string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '(', ')':
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}
