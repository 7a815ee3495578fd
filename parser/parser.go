// Package parser builds a formula ast.Node from a reverse-Polish stream of
// tokens. The lexical tokenizer that splits raw input into whitespace-
// separated tokens is an external collaborator: parser only consumes an
// already-tokenized stream through the Tokenizer interface.
package parser

import (
	"fmt"

	"github.com/proplogic/propsat/ast"
	"github.com/proplogic/propsat/vartable"
)

// maxTokenLen matches the external tokenizer's fixed input-buffer contract:
// 31 content bytes plus a terminator.
const maxTokenLen = 31

// Tokenizer yields whitespace-separated tokens one at a time. Next returns
// ok == false once the stream is exhausted.
type Tokenizer interface {
	Next() (tok string, ok bool)
}

// ParseError reports a malformed token stream: an invalid token, an
// over-long token, or a stack underflow at a connective.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "parser: " + e.Msg }

func parseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// Parse consumes tok in reverse-Polish order and returns the resulting
// formula tree, interning variable names into vt. Variables push a leaf
// onto a working stack; "!" pops one operand and pushes the unary node;
// each binary operator pops two operands (right then left) and pushes the
// binary node with children ordered (left, right). At end of input the
// stack must hold exactly one node.
func Parse(vt *vartable.Table, tok Tokenizer) (*ast.Node, error) {
	var stack []*ast.Node

	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		if len(t) > maxTokenLen {
			return nil, parseErrorf("token %q exceeds %d-byte limit", t, maxTokenLen)
		}

		kind, isVar, err := toKind(t)
		if err != nil {
			return nil, err
		}

		switch {
		case isVar:
			stack = append(stack, ast.MkVar(vt, t))

		case kind == ast.Not:
			if len(stack) < 1 {
				return nil, parseErrorf("%q: stack underflow", t)
			}
			operand := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, ast.MkUnary(ast.Not, operand))

		default: // binary connective
			if len(stack) < 2 {
				return nil, parseErrorf("%q: stack underflow", t)
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, ast.MkBinary(kind, left, right))
		}
	}

	if len(stack) != 1 {
		return nil, parseErrorf("malformed formula: %d items left on stack, want 1", len(stack))
	}
	return stack[0], nil
}

// ValidateToken reports whether tok is a well-formed token in isolation: a
// connective spelling, a valid variable name, and within the token-length
// limit. It does not check stack-shape (operand count); Parse does that as
// tokens are consumed. Batch validators that want every malformed token in
// a stream, rather than stopping at the first, call ValidateToken per
// token themselves.
func ValidateToken(tok string) error {
	if len(tok) > maxTokenLen {
		return parseErrorf("token %q exceeds %d-byte limit", tok, maxTokenLen)
	}
	_, _, err := toKind(tok)
	return err
}

// toKind classifies a token: the five connective spellings, or a variable
// matching [A-Za-z][A-Za-z0-9]*. Anything else is a parse error.
func toKind(tok string) (kind ast.Kind, isVar bool, err error) {
	switch tok {
	case "&&":
		return ast.And, false, nil
	case "||":
		return ast.Or, false, nil
	case "!":
		return ast.Not, false, nil
	case "=>":
		return ast.Implies, false, nil
	case "<=>":
		return ast.Equiv, false, nil
	}
	if isVarName(tok) {
		return ast.Var, true, nil
	}
	return 0, false, parseErrorf("invalid token %q", tok)
}

func isVarName(s string) bool {
	if s == "" || !isAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}
