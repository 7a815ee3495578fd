// Package lexer is the external tokenizer collaborator: it splits an
// input stream into whitespace-separated tokens for parser.Parse. It is
// kept deliberately thin, outside the solver's core — a straight
// bufio.Scanner word split, matching the same approach the DIMACS reader
// uses for its own line tokenization.
package lexer

import (
	"bufio"
	"io"
)

// Scanner adapts a bufio.Scanner in ScanWords mode to the parser.Tokenizer
// interface.
type Scanner struct {
	s *bufio.Scanner
}

// New returns a Scanner over r's contents, splitting on whitespace.
func New(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Scanner{s: s}
}

// Next returns the next whitespace-delimited token, or ok == false once
// the stream is exhausted or a read error occurs.
func (sc *Scanner) Next() (tok string, ok bool) {
	if !sc.s.Scan() {
		return "", false
	}
	return sc.s.Text(), true
}

// Err returns the first non-EOF error encountered while scanning, if any.
func (sc *Scanner) Err() error {
	return sc.s.Err()
}
