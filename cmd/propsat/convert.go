package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/proplogic/propsat"
	"github.com/proplogic/propsat/dimacs"
	"github.com/proplogic/propsat/lexer"
	"github.com/proplogic/propsat/parser"
)

// ConvertCommand implements `propsat convert [-log-level=LEVEL] [-check]
// [FILE]`: parse a reverse-Polish formula, Tseitin-encode it, and print
// the resulting CNF in DIMACS-style text.
type ConvertCommand struct {
	Meta
}

func (c *ConvertCommand) Help() string {
	return `Usage: propsat convert [-log-level=LEVEL] [-check] [FILE]

  Reads a reverse-Polish propositional formula from FILE, or from standard
  input if FILE is omitted, Tseitin-encodes it, and prints the resulting
  CNF in DIMACS-style text.

Options:

  -log-level=LEVEL  Log level (trace, debug, info, warn, error). Default: error.
  -check             Validate every token in the input before encoding,
                      reporting every malformed token instead of stopping
                      at the first one.
`
}

func (c *ConvertCommand) Synopsis() string {
	return "Tseitin-encode a formula to CNF"
}

func (c *ConvertCommand) Run(args []string) int {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	logLevel := flags.String("log-level", "error", "log level")
	check := flags.Bool("check", false, "validate all tokens before encoding")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	r, closeFn, err := openInput(flags.Args())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error opening input: %s", err))
		return 1
	}
	defer closeFn()

	var tokens []string
	tok := lexer.New(r)
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		tokens = append(tokens, t)
	}

	if *check {
		var result *multierror.Error
		for _, t := range tokens {
			if err := parser.ValidateToken(t); err != nil {
				result = multierror.Append(result, err)
			}
		}
		if result.ErrorOrNil() != nil {
			c.Ui.Error(fmt.Sprintf("Found %d malformed token(s):\n%s", len(result.Errors), result.Error()))
			return 1
		}
	}

	log := c.logger(*logLevel)
	log.Debug("encoding formula", "tokens", len(tokens))

	_, cnfResult, err := propsat.Encode(&sliceTokenizer{tokens: tokens})
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing formula: %s", err))
		return 1
	}

	var b strings.Builder
	if err := dimacs.WriteCNF(&b, cnfResult); err != nil {
		c.Ui.Error(fmt.Sprintf("Error writing CNF: %s", err))
		return 1
	}
	c.Ui.Output(strings.TrimRight(b.String(), "\n"))
	return 0
}

// sliceTokenizer replays a pre-scanned slice of tokens, used so -check
// mode can validate the whole token stream up front and then still feed
// it to the parser without re-reading the input.
type sliceTokenizer struct {
	tokens []string
	i      int
}

func (s *sliceTokenizer) Next() (string, bool) {
	if s.i >= len(s.tokens) {
		return "", false
	}
	t := s.tokens[s.i]
	s.i++
	return t, true
}
