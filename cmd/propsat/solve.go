package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/proplogic/propsat"
	"github.com/proplogic/propsat/lexer"
)

// SolveCommand implements `propsat solve [-log-level=LEVEL] [FILE]`: parse
// a reverse-Polish formula, Tseitin-encode it, and print sat/unsat.
type SolveCommand struct {
	Meta
}

func (c *SolveCommand) Help() string {
	return `Usage: propsat solve [-log-level=LEVEL] [FILE]

  Reads a reverse-Polish propositional formula from FILE, or from standard
  input if FILE is omitted, and prints "sat" or "unsat".

Options:

  -log-level=LEVEL  Log level (trace, debug, info, warn, error). Default: error.
`
}

func (c *SolveCommand) Synopsis() string {
	return "Decide satisfiability of a formula"
}

func (c *SolveCommand) Run(args []string) int {
	flags := flag.NewFlagSet("solve", flag.ContinueOnError)
	logLevel := flags.String("log-level", "error", "log level")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	r, closeFn, err := openInput(flags.Args())
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error opening input: %s", err))
		return 1
	}
	defer closeFn()

	log := c.logger(*logLevel)
	result, err := propsat.Solve(lexer.New(r), log)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing formula: %s", err))
		return 1
	}

	if result.SAT {
		c.Ui.Output("sat")
	} else {
		c.Ui.Output("unsat")
	}
	return 0
}

// openInput opens args[0] if present, else returns stdin. The returned
// close function is always safe to call.
func openInput(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
