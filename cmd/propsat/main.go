// Command propsat is a thin driver: it wires standard I/O to the parser,
// Tseitin encoder, and DPLL solver, and reports SAT/UNSAT or a CNF
// rendering. No correctness properties are claimed for this layer.
package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     "propsat",
		Args:     args,
		HelpFunc: cli.BasicHelpFunc("propsat"),
		Commands: map[string]cli.CommandFactory{
			"solve": func() (cli.Command, error) {
				return &SolveCommand{Meta: Meta{Ui: ui}}, nil
			},
			"convert": func() (cli.Command, error) {
				return &ConvertCommand{Meta: Meta{Ui: ui}}, nil
			},
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return exitStatus
}

// Meta holds state shared by every subcommand: the UI to write through.
// Its logger method builds a logger configured from the -log-level flag.
type Meta struct {
	Ui cli.Ui
}

func (m *Meta) logger(levelFlag string) hclog.Logger {
	level := hclog.LevelFromString(levelFlag)
	if level == hclog.NoLevel {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:        "propsat",
		Level:       level,
		Output:      errWriter{m.Ui},
		DisableTime: true,
	})
}

// errWriter adapts a cli.Ui's error stream to an io.Writer for hclog.
type errWriter struct {
	ui cli.Ui
}

func (w errWriter) Write(p []byte) (int, error) {
	w.ui.Error(string(p))
	return len(p), nil
}
