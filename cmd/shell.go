package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/etnz/expense/shell"
	"github.com/google/subcommands"
)

type shellCmd struct {
	load bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start the interactive menu (default command)" }
func (*shellCmd) Usage() string {
	return `xps shell [-load]

  Starts the interactive menu to add, view, sort, filter, save and load
  expenses, and to follow a savings target. This is what xps does when no
  command is given.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.load, "load", false, "Load the ledger file before displaying the menu.")
}

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return RunShell(ctx, os.Stdin, stdout, c.load)
}

// RunShell runs the interactive menu on in and out.
func RunShell(ctx context.Context, in io.Reader, out io.Writer, load bool) subcommands.ExitStatus {
	mode, err := renderer.ParseColorMode(*colorMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger := expense.NewLedger()
	if load {
		if ledger, err = DecodeLedger(dateMode()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	sh := shell.New(in, out, ledger, shell.Options{
		Style:           renderer.NewStyle(out, mode),
		Symbol:          symbol(),
		ViewPrecision:   *viewPrecision,
		FilterPrecision: *filterPrecision,
		DateMode:        dateMode(),
		Logger:          logger,
	})
	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
