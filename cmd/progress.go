package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type progressCmd struct {
	target string
}

func (*progressCmd) Name() string     { return "progress" }
func (*progressCmd) Synopsis() string { return "compare the expenses with a savings target" }
func (*progressCmd) Usage() string {
	return `xps progress -target <amount>

  Displays the total of the expenses and how much is left of the savings
  target, or by how much it has been exceeded.
`
}

func (c *progressCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "0", "Savings target.")
}

func (c *progressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := decimal.NewFromString(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid target %q: %v\n", c.target, err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger(dateMode())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger.SetSavingsTarget(target)

	p := ledger.Progress()
	fmt.Fprintf(stdout, "Total expenses: %s\n", renderer.Amount(symbol(), p.Total))
	if p.OnTrack() {
		fmt.Fprintf(stdout, "You are on track! Savings: %s\n", renderer.Amount(symbol(), p.Savings))
	} else {
		fmt.Fprintf(stdout, "You have exceeded your target by: %s\n", renderer.Amount(symbol(), p.Exceeded()))
	}
	return subcommands.ExitSuccess
}
