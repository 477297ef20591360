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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	target string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display expenses per category and the savings progress" }
func (*summaryCmd) Usage() string {
	return `xps summary [-target <amount>]

  Displays the total of the expenses for each category, the grand total and,
  when a target is given, the savings progress.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.target, "target", "", "Savings target. The progress section is omitted if empty.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(dateMode())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.target != "" {
		target, err := decimal.NewFromString(c.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid target %q: %v\n", c.target, err)
			return subcommands.ExitUsageError
		}
		ledger.SetSavingsTarget(target)
	}

	s := renderer.NewSummary(ledger, tableOptions(*filterPrecision), c.target != "")
	printMarkdown(renderer.RenderSummary(s))
	return subcommands.ExitSuccess
}
