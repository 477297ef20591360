package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type filterCmd struct {
	start string
	end   string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "display the expenses between two dates" }
func (*filterCmd) Usage() string {
	return `xps filter -s <start> -e <end>

  Displays the expenses dated between start and end (YYYY-MM-DD), both
  included, in the ledger file order.
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "First day of the range (YYYY-MM-DD).")
	f.StringVar(&c.end, "e", "", "Last day of the range (YYYY-MM-DD).")
}

func (c *filterCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(dateMode())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	found, _, err := ledger.FilterByDateRange(c.start, c.end)
	var derr *expense.DateFormatError
	if errors.As(err, &derr) {
		fmt.Fprintf(os.Stderr, "Invalid date format %q. Please use YYYY-MM-DD.\n", derr.Value)
		return subcommands.ExitUsageError
	}

	if !renderer.Table(stdout, found, tableOptions(*filterPrecision)) {
		fmt.Fprintf(stdout, "No expenses found between %s and %s\n", c.start, c.end)
	}
	return subcommands.ExitSuccess
}
