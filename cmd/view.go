package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	sort  string
	write bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display all the expenses" }
func (*viewCmd) Usage() string {
	return `xps view [-sort date|amount] [-w]

  Displays all the expenses of the ledger file as a table, in the file order
  or sorted by date or amount.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort the expenses by 'date' or 'amount' before displaying them.")
	f.BoolVar(&c.write, "w", false, "Write the sorted expenses back to the ledger file.")
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmp, err := parseSort(c.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	mode := dateMode()
	if c.write {
		mode = writeMode()
	}
	ledger, err := DecodeLedger(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cmp != nil {
		ledger.SortBy(cmp)
	}

	if !renderer.Table(stdout, ledger.Records(), tableOptions(*viewPrecision)) {
		fmt.Fprintln(stdout, "No expenses recorded yet.")
	}

	if c.write {
		if err := EncodeLedger(ledger); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing ledger file: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
