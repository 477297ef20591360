package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	description string
	amount      string
	category    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an expense dated today" }
func (*addCmd) Usage() string {
	return `xps add -d <description> -a <amount> -c <category>

  Appends an expense dated today to the ledger file.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "Description of the expense.")
	f.StringVar(&c.amount, "a", "", "Amount of the expense.")
	f.StringVar(&c.category, "c", "", "Category of the expense.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -a flag is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	r := expense.NewRecord(c.description, amount, c.category)
	if err := expense.AppendFile(*ledgerFile, r); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.WithField("record", r.Encode()).Debug("expense appended")
	fmt.Fprintf(stdout, "Expense added to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
