package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	sort string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `xps fmt [-sort date|amount]

  Validates and formats the ledger file. This command reads all expenses,
  stops on the first malformed line, and writes them back with the canonical
  separators, dropping blank lines. With -sort the expenses are sorted first.

Usage Examples:
# Rewrites the ledger file sorted by date.
$ xps fmt -sort date

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.sort, "sort", "", "Sort the expenses by 'date' or 'amount'.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cmp, err := parseSort(p.sort)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger(writeMode())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if cmp != nil {
		ledger.SortBy(cmp)
	}
	if err := EncodeLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Formatted %d expenses in %s\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
