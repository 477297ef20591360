package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/expense"
	"github.com/google/subcommands"
)

type importCmd struct {
	opts expense.ImportOptions
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append expenses read from a JSON document" }
func (*importCmd) Usage() string {
	return `xps import [options] <file.json|->

  Reads a JSON document, for instance a bank export, selects the expense
  objects with a JSONPath expression and appends them to the ledger file.
  Use '-' to read the document from the standard input.

Usage Examples:
# Import a top level array of {"description","amount","category","date"} objects.
$ xps import expenses.json

# Import a bank export.
$ xps import -path '$.transactions[*]' -desc label -amount value -category kind -date booked export.json

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	d := expense.DefaultImportOptions()
	f.StringVar(&c.opts.Path, "path", d.Path, "JSONPath expression selecting the expense objects.")
	f.StringVar(&c.opts.Description, "desc", d.Description, "Property holding the description.")
	f.StringVar(&c.opts.Amount, "amount", d.Amount, "Property holding the amount.")
	f.StringVar(&c.opts.Category, "category", d.Category, "Property holding the category.")
	f.StringVar(&c.opts.Date, "date", d.Date, "Property holding the date (YYYY-MM-DD). Expenses without one are dated today.")
	f.StringVar(&c.opts.DefaultCategory, "default-category", d.DefaultCategory, "Category of expenses without one.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one file argument.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	records, err := expense.ImportJSON(r, c.opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	if err := expense.AppendFile(*ledgerFile, records...); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.WithField("source", name).WithField("count", len(records)).Debug("expenses imported")
	fmt.Fprintf(stdout, "Imported %d expenses into %s\n", len(records), *ledgerFile)
	return subcommands.ExitSuccess
}
