// Package cmd implements the CLI application to track expenses.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&shellCmd{}, "")
	c.Register(&topicCmd{}, "")

	c.Register(&addCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&viewCmd{}, "reports")
	c.Register(&filterCmd{}, "reports")
	c.Register(&progressCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile      = flag.String("ledger-file", "expenses.txt", "Path to the ledger file")
	currency        = flag.String("currency", "USD", "ISO 4217 code of the currency, used for its symbol")
	colorMode       = flag.String("color", "auto", "When to use colors: auto, always or never")
	restamp         = flag.Bool("restamp", false, "Date loaded expenses today instead of using the date in the file")
	viewPrecision   = flag.Int("view-precision", 1, "Number of decimals of amounts when viewing expenses")
	filterPrecision = flag.Int("filter-precision", 2, "Number of decimals of amounts when filtering expenses")
	// Verbose enables debug logs.
	Verbose = flag.Bool("v", false, "Verbose output")
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// dateMode returns how dates are read from the ledger file.
func dateMode() expense.DateMode {
	if *restamp {
		return expense.Restamp
	}
	return expense.KeepDate
}

// symbol returns the currency symbol of the app currency.
func symbol() string { return renderer.CurrencySymbol(*currency) }

func tableOptions(precision int) renderer.TableOptions {
	return renderer.TableOptions{Symbol: symbol(), Precision: precision}
}

// writeMode returns the date mode for a ledger that is written back to the
// ledger file: persisted dates are always kept.
func writeMode() expense.DateMode {
	if *restamp {
		logger.Warn("-restamp is ignored when the ledger file is rewritten")
	}
	return expense.KeepDate
}

// DecodeLedger decodes the app ledger file.
// A missing file is an empty ledger.
func DecodeLedger(mode expense.DateMode) (*expense.Ledger, error) {
	l := expense.NewLedger()
	_, err := l.LoadFile(*ledgerFile, mode)
	if errors.Is(err, fs.ErrNotExist) {
		logger.WithField("file", *ledgerFile).Warn("ledger file does not exist, using an empty ledger instead")
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	logger.WithField("file", *ledgerFile).WithField("count", l.Len()).Debug("ledger loaded")
	return l, nil
}

// EncodeLedger writes the ledger into the app ledger file.
func EncodeLedger(l *expense.Ledger) error {
	if err := expense.SaveFile(*ledgerFile, l); err != nil {
		return err
	}
	logger.WithField("file", *ledgerFile).WithField("count", l.Len()).Debug("ledger saved")
	return nil
}

// parseSort returns the ordering named s, or nil if s is empty.
func parseSort(s string) (func(a, b expense.Record) int, error) {
	switch s {
	case "":
		return nil, nil
	case "date":
		return expense.ByDate, nil
	case "amount":
		return expense.ByAmount, nil
	default:
		return nil, fmt.Errorf("unknown sort order: %q, want date or amount", s)
	}
}
