// Package shell implements the interactive menu of the expense tracker.
//
// The shell is a synchronous loop: it prints the menu, reads one choice, runs
// the matching ledger operation and prints the result, until the user exits
// or the input ends.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Options configures the rendering and the file handling of a Shell.
type Options struct {
	Style           renderer.Style
	Symbol          string // currency symbol
	ViewPrecision   int    // decimals in the full table
	FilterPrecision int    // decimals in the filtered table
	DateMode        expense.DateMode
	Logger          logrus.FieldLogger
}

// Shell reads menu choices from an input stream and writes to an output stream.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	ledger *expense.Ledger
	opts   Options
	log    logrus.FieldLogger
}

// New creates a Shell operating on ledger.
func New(in io.Reader, out io.Writer, ledger *expense.Ledger, opts Options) *Shell {
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: ledger,
		opts:   opts,
		log:    log,
	}
}

const exitChoice = 9

// Run runs the menu loop until the user chooses to exit or the input ends,
// in which case it returns nil.
//
// It returns the error of the input stream if reading fails, or the context
// error if ctx is done before a new menu is displayed.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu()
		line, err := s.prompt(s.opts.Style.Title, "Enter your choice:")
		if err != nil {
			return endOfInput(err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.invalidChoice()
			continue
		}
		if choice == exitChoice {
			s.log.Debug("exit requested")
			return nil
		}
		if err := s.dispatch(choice); err != nil {
			return endOfInput(err)
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out)
	s.println(s.opts.Style.Title, "Expense Tracker Menu:")
	fmt.Fprintln(s.out, "1. Add Expense")
	fmt.Fprintln(s.out, "2. View All Expenses")
	fmt.Fprintln(s.out, "3. Sort Expenses")
	fmt.Fprintln(s.out, "4. Filter Expenses by Date Range")
	fmt.Fprintln(s.out, "5. Set Savings Target")
	fmt.Fprintln(s.out, "6. View Savings Progress")
	fmt.Fprintln(s.out, "7. Save Expenses to File")
	fmt.Fprintln(s.out, "8. Load Expenses from File")
	fmt.Fprintln(s.out, "9. Exit")
}

// dispatch runs the operation of a menu choice. Only input errors are returned.
func (s *Shell) dispatch(choice int) error {
	switch choice {
	case 1:
		return s.add()
	case 2:
		s.view()
	case 3:
		return s.sort()
	case 4:
		return s.filter()
	case 5:
		return s.setTarget()
	case 6:
		s.progress()
	case 7:
		return s.save()
	case 8:
		return s.load()
	default:
		s.invalidChoice()
	}
	return nil
}

func (s *Shell) invalidChoice() {
	s.println(s.opts.Style.Error, "Invalid choice. Please try again.")
}

// readLine returns the next input line, or io.EOF when the input is exhausted.
func (s *Shell) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("error reading from input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// prompt writes label and reads the answer.
func (s *Shell) prompt(style lipgloss.Style, label string) (string, error) {
	fmt.Fprint(s.out, style.Render(label), " ")
	return s.readLine()
}

// promptDecimal reads a number. ok is false if the answer is not a number,
// in which case the error was already reported.
func (s *Shell) promptDecimal(style lipgloss.Style, label string) (d decimal.Decimal, ok bool, err error) {
	line, err := s.prompt(style, label)
	if err != nil {
		return decimal.Zero, false, err
	}
	d, perr := decimal.NewFromString(strings.TrimSpace(line))
	if perr != nil {
		s.println(s.opts.Style.Error, fmt.Sprintf("Invalid number %q. Please try again.", strings.TrimSpace(line)))
		return decimal.Zero, false, nil
	}
	return d, true, nil
}

func (s *Shell) println(style lipgloss.Style, text string) {
	fmt.Fprintln(s.out, style.Render(text))
}

// endOfInput turns the end of the input into a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
