package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/expense"
	"github.com/etnz/expense/renderer"
)

func (s *Shell) add() error {
	style := s.opts.Style.Prompt
	description, err := s.prompt(style, "Enter expense description:")
	if err != nil {
		return err
	}
	amount, ok, err := s.promptDecimal(style, "Enter expense amount:")
	if err != nil || !ok {
		return err
	}
	category, err := s.prompt(style, "Enter expense category:")
	if err != nil {
		return err
	}

	r := s.ledger.Add(description, amount, category)
	s.log.WithField("record", r.Encode()).Debug("expense added")
	fmt.Fprintln(s.out, "Expense added successfully!")
	return nil
}

func (s *Shell) view() {
	opts := renderer.TableOptions{Symbol: s.opts.Symbol, Precision: s.opts.ViewPrecision}
	if !renderer.Table(s.out, s.ledger.Records(), opts) {
		fmt.Fprintln(s.out, "No expenses recorded yet.")
	}
}

func (s *Shell) sort() error {
	style := s.opts.Style.Option
	s.println(style, "Sort expenses By : ")
	s.println(style, "1. Date")
	s.println(style, "2. Amount")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	switch line = strings.TrimSpace(line); line {
	case "1":
		s.ledger.SortByDate()
		fmt.Fprintln(s.out, "Expenses sorted by date.")
	case "2":
		s.ledger.SortByAmount()
		fmt.Fprintln(s.out, "Expenses sorted by amount.")
	default:
		s.invalidChoice()
	}
	return nil
}

func (s *Shell) filter() error {
	style := s.opts.Style.Option
	start, err := s.prompt(style, "Enter start date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	end, err := s.prompt(style, "Enter end date (YYYY-MM-DD):")
	if err != nil {
		return err
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	found, _, err := s.ledger.FilterByDateRange(start, end)
	var derr *expense.DateFormatError
	if errors.As(err, &derr) {
		s.log.WithError(err).Debug("invalid filter range")
		s.println(s.opts.Style.Error, "Invalid date format. Please use YYYY-MM-DD.")
		return nil
	}

	opts := renderer.TableOptions{Symbol: s.opts.Symbol, Precision: s.opts.FilterPrecision}
	if !renderer.Table(s.out, found, opts) {
		fmt.Fprintf(s.out, "No expenses found between %s and %s\n", start, end)
	}
	return nil
}

func (s *Shell) setTarget() error {
	target, ok, err := s.promptDecimal(s.opts.Style.Info, "Enter savings target:")
	if err != nil || !ok {
		return err
	}
	s.ledger.SetSavingsTarget(target)
	fmt.Fprintf(s.out, "Savings target set to: %s\n", renderer.Amount(s.opts.Symbol, target))
	return nil
}

func (s *Shell) progress() {
	p := s.ledger.Progress()
	if p.OnTrack() {
		s.println(s.opts.Style.Info, "You are on track! Savings: "+renderer.Amount(s.opts.Symbol, p.Savings))
		return
	}
	s.println(s.opts.Style.Info, "You have exceeded your target by: "+renderer.Amount(s.opts.Symbol, p.Exceeded()))
}

func (s *Shell) save() error {
	path, err := s.prompt(s.opts.Style.Title, "Enter filename to save expenses:")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	if err := expense.SaveFile(path, s.ledger); err != nil {
		s.log.WithError(err).WithField("file", path).Warn("save failed")
		s.println(s.opts.Style.Error, "Error saving expenses to file: "+err.Error())
		return nil
	}
	s.log.WithField("file", path).WithField("count", s.ledger.Len()).Debug("ledger saved")
	fmt.Fprintln(s.out, "Expenses saved to file: "+path)
	return nil
}

func (s *Shell) load() error {
	path, err := s.prompt(s.opts.Style.Title, "Enter filename to load expenses:")
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	records, err := s.ledger.LoadFile(path, s.opts.DateMode)
	if err != nil {
		s.log.WithError(err).WithField("file", path).Warn("load failed")
		s.println(s.opts.Style.Error, "Error loading expenses from file: "+err.Error())
		return nil
	}
	for _, r := range records {
		renderer.RecordDetails(s.out, r)
	}
	s.log.WithField("file", path).WithField("count", len(records)).Debug("ledger loaded")
	fmt.Fprintln(s.out, "Expenses loaded from file: "+path)
	return nil
}
