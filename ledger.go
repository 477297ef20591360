package expense

import (
	"iter"
	"slices"

	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// Ledger represents a list of expense records and a savings target.
//
// Records are kept in insertion order until explicitly sorted. The order of
// the records slice is the only order there is.
type Ledger struct {
	records       []Record
	savingsTarget decimal.Decimal
}

// NewLedger creates an empty ledger with a zero savings target.
func NewLedger() *Ledger {
	return &Ledger{records: make([]Record, 0)}
}

// Add records a new expense dated today, and returns it.
func (l *Ledger) Add(description string, amount decimal.Decimal, category string) Record {
	r := NewRecord(description, amount, category)
	l.records = append(l.records, r)
	return r
}

// Append adds records at the end of the ledger.
func (l *Ledger) Append(records ...Record) {
	l.records = append(l.records, records...)
}

// Replace swaps all the records of the ledger at once.
func (l *Ledger) Replace(records []Record) {
	l.records = slices.Clone(records)
	if l.records == nil {
		l.records = make([]Record, 0)
	}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of the records in ledger order.
func (l *Ledger) Records() []Record { return slices.Clone(l.records) }

// All iterates over the records in ledger order.
func (l *Ledger) All() iter.Seq2[int, Record] { return slices.All(l.records) }

// SortBy reorders the records in place using cmp. The sort is stable: records
// that compare equal keep their relative order.
func (l *Ledger) SortBy(cmp func(a, b Record) int) {
	slices.SortStableFunc(l.records, cmp)
}

// SortByDate reorders the records from the oldest to the newest.
func (l *Ledger) SortByDate() { l.SortBy(ByDate) }

// SortByAmount reorders the records from the smallest to the largest amount.
func (l *Ledger) SortByAmount() { l.SortBy(ByAmount) }

// Filter returns the records dated within r, in ledger order.
func (l *Ledger) Filter(r date.Range) []Record {
	var found []Record
	for _, rec := range l.records {
		if r.Contains(rec.on) {
			found = append(found, rec)
		}
	}
	return found
}

// FilterByDateRange parses start and end as YYYY-MM-DD and returns the
// records dated between them, both included.
func (l *Ledger) FilterByDateRange(start, end string) ([]Record, date.Range, error) {
	from, err := date.Parse(start)
	if err != nil {
		return nil, date.Range{}, &DateFormatError{Value: start, Err: err}
	}
	to, err := date.Parse(end)
	if err != nil {
		return nil, date.Range{}, &DateFormatError{Value: end, Err: err}
	}
	r := date.NewRange(from, to)
	return l.Filter(r), r, nil
}

// Total returns the sum of all amounts.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, rec := range l.records {
		total = total.Add(rec.amount)
	}
	return total
}

// SetSavingsTarget replaces the savings target.
func (l *Ledger) SetSavingsTarget(target decimal.Decimal) { l.savingsTarget = target }

// SavingsTarget returns the current savings target.
func (l *Ledger) SavingsTarget() decimal.Decimal { return l.savingsTarget }

// Progress computes the savings left once all expenses are paid.
func (l *Ledger) Progress() Progress {
	total := l.Total()
	return Progress{
		Target:  l.savingsTarget,
		Total:   total,
		Savings: l.savingsTarget.Sub(total),
	}
}
