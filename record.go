package expense

import (
	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// Record is a single expense entry.
//
// A Record is a value: it is never modified once created.
type Record struct {
	description string
	amount      decimal.Decimal
	on          date.Date
	category    string
}

// NewRecord creates a Record dated today.
func NewRecord(description string, amount decimal.Decimal, category string) Record {
	return NewRecordOn(date.Today(), description, amount, category)
}

// NewRecordOn creates a Record for a known day.
func NewRecordOn(on date.Date, description string, amount decimal.Decimal, category string) Record {
	return Record{description: description, amount: amount, on: on, category: category}
}

func (r Record) Description() string     { return r.description }
func (r Record) Amount() decimal.Decimal { return r.amount }
func (r Record) Date() date.Date         { return r.on }
func (r Record) Category() string        { return r.category }

// Equal reports whether r and x hold the same values.
func (r Record) Equal(x Record) bool {
	return r.description == x.description &&
		r.amount.Equal(x.amount) &&
		r.on == x.on &&
		r.category == x.category
}

// ByDate orders records by day.
func ByDate(a, b Record) int { return a.on.Compare(b.on) }

// ByAmount orders records by amount.
func ByAmount(a, b Record) int { return a.amount.Cmp(b.amount) }
