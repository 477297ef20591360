package expense

import (
	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// rec is a helper for test to create a record from consts.
func rec(day, description string, amount float64, category string) Record {
	return NewRecordOn(date.MustParse(day), description, decimal.NewFromFloat(amount), category)
}

// D is a helper for test to create a decimal from a string.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func descriptions(records []Record) []string {
	var names []string
	for _, r := range records {
		names = append(names, r.Description())
	}
	return names
}
