package expense

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Progress is a snapshot of the spending against the savings target.
type Progress struct {
	Target  decimal.Decimal
	Total   decimal.Decimal // sum of all expenses
	Savings decimal.Decimal // Target - Total, negative once exceeded
}

// OnTrack reports whether the expenses are still within the target.
func (p Progress) OnTrack() bool { return !p.Savings.IsNegative() }

// Exceeded returns by how much the target has been exceeded, zero when on track.
func (p Progress) Exceeded() decimal.Decimal {
	if p.OnTrack() {
		return decimal.Zero
	}
	return p.Savings.Neg()
}

// CategoryTotal aggregates the records sharing a category.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// ByCategory returns the totals per category, sorted by category name.
func (l *Ledger) ByCategory() []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, rec := range l.records {
		i, ok := index[rec.category]
		if !ok {
			i = len(totals)
			index[rec.category] = i
			totals = append(totals, CategoryTotal{Category: rec.category, Total: decimal.Zero})
		}
		totals[i].Count++
		totals[i].Total = totals[i].Total.Add(rec.amount)
	}
	slices.SortFunc(totals, func(a, b CategoryTotal) int { return strings.Compare(a.Category, b.Category) })
	return totals
}
