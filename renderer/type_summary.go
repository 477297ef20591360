package renderer

import (
	"github.com/etnz/expense"
)

// Summary is the view of a ledger used by the summary report.
// Amounts are already formatted with their currency symbol.
type Summary struct {
	Count      int
	Total      string
	Categories []SummaryCategory
	// HasTarget is false when no savings target was given.
	HasTarget bool
	Target    string
	OnTrack   bool
	Savings   string
	Exceeded  string
}

// SummaryCategory is one row of the per category table.
type SummaryCategory struct {
	Category string
	Count    int
	Total    string
}

// NewSummary builds the summary of l. The savings section is only filled
// when withTarget is set, a zero target being a valid one.
func NewSummary(l *expense.Ledger, opts TableOptions, withTarget bool) *Summary {
	p := l.Progress()
	s := &Summary{
		Count:     l.Len(),
		Total:     FixedAmount(opts.Symbol, p.Total, opts.Precision),
		HasTarget: withTarget,
		Target:    FixedAmount(opts.Symbol, p.Target, opts.Precision),
		OnTrack:   p.OnTrack(),
		Savings:   FixedAmount(opts.Symbol, p.Savings, opts.Precision),
		Exceeded:  FixedAmount(opts.Symbol, p.Exceeded(), opts.Precision),
	}
	for _, c := range l.ByCategory() {
		name := c.Category
		if name == "" {
			name = "(none)"
		}
		s.Categories = append(s.Categories, SummaryCategory{
			Category: name,
			Count:    c.Count,
			Total:    FixedAmount(opts.Symbol, c.Total, opts.Precision),
		})
	}
	return s
}
