package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/expense"
)

const (
	tableBorder = "|---------------------|------------|--------------|-----------------|"
	tableHeader = "| Description         | Amount     |    Date      | Category        |"
)

// TableOptions configures the rendering of a table of records.
type TableOptions struct {
	Symbol    string // currency symbol prefixed to amounts
	Precision int    // number of decimals of amounts
}

// Table writes records as a fixed width table, in the given order.
//
// Only descriptions are truncated, amounts and categories wider than their
// column push the rest of the row.
//
// Nothing is written for an empty list, and Table returns false so that the
// caller can print a notice instead.
func Table(w io.Writer, records []expense.Record, opts TableOptions) bool {
	section := Header(func(w io.Writer) {
		fmt.Fprintln(w, tableBorder)
		fmt.Fprintln(w, tableHeader)
		fmt.Fprintln(w, tableBorder)
	}).Footer(func(w io.Writer) {
		fmt.Fprintln(w, tableBorder)
	})

	for _, r := range records {
		section.PrintHeader(w)
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			cell(r.Description(), 19),
			pad(FixedAmount(opts.Symbol, r.Amount(), opts.Precision), 11),
			cell(r.Date().String(), 12),
			pad(r.Category(), 15),
		)
	}
	section.PrintFooter(w)
	return section.Printed()
}

// RecordDetails writes the fields of r, one per line.
func RecordDetails(w io.Writer, r expense.Record) {
	fmt.Fprintf(w, "Description : %s\n", r.Description())
	fmt.Fprintf(w, "Amount : %s\n", r.Amount())
	fmt.Fprintf(w, "Date : %s\n", r.Date())
	fmt.Fprintf(w, "Category : %s\n", r.Category())
}
