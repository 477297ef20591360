package expense

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/expense/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to import expenses from foreign formats.

// ImportOptions describes where to find expenses in a JSON document.
type ImportOptions struct {
	Path        string // JSONPath selecting the expense objects
	Description string // property holding the description
	Amount      string // property holding the amount, as a number or a string
	Category    string // property holding the category
	Date        string // property holding the date, optional
	// DefaultCategory is used when the category property is absent.
	DefaultCategory string
}

// DefaultImportOptions reads a top level array of objects with properties
// named after the record fields.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		Path:            "$[*]",
		Description:     "description",
		Amount:          "amount",
		Category:        "category",
		Date:            "date",
		DefaultCategory: "Uncategorized",
	}
}

// ImportJSON reads a JSON document from r and converts the objects selected
// by opts.Path into records.
//
// Objects with no date property are dated today.
func ImportJSON(r io.Reader, opts ImportOptions) ([]Record, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON document: %w", err)
	}

	selected, err := jsonpath.Get(opts.Path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", opts.Path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of answers or a single answer
	items, ok := selected.([]any)
	if !ok {
		items = []any{selected}
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		rec, err := importItem(item, opts)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func importItem(item any, opts ImportOptions) (Record, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Record{}, &FormatError{Text: fmt.Sprint(item), Reason: "not a JSON object"}
	}

	var amount decimal.Decimal
	switch v := obj[opts.Amount].(type) {
	case float64:
		amount = decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return Record{}, &FormatError{Text: v, Reason: "invalid amount", Err: err}
		}
		amount = d
	case nil:
		return Record{}, &FormatError{Text: fmt.Sprint(obj), Reason: fmt.Sprintf("missing %q property", opts.Amount)}
	default:
		return Record{}, &FormatError{Text: fmt.Sprint(v), Reason: "amount is neither a number nor a string"}
	}

	on := date.Today()
	if opts.Date != "" {
		switch v := obj[opts.Date].(type) {
		case nil:
		case string:
			d, err := date.Parse(v)
			if err != nil {
				return Record{}, &FormatError{Text: v, Reason: "invalid date", Err: err}
			}
			on = d
		default:
			return Record{}, &FormatError{Text: fmt.Sprint(v), Reason: "date is not a string"}
		}
	}

	description, _ := obj[opts.Description].(string)
	category, ok := obj[opts.Category].(string)
	if !ok || category == "" {
		category = opts.DefaultCategory
	}
	return NewRecordOn(on, description, amount, category), nil
}
