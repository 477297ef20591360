package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// CurrencySymbol returns the symbol of an ISO 4217 currency code ("$" for
// "USD"), or the code itself when it has no known symbol.
func CurrencySymbol(code string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, code).Currency()
	if cur.Grapheme != "" {
		return cur.Grapheme
	}
	return cur.Code
}

// Amount formats d with its currency symbol, using as many digits as needed.
func Amount(symbol string, d decimal.Decimal) string { return symbol + d.String() }

// FixedAmount formats d with its currency symbol and exactly precision decimals.
func FixedAmount(symbol string, d decimal.Decimal, precision int) string {
	return symbol + d.StringFixed(int32(precision))
}
