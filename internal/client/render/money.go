// Package render draws the client's screens as plain text tables.
package render

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Amounts follow the ru-RU convention: a no-break space groups thousands and
// a comma separates kopecks, which are shown only when present.
const (
	wholeFormat = "#\u00a0###."
	centsFormat = "#\u00a0###,##"
	currency    = "\u00a0₽"
)

// Money formats an amount in rubles, e.g. "1 234,50 ₽".
func Money(d decimal.Decimal) string {
	d = d.Round(2)
	f := d.InexactFloat64()
	if d.IsInteger() {
		return humanize.FormatFloat(wholeFormat, f) + currency
	}
	return humanize.FormatFloat(centsFormat, f) + currency
}

// Signed prefixes the amount with + or -, as transaction lists show it.
func Signed(d decimal.Decimal, income bool) string {
	if income {
		return "+" + Money(d.Abs())
	}
	return "-" + Money(d.Abs())
}

// Percent formats a share with no decimals, e.g. "67%".
func Percent(d decimal.Decimal) string {
	return d.Round(0).String() + "%"
}
