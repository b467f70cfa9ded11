package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// CurrencySymbol returns the display symbol for an ISO 4217 code, or the code itself.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return sym
	}
	return strings.ToUpper(code)
}

// FormatCurrency renders an amount as "<symbol> 12,345" (or with two decimals when
// the amount has a fractional part), grouping thousands with commas.
func FormatCurrency(amount decimal.Decimal, code string) string {
	places := int32(0)
	if !amount.Equal(amount.Truncate(0)) {
		places = 2
	}

	text := amount.Abs().StringFixed(places)
	whole, frac, _ := strings.Cut(text, ".")

	var b strings.Builder
	b.WriteString(CurrencySymbol(code))
	b.WriteByte(' ')
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(whole))
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
