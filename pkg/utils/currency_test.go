package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		code   string
		want   string
	}{
		{"whole rupees", decimal.NewFromInt(12345), "INR", "₹ 12,345"},
		{"small amount", decimal.NewFromInt(999), "INR", "₹ 999"},
		{"exact thousands", decimal.NewFromInt(1000000), "INR", "₹ 1,000,000"},
		{"fractional", decimal.RequireFromString("1234.5"), "USD", "$ 1,234.50"},
		{"zero", decimal.Zero, "INR", "₹ 0"},
		{"negative", decimal.NewFromInt(-4500), "EUR", "€ -4,500"},
		{"unknown code", decimal.NewFromInt(10), "chf", "CHF 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.code))
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", CurrencySymbol("inr"))
	assert.Equal(t, "JPY", CurrencySymbol("JPY"))
}
