package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "R$ 0,00"},
		{"5", "R$ 5,00"},
		{"20.5", "R$ 20,50"},
		{"35.99", "R$ 35,99"},
		{"999.9", "R$ 999,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1000000", "R$ 1.000.000,00"},
		{"-12.30", "-R$ 12,30"},
	}

	for _, test := range tests {
		value, err := decimal.NewFromString(test.input)
		if err != nil {
			t.Fatalf("invalid decimal %q: %v", test.input, err)
		}
		if got := FormatBRL(value); got != test.expected {
			t.Errorf("FormatBRL(%s) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
