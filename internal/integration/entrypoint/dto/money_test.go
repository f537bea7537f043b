package dto

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFormatter_Format(t *testing.T) {
	f := DefaultMoneyFormatter()

	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{name: "zero", amount: "0", expected: "$0.00"},
		{name: "grouping and padding", amount: "1234.5", expected: "$1,234.50"},
		{name: "negative", amount: "-12", expected: "-$12.00"},
		{name: "rounds to cents", amount: "10.005", expected: "$10.01"},
		{name: "millions", amount: "1000000", expected: "$1,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestMoneyFormatter_Money(t *testing.T) {
	got := DefaultMoneyFormatter().Money(decimal.RequireFromString("2500.5"))

	if got.Amount != "2500.50" {
		t.Errorf("expected amount 2500.50, got %s", got.Amount)
	}
	if got.Display != "$2,500.50" {
		t.Errorf("expected display $2,500.50, got %s", got.Display)
	}
}

func TestNewMoneyFormatter_Invalid(t *testing.T) {
	if _, err := NewMoneyFormatter("not a locale!", "USD"); err == nil {
		t.Error("expected error for invalid locale")
	}
	if _, err := NewMoneyFormatter("en-US", "XYZW"); err == nil {
		t.Error("expected error for invalid currency")
	}
}
