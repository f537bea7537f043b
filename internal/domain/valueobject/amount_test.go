package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "50", want: "50"},
		{name: "two decimals", input: "1234.56", want: "1234.56"},
		{name: "surrounding whitespace", input: "  12.5 ", want: "12.5"},
		{name: "dollar sign", input: "$99.99", want: "99.99"},
		{name: "thousands separator", input: "$1,234.50", want: "1234.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "empty", input: "", wantErr: domainerror.ErrInvalidAmount},
		{name: "only whitespace", input: "   ", wantErr: domainerror.ErrInvalidAmount},
		{name: "letters", input: "abc", wantErr: domainerror.ErrInvalidAmount},
		{name: "trailing garbage", input: "12abc", wantErr: domainerror.ErrInvalidAmount},
		{name: "exponent", input: "1e3", wantErr: domainerror.ErrInvalidAmount},
		{name: "NaN", input: "NaN", wantErr: domainerror.ErrInvalidAmount},
		{name: "infinity", input: "Infinity", wantErr: domainerror.ErrInvalidAmount},
		{name: "double minus", input: "--5", wantErr: domainerror.ErrInvalidAmount},
		{name: "negative", input: "-5", wantErr: domainerror.ErrNegativeAmount},
		{name: "negative dollars", input: "-$12.00", wantErr: domainerror.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSignedAmount_AllowsNegative(t *testing.T) {
	got, err := ParseSignedAmount("-$12.00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(-12)) {
		t.Errorf("got %s, want -12", got)
	}
}

func TestTrackerConfig_IsMoneyLeak(t *testing.T) {
	cfg := DefaultTrackerConfig()

	tests := []struct {
		amount string
		want   bool
	}{
		{"0", true},
		{"199.99", true},
		{"200", false},
		{"350", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			if got := cfg.IsMoneyLeak(decimal.RequireFromString(tt.amount)); got != tt.want {
				t.Errorf("IsMoneyLeak(%s) = %v, want %v", tt.amount, got, tt.want)
			}
		})
	}
}

func TestTrackerConfig_WithOverrides(t *testing.T) {
	cfg := DefaultTrackerConfig().WithOverrides(decimal.NewFromInt(500), decimal.Zero)

	if !cfg.DefaultGoal.Equal(decimal.NewFromInt(500)) {
		t.Errorf("DefaultGoal = %s, want 500", cfg.DefaultGoal)
	}
	if !cfg.Milestone.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Milestone = %s, want default 20000", cfg.Milestone)
	}
}
