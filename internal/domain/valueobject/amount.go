package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
)

// ParseAmount parses user-entered text into a decimal amount.
// Surrounding whitespace, one leading "$" and thousands separators are ignored.
// Empty, unparseable and non-finite input returns ErrInvalidAmount; negative
// values return ErrNegativeAmount.
func ParseAmount(text string) (decimal.Decimal, error) {
	value, err := ParseSignedAmount(text)
	if err != nil {
		return decimal.Zero, err
	}
	if value.IsNegative() {
		return decimal.Zero, domainerror.ErrNegativeAmount
	}
	return value, nil
}

// ParseSignedAmount is ParseAmount without the lower bound.
func ParseSignedAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	negative := false
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = strings.TrimSpace(cleaned[1:])
	}
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" || strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "+") {
		return decimal.Zero, domainerror.ErrInvalidAmount
	}

	// decimal accepts exponents; reject anything that is not plain digits and a point
	for _, r := range cleaned {
		if (r < '0' || r > '9') && r != '.' {
			return decimal.Zero, fmt.Errorf("%w: %q", domainerror.ErrInvalidAmount, text)
		}
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domainerror.ErrInvalidAmount, text)
	}
	if negative {
		value = value.Neg()
	}
	return value, nil
}
