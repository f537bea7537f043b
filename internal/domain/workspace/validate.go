package workspace

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerror "github.com/eternal-wealth/toolkit/internal/domain/error"
	"github.com/eternal-wealth/toolkit/internal/domain/valueobject"
)

// MaxTextLength is the longest accepted value for any free-text field.
const MaxTextLength = 500

func requiredText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domainerror.NewEntryError(
			domainerror.ErrCodeMissingRequiredField,
			field,
			field+" is required",
			domainerror.ErrMissingRequiredField,
		)
	}
	return checkLength(field, trimmed)
}

func optionalText(field, value string) (string, error) {
	return checkLength(field, strings.TrimSpace(value))
}

func checkLength(field, value string) (string, error) {
	if utf8.RuneCountInString(value) > MaxTextLength {
		return "", domainerror.NewEntryError(
			domainerror.ErrCodeFieldTooLong,
			field,
			fmt.Sprintf("%s must be at most %d characters", field, MaxTextLength),
			domainerror.ErrFieldTooLong,
		)
	}
	return value, nil
}

func entryAmount(field, text string) (decimal.Decimal, error) {
	amount, err := valueobject.ParseAmount(text)
	if err == nil {
		return amount, nil
	}

	if errors.Is(err, domainerror.ErrNegativeAmount) {
		return decimal.Zero, domainerror.NewEntryError(
			domainerror.ErrCodeNegativeAmount,
			field,
			field+" must not be negative",
			err,
		)
	}
	return decimal.Zero, domainerror.NewEntryError(
		domainerror.ErrCodeInvalidAmount,
		field,
		field+" must be a number",
		err,
	)
}
