package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyResponse is an amount as an exact decimal string plus its display form.
type MoneyResponse struct {
	Amount  string `json:"amount"`
	Display string `json:"display"`
}

// MoneyFormatter renders amounts for a locale and currency, e.g. "$1,234.50"
// or "-$12.00" for en-US and USD.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

// NewMoneyFormatter creates a formatter for a BCP 47 locale and an ISO 4217 code.
func NewMoneyFormatter(locale, code string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	printer := message.NewPrinter(tag)
	return &MoneyFormatter{
		printer: printer,
		symbol:  printer.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// DefaultMoneyFormatter returns the en-US / USD formatter.
func DefaultMoneyFormatter() *MoneyFormatter {
	f, err := NewMoneyFormatter("en-US", "USD")
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders amount with two fraction digits and the currency symbol.
func (f *MoneyFormatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	value := rounded.Abs().InexactFloat64()
	return sign + f.symbol + f.printer.Sprint(number.Decimal(value, number.Scale(2)))
}

// Money builds the response form of amount.
func (f *MoneyFormatter) Money(amount decimal.Decimal) MoneyResponse {
	return MoneyResponse{
		Amount:  amount.StringFixed(2),
		Display: f.Format(amount),
	}
}
