package models

import (
	"github.com/shopspring/decimal"
)

// Money values are stored as decimal(12,2).
const (
	MoneyPrecision = 12
	MoneyScale     = 2
)

var moneyLimit = decimal.New(1, MoneyPrecision-MoneyScale)

// RoundMoney rounds d to the scale used for all stored money values.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// CheckMoney verifies that d fits into a decimal(12,2) column once rounded.
func CheckMoney(d decimal.Decimal) error {
	if RoundMoney(d).Abs().GreaterThanOrEqual(moneyLimit) {
		return ErrMoneyOutOfRange
	}
	return nil
}

// FormatMoney renders d with exactly two fractional digits, e.g. "125.00".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyScale)
}
