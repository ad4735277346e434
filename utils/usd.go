package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD formats a decimal amount as US dollars with two decimal places,
// e.g. 1234.5 -> "$1,234.50".
func USD(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	cents := amount.Shift(int32(cur.Fraction)).Round(0)
	// go-money counts minor units in an int64; past that, render the
	// digits plainly rather than let IntPart wrap.
	if !cents.BigInt().IsInt64() {
		if amount.IsNegative() {
			return "-$" + amount.Abs().StringFixed(2)
		}
		return "$" + amount.StringFixed(2)
	}
	return money.New(cents.IntPart(), money.USD).Display()
}
