package response

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "£"

// Money is a GBP amount rounded to pence, with a display string.
type Money struct {
	Amount  float64 `json:"amount" example:"99"`
	Display string  `json:"display" example:"£99.00"`
}

func NewMoney(v float64) Money {
	d := decimal.NewFromFloat(v).Round(2)
	return Money{Amount: d.InexactFloat64(), Display: currencySymbol + d.StringFixed(2)}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ParseDisplayPrice extracts the first number from a shop price such as
// "£1,299.00" or "£12 - £15". Thousands separators are dropped; ok is false
// when no parseable number is found.
func ParseDisplayPrice(s string) (decimal.Decimal, bool) {
	num := firstNumber(s)
	if num == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// firstNumber returns the first run of digits, '.' and ',' in s, starting at a
// digit, with commas and a trailing '.' removed.
func firstNumber(s string) string {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return ""
	}
	end := start
	for end < len(s) && (isDigit(rune(s[end])) || s[end] == '.' || s[end] == ',') {
		end++
	}
	return strings.TrimRight(strings.ReplaceAll(s[start:end], ",", ""), ".")
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
