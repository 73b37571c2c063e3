package model

import "github.com/shopspring/decimal"

const (
	// AmountScale is the number of fractional digits an amount may carry.
	AmountScale = 18
	// AmountIntDigits is the number of integer digits an amount may carry.
	AmountIntDigits = 60
)

var maxAmount = decimal.New(1, AmountIntDigits)

// AmountFits reports whether d is stored exactly by every repository:
// at most AmountScale fractional digits and AmountIntDigits integer digits.
func AmountFits(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(AmountScale)) {
		return false
	}
	return d.Abs().LessThan(maxAmount)
}
