package pricing

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₹"

// FormatCurrency renders amount with two fixed decimals and the currency symbol.
// Rounding works on the exact binary value, so 0.745 (stored just below the
// tie) renders as 0.74. Non-finite amounts render as zero.
func FormatCurrency(amount float64) string {
	return CurrencySymbol + fixed(amount, 2)
}

// FormatPerDrop renders the per-drop color price with four decimals.
func FormatPerDrop(amount float64) string {
	return CurrencySymbol + fixed(amount, 4)
}

// FormatPercent renders a user-entered percentage the way it was typed: 30, 12.5.
func FormatPercent(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "0"
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func fixed(amount float64, places int32) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero.StringFixed(places)
	}
	// 40 fractional digits keep enough of the binary expansion that a value
	// stored just below a half-cent tie still rounds down.
	return decimal.NewFromFloatWithExponent(amount, -40).StringFixed(places)
}
