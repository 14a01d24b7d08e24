package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are whole Chilean pesos; the currency has no subunits.

var clp = message.NewPrinter(language.MustParse("es-CL"))

// Round applies the legal cash rounding rule: amounts are rounded to the
// nearest multiple of 10 pesos. Last digits 1-5 round down, 6-9 round up.
// Negative amounts are not a valid cash state and clamp to zero.
func Round(amount int64) int64 {
	if amount <= 0 {
		return 0
	}
	last := amount % 10
	if last == 0 {
		return amount
	}
	if last <= 5 {
		return amount - last
	}
	return amount + (10 - last)
}

// RoundFloat rounds a fractional amount to the nearest peso before applying
// the cash rounding rule. Boundary adapter for amounts arriving over JSON.
func RoundFloat(amount float64) int64 {
	return Round(int64(math.Round(amount)))
}

// Format renders an amount for display using es-CL conventions. The result is
// never fed back into arithmetic.
func Format(amount int64) string {
	return clp.Sprintf("$%d", amount)
}
