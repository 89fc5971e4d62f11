package helpers

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatLine renders a signed market line the way books print it: "+3.5",
// "-7.0".
func FormatLine(line decimal.Decimal) string {
	if line.Sign() >= 0 {
		return "+" + line.StringFixed(1)
	}
	return line.StringFixed(1)
}

// FormatOdds renders American odds with an explicit sign: "+130", "-110".
func FormatOdds(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}
