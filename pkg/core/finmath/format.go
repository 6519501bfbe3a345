package finmath

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Display formatters. These are presentation helpers only; none of the engine
// arithmetic flows through them.

// FormatCurrency renders a dollar amount with thousands separators,
// e.g. 1234567.5 -> "$1,234,567.50".
func FormatCurrency(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:] // includes the dot

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("$")
	b.WriteString(groupThousands(intPart))
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a decimal fraction as a percentage,
// e.g. 0.075 -> "7.50%".
func FormatPercent(value float64, decimals int32) string {
	d := decimal.NewFromFloat(value).Mul(decimal.NewFromInt(100)).Round(decimals)
	return d.StringFixed(decimals) + "%"
}

// FormatMultiple renders an equity multiple, e.g. 1.875 -> "1.88x".
func FormatMultiple(value float64) string {
	return decimal.NewFromFloat(value).Round(2).StringFixed(2) + "x"
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
