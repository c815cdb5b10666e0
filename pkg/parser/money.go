package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney reads a monetary cell into an exact decimal rounded to two
// decimal places. It accepts Brazilian text ("1.234.567,89"), plain English
// text ("1234567.89") and numeric cells serialized by the workbook
// reader. A leading currency symbol is ignored. Rounding is half-up on
// the decimal representation; the value never passes through a binary
// float, so "5182575.239999999" comes out as exactly 5182575.24.
func ParseMoney(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if IsAbsent(s) {
		return decimal.Decimal{}, false
	}
	s = stripCurrency(s)

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// 1.234.567,89
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Round(2), true
}

func stripCurrency(s string) string {
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "R$") {
		s = s[2:]
	} else if strings.HasPrefix(s, "$") {
		s = s[1:]
	}
	return strings.TrimSpace(s)
}
