package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ParseRatio reads an efficiency or percentage cell. A trailing "%" and
// a decimal comma are accepted. Magnitudes in [0, 1] are taken as
// fractions and scaled by 100 so that 0.3333 and 33.33 both mean
// 33,33%; anything above 1 passes through unscaled. The scaling assumes
// no legitimate figure sits below 1% — a sub-1% value would be
// misread as a fraction, which the source data never exercises.
func ParseRatio(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if IsAbsent(s) {
		return decimal.Decimal{}, false
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if d.Sign() >= 0 && d.LessThanOrEqual(decimal.NewFromInt(1)) {
		d = d.Mul(oneHundred)
	}
	return d, true
}

// FormatRatio renders a parsed ratio the way the dashboard displays it:
// two decimals, comma separator, trailing percent sign.
func FormatRatio(d decimal.Decimal) string {
	return strings.ReplaceAll(d.StringFixed(2), ".", ",") + "%"
}
