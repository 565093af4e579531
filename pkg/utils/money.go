package utils

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a price with full precision, no trailing padding.
// Used when persisting computed totals; precision is only dropped at the
// display boundary (FormatCOP).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCOP rounds a value to whole Colombian pesos and renders it with
// thousands separators, e.g. 2525900 -> "$ 2.525.900".
func FormatCOP(v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	s := d.String()

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	res := "$ " + string(out)
	if neg {
		res = "-" + res
	}
	return res
}
