// Package output provides output formatting for estimation results.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount with a dollar sign, thousands
// separators and exactly two decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, ch := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteString(frac)
	return b.String()
}

// FormatAmount renders a float64 amount as currency
func FormatAmount(amount float64) string {
	return FormatCurrency(decimal.NewFromFloat(amount))
}
