package ingestion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout is the month/day/year pattern used by the export on both the
// run date and settlement date columns.
const dateLayout = "01/02/2006"

func normalizeText(s string) string {
	return strings.TrimSpace(s)
}

// parseAmount coerces a raw numeric field to a decimal, stripping currency
// and group-separator decoration. Parentheses mark negatives in some
// exports. Anything unparseable becomes the empty marker rather than an
// error; field coercion is never fatal.
func parseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	if s == "" || s == "--" || strings.EqualFold(s, "n/a") {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// parseAbsAmount parses like parseAmount and discards the sign. Quantity
// and amount columns carry direction in the action text instead.
func parseAbsAmount(s string) decimal.NullDecimal {
	d := parseAmount(s)
	if d.Valid {
		d.Decimal = d.Decimal.Abs()
	}
	return d
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
