package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber coerces a statement figure to a decimal, stripping thousands
// separators first. Values that do not parse become an explicit missing value
// rather than zero, so a bad figure never masquerades as a real one.
func ParseNumber(s string) decimal.NullDecimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// AddNull adds two possibly-missing values; missing propagates.
func AddNull(a, b decimal.NullDecimal) decimal.NullDecimal {
	if !a.Valid || !b.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: a.Decimal.Add(b.Decimal), Valid: true}
}
