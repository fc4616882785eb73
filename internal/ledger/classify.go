// Package ledger assembles normalized statement tables into the final typed,
// sorted trade ledger.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/statledger-dev/statledger/internal/model"
)

// closeMarkers are code fragments that close a position: plain close,
// assignment, expiry, exercise.
var closeMarkers = []string{"C", "A", "EP", "EX"}

// ClassifyAction maps a raw lifecycle code to OPEN/CLOSE. "O" is checked
// first and wins: a code carrying both "O" and a close marker resolves to
// OPEN. That precedence is deliberate and load-bearing for codes like "O;C".
func ClassifyAction(code string) model.Action {
	code = strings.ToUpper(code)
	if strings.Contains(code, "O") {
		return model.ActionOpen
	}
	for _, marker := range closeMarkers {
		if strings.Contains(code, marker) {
			return model.ActionClose
		}
	}
	return model.ActionUnknown
}

// SideForQuantity is the alternative BUY/SELL convention derived from the
// quantity sign: negative sells, everything else buys. A missing quantity
// cannot be classified.
func SideForQuantity(q decimal.NullDecimal) model.Action {
	if !q.Valid {
		return model.ActionUnknown
	}
	if q.Decimal.IsNegative() {
		return model.ActionSell
	}
	return model.ActionBuy
}
