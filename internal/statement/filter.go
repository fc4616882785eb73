package statement

import (
	"strings"

	"github.com/statledger-dev/statledger/internal/normalize"
)

// FilterAggregates removes summary, section-header, and non-tradable rows,
// leaving only genuine transaction rows. Capture summaries first: the rows
// this drops include the ones CaptureSummaries reads. The predicates are
// row-local, so applying the filter twice yields the same table.
func FilterAggregates(t normalize.Table, p Profile) normalize.Table {
	out := normalize.Table{Columns: append([]string(nil), t.Columns...)}
	for row := range t.Rows {
		if isAggregateRow(t, row, p) {
			continue
		}
		out.Rows = append(out.Rows, append([]string(nil), t.Rows[row]...))
	}
	return out
}

func isAggregateRow(t normalize.Table, row int, p Profile) bool {
	desc := t.Value(row, p.DescriptionColumn)

	// Section totals. A genuine trade whose underlying starts with "Total"
	// still has a code and prices, so require those blank too.
	if strings.HasPrefix(desc, p.TotalPrefix) && tradeFieldsBlank(t, row, p) {
		return true
	}

	if p.CarriedPrefix != "" && strings.HasPrefix(desc, p.CarriedPrefix) {
		return true
	}

	for _, label := range p.SectionLabels {
		if desc == label {
			return true
		}
	}

	for _, ticker := range p.PlaceholderTickers {
		if desc == ticker {
			return true
		}
	}

	// Metadata fragments carry no figures.
	return t.Value(row, p.TotalColumn) == ""
}

func tradeFieldsBlank(t normalize.Table, row int, p Profile) bool {
	if t.Value(row, p.CodeColumn) != "" {
		return false
	}
	for _, col := range p.PriceColumns {
		if t.Value(row, col) != "" {
			return false
		}
	}
	return true
}
