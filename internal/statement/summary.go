package statement

import "github.com/statledger-dev/statledger/internal/normalize"

// CaptureSummaries records the literal total-column string for each known
// summary label present in the table. First hit wins per label within one
// table. This must run before FilterAggregates, which removes the very rows
// it reads.
func CaptureSummaries(t normalize.Table, p Profile) map[string]string {
	totals := make(map[string]string)
	for row := range t.Rows {
		desc := t.Value(row, p.DescriptionColumn)
		for _, label := range p.SummaryLabels {
			if desc != label {
				continue
			}
			if _, seen := totals[label]; !seen {
				totals[label] = t.Value(row, p.TotalColumn)
			}
		}
	}
	return totals
}

// MergeSummaries copies src into dst; on label collision the src value wins.
// Merging tables in file order therefore keeps the last table's figure.
func MergeSummaries(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for label, value := range src {
		dst[label] = value
	}
	return dst
}
