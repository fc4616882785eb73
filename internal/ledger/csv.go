package ledger

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/statledger-dev/statledger/internal/model"
)

const dateFormat = "2006-01-02"

// ledgerRow is the canonical shape of one final-artifact row.
type ledgerRow struct {
	Date       string `csv:"date"`
	Symbol     string `csv:"symbol"`
	Instrument string `csv:"instrument"`
	Action     string `csv:"action"`
	Quantity   string `csv:"quantity"`
	NetCash    string `csv:"net_cash"`
	Strike     string `csv:"strike"`
	Expiry     string `csv:"expiry"`
}

// Write emits the final ledger artifact: a header row with the canonical
// column names, then one row per record in the given order. Missing figures
// are written as empty fields, never as zero.
func Write(w io.Writer, records []model.TradeRecord) error {
	rows := make([]ledgerRow, len(records))
	for i, rec := range records {
		row := ledgerRow{
			Date:       rec.Date.Format(dateFormat),
			Symbol:     rec.Symbol,
			Instrument: string(rec.Instrument),
			Action:     string(rec.Action),
			Strike:     rec.Strike.String(),
		}
		if rec.Quantity.Valid {
			row.Quantity = rec.Quantity.Decimal.String()
		}
		if rec.NetCash.Valid {
			row.NetCash = rec.NetCash.Decimal.StringFixed(2)
		}
		if rec.Expiry != nil {
			row.Expiry = rec.Expiry.Format(dateFormat)
		}
		rows[i] = row
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// summaryRow is one captured statement total.
type summaryRow struct {
	Label string `csv:"label"`
	Total string `csv:"total"`
}

// WriteSummaries emits captured summary totals sorted by label for a
// deterministic artifact.
func WriteSummaries(w io.Writer, totals map[string]string) error {
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([]summaryRow, len(labels))
	for i, label := range labels {
		rows[i] = summaryRow{Label: label, Total: totals[label]}
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing summaries: %w", err)
	}
	return nil
}
