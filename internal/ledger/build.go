package ledger

import (
	"log/slog"
	"sort"
	"time"

	"github.com/statledger-dev/statledger/internal/instrument"
	"github.com/statledger-dev/statledger/internal/model"
	"github.com/statledger-dev/statledger/internal/normalize"
	"github.com/statledger-dev/statledger/internal/statement"
)

// dateLayouts are the date/time shapes seen in extracted statements, tried in
// order. Only the calendar date survives into the ledger.
var dateLayouts = []string{
	"2006-01-02, 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02, 15:04",
	"2006-01-02",
}

// ParseDate extracts the calendar date from a statement date/time value.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// BuildRecords converts one filtered table into trade records. Rows whose
// date does not parse are dropped entirely; the count of dropped rows is
// returned so callers can report it.
func BuildRecords(t normalize.Table, p statement.Profile) ([]model.TradeRecord, int) {
	var records []model.TradeRecord
	dropped := 0

	for row := range t.Rows {
		rawDate := t.Value(row, p.DateTimeColumn)
		date, ok := ParseDate(rawDate)
		if !ok {
			slog.Warn("dropping row with unparseable date", "row", row, "value", rawDate)
			dropped++
			continue
		}

		desc := instrument.ParseDescriptor(t.Value(row, p.DescriptionColumn))
		quantity := ParseNumber(t.Value(row, p.QuantityColumn))
		proceeds := ParseNumber(t.Value(row, p.ProceedsColumn))
		fee := ParseNumber(t.Value(row, p.FeeColumn))

		var action model.Action
		switch p.ActionPolicy {
		case statement.PolicySide:
			action = SideForQuantity(quantity)
		default:
			action = ClassifyAction(t.Value(row, p.CodeColumn))
		}

		records = append(records, model.TradeRecord{
			Date:       date,
			Symbol:     desc.Symbol,
			Instrument: desc.Instrument,
			Action:     action,
			Quantity:   quantity,
			NetCash:    AddNull(proceeds, fee),
			Strike:     desc.Strike,
			Expiry:     desc.Expiry,
		})
	}
	return records, dropped
}

// Merge concatenates per-file record batches in iteration order. Exact
// duplicate rows across files are preserved; deduplication here would silently
// lose genuine repeat trades.
func Merge(batches ...[]model.TradeRecord) []model.TradeRecord {
	var all []model.TradeRecord
	for _, batch := range batches {
		all = append(all, batch...)
	}
	return all
}

// Sort orders records by date then symbol, ascending. The sort is stable, so
// ties keep their pre-sort (file-iteration) order.
func Sort(records []model.TradeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].Symbol < records[j].Symbol
	})
}
