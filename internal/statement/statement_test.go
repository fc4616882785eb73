package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statledger-dev/statledger/internal/normalize"
)

func tradesTable(rows [][]string) normalize.Table {
	return normalize.Table{
		Columns: []string{"Symbol", "Date/Time", "Quantity", "T. Price", "C. Price", "Proceeds", "Comm/Fee", "Code"},
		Rows:    rows,
	}
}

func TestCaptureSummaries(t *testing.T) {
	table := tradesTable([][]string{
		{"AMAT", "2025-11-07, 09:30:00", "100", "220", "221", "22,000.00", "-1.00", "O"},
		{"Total Stocks", "", "", "", "", "31,415.93", "", ""},
		{"Total Stocks", "", "", "", "", "999.99", "", ""},
		{"Total (All Assets)", "", "", "", "", "42,000.00", "", ""},
	})

	totals := CaptureSummaries(table, Default())
	// Literal string preserved, first hit wins within a table.
	assert.Equal(t, "31,415.93", totals["Total Stocks"])
	assert.Equal(t, "42,000.00", totals["Total (All Assets)"])
	assert.NotContains(t, totals, "Total (Combined Assets)")
}

func TestMergeSummaries_LastWins(t *testing.T) {
	merged := MergeSummaries(nil, map[string]string{"Total Stocks": "1.00"})
	merged = MergeSummaries(merged, map[string]string{
		"Total Stocks":       "2.00",
		"Total (All Assets)": "3.00",
	})

	assert.Equal(t, "2.00", merged["Total Stocks"])
	assert.Equal(t, "3.00", merged["Total (All Assets)"])
}

func TestFilterAggregates(t *testing.T) {
	table := tradesTable([][]string{
		{"AMAT", "2025-11-07, 09:30:00", "100", "220", "221", "22,000.00", "-1.00", "O"},
		{"Total Stocks", "", "", "", "", "31,415.93", "", ""},
		{"Carried by broker XYZ", "", "", "", "", "5.00", "", ""},
		{"Stocks", "", "", "", "", "1.00", "", ""},
		{"GBP", "", "", "", "", "2.00", "", ""},
		{"LULU 07NOV25 175 P", "2025-11-03, 10:15:00", "-1", "1.75", "0", "175.00", "-0.50", "C"},
		{"Notes about account", "", "", "", "", "", "", ""},
	})

	got := FilterAggregates(table, Default())
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "AMAT", got.Value(0, "Symbol"))
	assert.Equal(t, "LULU 07NOV25 175 P", got.Value(1, "Symbol"))
}

func TestFilterAggregates_KeepsTradeStartingWithTotal(t *testing.T) {
	// A real trade whose underlying happens to start with "Total" carries a
	// lifecycle code and prices, so the strict rule keeps it.
	table := tradesTable([][]string{
		{"TotalEnergies SE", "2025-10-01, 11:00:00", "10", "60", "61", "600.00", "-1.00", "O"},
		{"Total Stocks", "", "", "", "", "600.00", "", ""},
	})

	got := FilterAggregates(table, Default())
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "TotalEnergies SE", got.Value(0, "Symbol"))
}

func TestFilterAggregates_Idempotent(t *testing.T) {
	table := tradesTable([][]string{
		{"AMAT", "2025-11-07, 09:30:00", "100", "220", "221", "22,000.00", "-1.00", "O"},
		{"Total Stocks", "", "", "", "", "31,415.93", "", ""},
		{"Forex", "", "", "", "", "9.00", "", ""},
	})

	once := FilterAggregates(table, Default())
	twice := FilterAggregates(once, Default())
	assert.Equal(t, once, twice)
}

func TestProfile_LoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degiro.yaml")
	data := "name: degiro\ndescription_column: Product\nplaceholder_tickers: [EUR]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "degiro", p.Name)
	assert.Equal(t, "Product", p.DescriptionColumn)
	assert.Equal(t, []string{"EUR"}, p.PlaceholderTickers)
	// Unset fields keep the built-in defaults.
	assert.Equal(t, "Date/Time", p.DateTimeColumn)
	assert.Equal(t, PolicyLifecycle, p.ActionPolicy)
}

func TestProfile_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ibkr.yaml")
	require.NoError(t, Save(path, Default()))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestProfile_LoadRequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: \"\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	p, ok := r.Get("IBKR")
	require.True(t, ok)
	assert.Equal(t, "ibkr", p.Name)

	_, ok = r.Get("unknown")
	assert.False(t, ok)

	assert.Panics(t, func() { r.Register(Default()) })
}
