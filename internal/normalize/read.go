package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/statledger-dev/statledger/internal/extract"
)

// DefaultScanWidth is the generously large positional column count used when
// reading artifacts whose true width is unknown. Short rows are padded to it,
// longer rows keep their extra fields.
const DefaultScanWidth = 20

// ReadRagged reads a delimited artifact without assuming a uniform column
// count. Columns are positional ("0", "1", ...) until a header is promoted.
// The emitter's leading apostrophe is stripped from every field.
func ReadRagged(r io.Reader, width int) (Table, error) {
	if width <= 0 {
		width = DefaultScanWidth
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading artifact: %w", err)
	}

	for _, rec := range records {
		if len(rec) > width {
			width = len(rec)
		}
	}

	t := Table{Columns: make([]string, width)}
	for i := range t.Columns {
		t.Columns[i] = strconv.Itoa(i)
	}

	t.Rows = make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, width)
		for j, v := range rec {
			row[j] = strings.TrimPrefix(v, extract.FieldPrefix)
		}
		t.Rows[i] = row
	}
	return t, nil
}
