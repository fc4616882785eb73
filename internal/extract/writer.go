package extract

import (
	"fmt"
	"io"
	"strings"
)

// FieldPrefix is prepended to every emitted field, matching the convention of
// the originating document viewer's CSV export.
const FieldPrefix = "'"

// WriteGrid writes the grid as delimited text: one line per row, every field
// double-quoted regardless of content, every value carrying FieldPrefix. No
// header row is written; header discovery happens downstream by content.
func WriteGrid(w io.Writer, grid Grid) error {
	for _, row := range grid {
		fields := make([]string, len(row))
		for i, value := range row {
			escaped := strings.ReplaceAll(FieldPrefix+value, `"`, `""`)
			fields[i] = `"` + escaped + `"`
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, ",")); err != nil {
			return fmt.Errorf("writing grid row: %w", err)
		}
	}
	return nil
}
