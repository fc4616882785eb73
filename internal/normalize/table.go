// Package normalize turns raggedly-extracted table artifacts into tables with
// a correctly-identified header. Transforms are pure: each takes a Table and
// returns a new one, so every stage is independently testable.
package normalize

import (
	"fmt"
	"strings"
)

// Table is an ordered set of named columns over ordered rows. Rows always have
// exactly len(Columns) values.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the trimmed value at (row, column name), or "" if the column
// is absent.
func (t Table) Value(row int, column string) string {
	i := t.ColumnIndex(column)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][i])
}

// HeaderNotFoundError reports a file whose header row could not be located.
// The batch skips the file and continues.
type HeaderNotFoundError struct {
	File   string
	Reason string
}

func (e *HeaderNotFoundError) Error() string {
	return fmt.Sprintf("%s: header not found: %s", e.File, e.Reason)
}

// selectColumns returns a new table keeping the columns at keep, in order.
func selectColumns(t Table, keep []int) Table {
	out := Table{Columns: make([]string, len(keep))}
	for i, c := range keep {
		out.Columns[i] = t.Columns[c]
	}
	out.Rows = make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		newRow := make([]string, len(keep))
		for i, c := range keep {
			newRow[i] = row[c]
		}
		out.Rows[r] = newRow
	}
	return out
}

// rowText joins all values in a row with single spaces.
func rowText(row []string) string {
	return strings.Join(row, " ")
}

// rowEmpty reports whether every value in the row is blank after trimming.
func rowEmpty(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
