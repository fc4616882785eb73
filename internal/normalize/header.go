package normalize

import (
	"fmt"
	"strings"
)

// PromoteHeaderScan locates the true header by content: the first row whose
// joined text contains both markers becomes the header, and everything at or
// before it is discarded. Header discovery must be content-based because the
// emitter writes no header row; see PromoteFirstRow for the stricter variant.
func PromoteHeaderScan(t Table, file, symbolMarker, dateMarker string) (Table, error) {
	headerIdx := -1
	for i, row := range t.Rows {
		text := rowText(row)
		if strings.Contains(text, symbolMarker) && strings.Contains(text, dateMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return Table{}, &HeaderNotFoundError{
			File:   file,
			Reason: fmt.Sprintf("no row contains both %q and %q", symbolMarker, dateMarker),
		}
	}

	promoted := Table{
		Columns: append([]string(nil), t.Rows[headerIdx]...),
		Rows:    deepCopyRows(t.Rows[headerIdx+1:]),
	}
	return tidyHeader(promoted), nil
}

// PromoteFirstRow drops all-empty rows and columns, then requires the first
// remaining row to contain the marker literally as one of its values. Used for
// compact summary tables where the header is always the first non-empty row.
func PromoteFirstRow(t Table, file, symbolMarker string) (Table, error) {
	trimmed := dropEmptyRows(dropEmptyColumns(t))
	if len(trimmed.Rows) == 0 {
		return Table{}, &HeaderNotFoundError{File: file, Reason: "no non-empty rows"}
	}

	first := trimmed.Rows[0]
	found := false
	for _, v := range first {
		if strings.TrimSpace(v) == symbolMarker {
			found = true
			break
		}
	}
	if !found {
		return Table{}, &HeaderNotFoundError{
			File:   file,
			Reason: fmt.Sprintf("first row %v does not contain %q", first, symbolMarker),
		}
	}

	promoted := Table{
		Columns: append([]string(nil), first...),
		Rows:    deepCopyRows(trimmed.Rows[1:]),
	}
	return tidyHeader(promoted), nil
}

// tidyHeader strips whitespace from header labels and drops columns whose
// header is empty or the literal "nan" (a numeric-to-string coercion artifact
// upstream).
func tidyHeader(t Table) Table {
	var keep []int
	for i, c := range t.Columns {
		label := strings.TrimSpace(c)
		t.Columns[i] = label
		if label == "" || label == "nan" {
			continue
		}
		keep = append(keep, i)
	}
	return selectColumns(t, keep)
}

func dropEmptyRows(t Table) Table {
	out := Table{Columns: append([]string(nil), t.Columns...)}
	for _, row := range t.Rows {
		if !rowEmpty(row) {
			out.Rows = append(out.Rows, append([]string(nil), row...))
		}
	}
	return out
}

func dropEmptyColumns(t Table) Table {
	var keep []int
	for c := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if strings.TrimSpace(row[c]) != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, c)
		}
	}
	return selectColumns(t, keep)
}

func deepCopyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
