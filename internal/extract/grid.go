// Package extract reconstructs detected tables into dense grids and writes
// them out as delimited artifacts.
package extract

import (
	"errors"
	"strings"

	"github.com/statledger-dev/statledger/internal/model"
)

// Grid is a dense rectangular table of cell text, row-major.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// ErrNoCells marks a table whose children resolve to no usable cells, or whose
// computed dimensions are degenerate. Callers skip such tables and continue.
var ErrNoCells = errors.New("table has no resolvable cells")

// BuildGrid reconstructs one TABLE block into a Grid. Dimensions are the
// maximum 1-based row and column index across the table's CELL children.
// Merged cells repeat their text across every spanned position; a position is
// written only if still empty, so the anchor cell wins and span overlaps from
// later cells never overwrite. Span positions past the grid bounds are skipped.
func BuildGrid(table model.Block, byID map[string]model.Block) (Grid, error) {
	var cells []model.Block
	for _, id := range table.ChildIDs() {
		child, ok := byID[id]
		if ok && child.BlockType == model.BlockCell {
			cells = append(cells, child)
		}
	}
	if len(cells) == 0 {
		return nil, ErrNoCells
	}

	maxRow, maxCol := 0, 0
	for _, cell := range cells {
		if cell.RowIndex > maxRow {
			maxRow = cell.RowIndex
		}
		if cell.ColumnIndex > maxCol {
			maxCol = cell.ColumnIndex
		}
	}
	if maxRow == 0 || maxCol == 0 {
		return nil, ErrNoCells
	}

	grid := make(Grid, maxRow)
	for i := range grid {
		grid[i] = make([]string, maxCol)
	}

	for _, cell := range cells {
		text := cellText(cell, byID)
		rowSpan, colSpan := cell.RowSpan, cell.ColumnSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		if colSpan < 1 {
			colSpan = 1
		}

		for r := 0; r < rowSpan; r++ {
			for c := 0; c < colSpan; c++ {
				row := cell.RowIndex - 1 + r
				col := cell.ColumnIndex - 1 + c
				if row >= maxRow || col >= maxCol {
					continue
				}
				if grid[row][col] == "" {
					grid[row][col] = text
				}
			}
		}
	}
	return grid, nil
}

// cellText joins the cell's WORD children with single spaces.
func cellText(cell model.Block, byID map[string]model.Block) string {
	var words []string
	for _, id := range cell.ChildIDs() {
		child, ok := byID[id]
		if ok && child.BlockType == model.BlockWord {
			words = append(words, child.Text)
		}
	}
	return strings.Join(words, " ")
}

// Tables returns all TABLE blocks in order of appearance.
func Tables(blocks []model.Block) []model.Block {
	var tables []model.Block
	for _, b := range blocks {
		if b.BlockType == model.BlockTable {
			tables = append(tables, b)
		}
	}
	return tables
}
