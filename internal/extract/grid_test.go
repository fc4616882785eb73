package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statledger-dev/statledger/internal/model"
)

// tableFixture assembles a TABLE block plus lookup map from cells. Each cell's
// words become WORD children.
func tableFixture(cells []model.Block, words map[string][]string) (model.Block, map[string]model.Block) {
	byID := make(map[string]model.Block)
	var childIDs []string

	for _, cell := range cells {
		for i, text := range words[cell.ID] {
			wordID := cell.ID + "-w" + string(rune('0'+i))
			byID[wordID] = model.Block{ID: wordID, BlockType: model.BlockWord, Text: text}
			cell.Relationships = append(cell.Relationships, model.Relationship{
				Type: model.RelationshipChild,
				IDs:  []string{wordID},
			})
		}
		byID[cell.ID] = cell
		childIDs = append(childIDs, cell.ID)
	}

	table := model.Block{
		ID:            "t1",
		BlockType:     model.BlockTable,
		Relationships: []model.Relationship{{Type: model.RelationshipChild, IDs: childIDs}},
	}
	byID["t1"] = table
	return table, byID
}

func cell(id string, row, col, rowSpan, colSpan int) model.Block {
	return model.Block{
		ID:          id,
		BlockType:   model.BlockCell,
		RowIndex:    row,
		ColumnIndex: col,
		RowSpan:     rowSpan,
		ColumnSpan:  colSpan,
	}
}

func TestBuildGrid_SimpleCells(t *testing.T) {
	table, byID := tableFixture(
		[]model.Block{
			cell("c1", 1, 1, 1, 1),
			cell("c2", 1, 2, 1, 1),
			cell("c3", 2, 1, 1, 1),
			cell("c4", 2, 2, 1, 1),
		},
		map[string][]string{
			"c1": {"Symbol"},
			"c2": {"Date/Time"},
			"c3": {"AMAT"},
			"c4": {"2025-11-07,", "09:30:00"},
		},
	)

	grid, err := BuildGrid(table, byID)
	require.NoError(t, err)
	require.Equal(t, 2, grid.Rows())
	require.Equal(t, 2, grid.Cols())
	assert.Equal(t, "Symbol", grid[0][0])
	assert.Equal(t, "Date/Time", grid[0][1])
	assert.Equal(t, "AMAT", grid[1][0])
	// Word children join with single spaces.
	assert.Equal(t, "2025-11-07, 09:30:00", grid[1][1])
}

func TestBuildGrid_MergedCellFillsSpan(t *testing.T) {
	table, byID := tableFixture(
		[]model.Block{
			cell("merged", 1, 1, 2, 2),
			cell("corner", 3, 3, 1, 1),
		},
		map[string][]string{
			"merged": {"Trades"},
			"corner": {"x"},
		},
	)

	grid, err := BuildGrid(table, byID)
	require.NoError(t, err)
	require.Equal(t, 3, grid.Rows())
	require.Equal(t, 3, grid.Cols())
	for _, pos := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		assert.Equal(t, "Trades", grid[pos[0]][pos[1]], "position %v", pos)
	}
	assert.Equal(t, "", grid[0][2])
	assert.Equal(t, "x", grid[2][2])
}

func TestBuildGrid_FirstWriterWinsOnOverlap(t *testing.T) {
	// Two anchor cells whose spans overlap at (1,2) 0-based. The earlier cell
	// already wrote that position, so the later cell must not overwrite it.
	table, byID := tableFixture(
		[]model.Block{
			cell("a", 1, 1, 2, 3),
			cell("b", 2, 3, 1, 1),
		},
		map[string][]string{
			"a": {"first"},
			"b": {"second"},
		},
	)

	grid, err := BuildGrid(table, byID)
	require.NoError(t, err)
	assert.Equal(t, "first", grid[1][2])
}

func TestBuildGrid_SpanPastBoundsSkipped(t *testing.T) {
	// Span extends past the max detected index; out-of-bounds positions are
	// silently skipped.
	table, byID := tableFixture(
		[]model.Block{cell("a", 1, 1, 3, 3)},
		map[string][]string{"a": {"wide"}},
	)

	grid, err := BuildGrid(table, byID)
	require.NoError(t, err)
	assert.Equal(t, 1, grid.Rows())
	assert.Equal(t, 1, grid.Cols())
	assert.Equal(t, "wide", grid[0][0])
}

func TestBuildGrid_EmptyCellText(t *testing.T) {
	table, byID := tableFixture(
		[]model.Block{cell("a", 1, 1, 1, 1), cell("b", 1, 2, 1, 1)},
		map[string][]string{"a": {"only"}},
	)

	grid, err := BuildGrid(table, byID)
	require.NoError(t, err)
	assert.Equal(t, "", grid[0][1])
}

func TestBuildGrid_NoCells(t *testing.T) {
	// A table whose only child is a LINE resolves to zero cells.
	line := model.Block{ID: "l1", BlockType: model.BlockLine, Text: "Heading"}
	table := model.Block{
		ID:            "t1",
		BlockType:     model.BlockTable,
		Relationships: []model.Relationship{{Type: model.RelationshipChild, IDs: []string{"l1"}}},
	}
	byID := map[string]model.Block{"t1": table, "l1": line}

	_, err := BuildGrid(table, byID)
	assert.ErrorIs(t, err, ErrNoCells)
}

func TestTables_FiltersByKind(t *testing.T) {
	blocks := []model.Block{
		{ID: "w", BlockType: model.BlockWord},
		{ID: "t1", BlockType: model.BlockTable},
		{ID: "c", BlockType: model.BlockCell},
		{ID: "t2", BlockType: model.BlockTable},
	}
	tables := Tables(blocks)
	require.Len(t, tables, 2)
	assert.Equal(t, "t1", tables[0].ID)
	assert.Equal(t, "t2", tables[1].ID)
}
