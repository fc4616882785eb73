package model

// BlockType identifies the kind of a detected document element.
type BlockType string

const (
	BlockTable BlockType = "TABLE"
	BlockCell  BlockType = "CELL"
	BlockWord  BlockType = "WORD"
	BlockLine  BlockType = "LINE"
)

// RelationshipChild links a block to its child blocks.
const RelationshipChild = "CHILD"

// Relationship references related blocks by ID.
type Relationship struct {
	Type string   `json:"Type"`
	IDs  []string `json:"Ids"`
}

// Block is one element detected by the document-analysis service.
// Field meanings vary by BlockType: CELL carries the grid position and spans,
// WORD carries the literal text. JSON tags match the service's wire format so
// saved responses load directly.
type Block struct {
	ID            string         `json:"Id"`
	BlockType     BlockType      `json:"BlockType"`
	Text          string         `json:"Text,omitempty"`
	RowIndex      int            `json:"RowIndex,omitempty"`    // 1-based
	ColumnIndex   int            `json:"ColumnIndex,omitempty"` // 1-based
	RowSpan       int            `json:"RowSpan,omitempty"`
	ColumnSpan    int            `json:"ColumnSpan,omitempty"`
	Relationships []Relationship `json:"Relationships,omitempty"`
}

// ChildIDs returns the IDs of all CHILD relationships, in order.
func (b Block) ChildIDs() []string {
	var ids []string
	for _, rel := range b.Relationships {
		if rel.Type == RelationshipChild {
			ids = append(ids, rel.IDs...)
		}
	}
	return ids
}

// MapByID indexes blocks by their ID for reference resolution.
func MapByID(blocks []Block) map[string]Block {
	m := make(map[string]Block, len(blocks))
	for _, b := range blocks {
		m[b.ID] = b
	}
	return m
}
