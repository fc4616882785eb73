package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/statledger-dev/statledger/internal/model"
)

// savedResponse is the on-disk shape of a saved analysis result.
type savedResponse struct {
	Blocks []model.Block `json:"Blocks"`
}

// FileClient serves a previously saved analysis response from disk, so the
// pipeline can run without the live service. Results are paged to exercise the
// same continuation-token path as the real client.
type FileClient struct {
	blocks   []model.Block
	pageSize int
}

// NewFileClient loads a saved response ({"Blocks": [...]}) from path.
func NewFileClient(path string, pageSize int) (*FileClient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved response: %w", err)
	}
	var resp savedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing saved response %s: %w", path, err)
	}
	if pageSize <= 0 {
		pageSize = 1000
	}
	return &FileClient{blocks: resp.Blocks, pageSize: pageSize}, nil
}

// StartAnalysis returns a fixed job handle; the document location is ignored
// because the result is already on disk.
func (c *FileClient) StartAnalysis(ctx context.Context, loc DocumentLocation) (string, error) {
	return "saved-response", nil
}

// GetAnalysis returns the page at the offset encoded in nextToken.
func (c *FileClient) GetAnalysis(ctx context.Context, jobID, nextToken string) (*ResultPage, error) {
	offset := 0
	if nextToken != "" {
		n, err := strconv.Atoi(nextToken)
		if err != nil {
			return nil, fmt.Errorf("bad continuation token %q", nextToken)
		}
		offset = n
	}
	if offset > len(c.blocks) {
		return nil, fmt.Errorf("continuation token %q out of range", nextToken)
	}

	end := offset + c.pageSize
	if end > len(c.blocks) {
		end = len(c.blocks)
	}

	page := &ResultPage{
		Status: StatusSucceeded,
		Blocks: c.blocks[offset:end],
	}
	if end < len(c.blocks) {
		page.NextToken = strconv.Itoa(end)
	}
	return page, nil
}
