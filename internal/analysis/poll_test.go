package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statledger-dev/statledger/internal/model"
)

// fakeClient scripts a sequence of status responses followed by result pages
// keyed by continuation token.
type fakeClient struct {
	statuses []JobStatus
	pages    map[string]*ResultPage
	calls    int
}

func (f *fakeClient) StartAnalysis(ctx context.Context, loc DocumentLocation) (string, error) {
	return "job-1", nil
}

func (f *fakeClient) GetAnalysis(ctx context.Context, jobID, nextToken string) (*ResultPage, error) {
	if nextToken != "" {
		return f.pages[nextToken], nil
	}
	status := f.statuses[f.calls]
	if f.calls < len(f.statuses)-1 {
		f.calls++
	}
	if status != StatusSucceeded {
		return &ResultPage{Status: status, StatusMessage: "service broke"}, nil
	}
	return f.pages[""], nil
}

func word(id, text string) model.Block {
	return model.Block{ID: id, BlockType: model.BlockWord, Text: text}
}

func TestCollect_Paginates(t *testing.T) {
	client := &fakeClient{
		statuses: []JobStatus{StatusSucceeded},
		pages: map[string]*ResultPage{
			"":   {Status: StatusSucceeded, Blocks: []model.Block{word("a", "one")}, NextToken: "t1"},
			"t1": {Status: StatusSucceeded, Blocks: []model.Block{word("b", "two")}, NextToken: "t2"},
			"t2": {Status: StatusSucceeded, Blocks: []model.Block{word("c", "three")}},
		},
	}

	blocks, err := Collect(context.Background(), client, "job-1", time.Millisecond)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "one", blocks[0].Text)
	assert.Equal(t, "three", blocks[2].Text)
}

func TestCollect_WaitsThroughPending(t *testing.T) {
	client := &fakeClient{
		statuses: []JobStatus{StatusPending, StatusInProgress, StatusSucceeded},
		pages: map[string]*ResultPage{
			"": {Status: StatusSucceeded, Blocks: []model.Block{word("a", "done")}},
		},
	}

	blocks, err := Collect(context.Background(), client, "job-1", time.Millisecond)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
}

func TestCollect_FailedCarriesReason(t *testing.T) {
	client := &fakeClient{statuses: []JobStatus{StatusFailed}}

	_, err := Collect(context.Background(), client, "job-1", time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service broke")
}

func TestCollect_UnexpectedStatus(t *testing.T) {
	client := &fakeClient{statuses: []JobStatus{JobStatus("PARTIAL_SUCCESS")}}

	_, err := Collect(context.Background(), client, "job-1", time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestCollect_ContextCancel(t *testing.T) {
	client := &fakeClient{statuses: []JobStatus{StatusPending, StatusPending}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, client, "job-1", time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
