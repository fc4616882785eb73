package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/statledger-dev/statledger/internal/model"
)

// Collect waits for the job to finish and returns the full concatenated block
// sequence across all result pages. A FAILED job is fatal for the document and
// the returned error carries the service-provided reason.
func Collect(ctx context.Context, client Client, jobID string, interval time.Duration) ([]model.Block, error) {
	for {
		page, err := client.GetAnalysis(ctx, jobID, "")
		if err != nil {
			return nil, fmt.Errorf("polling job %s: %w", jobID, err)
		}

		switch page.Status {
		case StatusSucceeded:
			return drain(ctx, client, jobID, page)
		case StatusFailed:
			msg := page.StatusMessage
			if msg == "" {
				msg = "no reason given"
			}
			return nil, fmt.Errorf("analysis job %s failed: %s", jobID, msg)
		case StatusPending, StatusInProgress:
			slog.Debug("analysis in progress", "job", jobID, "status", page.Status)
		default:
			return nil, fmt.Errorf("analysis job %s: unexpected status %q", jobID, page.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// drain follows continuation tokens starting from the first succeeded page.
func drain(ctx context.Context, client Client, jobID string, first *ResultPage) ([]model.Block, error) {
	blocks := append([]model.Block(nil), first.Blocks...)
	token := first.NextToken

	for token != "" {
		page, err := client.GetAnalysis(ctx, jobID, token)
		if err != nil {
			return nil, fmt.Errorf("fetching results for job %s: %w", jobID, err)
		}
		blocks = append(blocks, page.Blocks...)
		token = page.NextToken
	}
	return blocks, nil
}
