// Package analysis defines the document-analysis collaborator: the external
// service that turns a PDF into a flat list of detected blocks.
package analysis

import (
	"context"

	"github.com/statledger-dev/statledger/internal/model"
)

// JobStatus is the state of an analysis job.
type JobStatus string

const (
	StatusPending    JobStatus = "PENDING"
	StatusInProgress JobStatus = "IN_PROGRESS"
	StatusSucceeded  JobStatus = "SUCCEEDED"
	StatusFailed     JobStatus = "FAILED"
)

// DocumentLocation points the service at a stored document.
type DocumentLocation struct {
	Bucket string
	Key    string
}

// ResultPage is one page of job results. NextToken is empty on the last page.
type ResultPage struct {
	Status        JobStatus
	StatusMessage string
	Blocks        []model.Block
	NextToken     string
}

// Client is the analysis service interface.
type Client interface {
	StartAnalysis(ctx context.Context, loc DocumentLocation) (jobID string, err error)
	GetAnalysis(ctx context.Context, jobID, nextToken string) (*ResultPage, error)
}
