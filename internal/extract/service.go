package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/statledger-dev/statledger/internal/analysis"
	"github.com/statledger-dev/statledger/internal/blob"
	"github.com/statledger-dev/statledger/internal/model"
)

// Service runs a document through analysis and writes one artifact per table.
type Service struct {
	Client       analysis.Client
	Store        blob.Store
	Bucket       string
	KeyPrefix    string
	PollInterval time.Duration
}

// Result reports what a run produced. Skipped counts tables that could not be
// reconstructed; callers can tell an empty document from a failed one.
type Result struct {
	Written []string
	Skipped int
}

// Run uploads the document, collects analysis blocks, and writes artifacts
// named prefix-1.csv, prefix-2.csv, ... in table order. The remote object is
// deleted even when analysis fails.
func (s *Service) Run(ctx context.Context, documentPath, outPrefix string) (*Result, error) {
	key := path.Join(s.KeyPrefix, uuid.NewString()+".pdf")
	if err := s.Store.Put(ctx, documentPath, key); err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}
	defer func() {
		if err := s.Store.Delete(ctx, key); err != nil {
			slog.Warn("could not delete remote object", "key", key, "error", err)
		}
	}()

	jobID, err := s.Client.StartAnalysis(ctx, analysis.DocumentLocation{Bucket: s.Bucket, Key: key})
	if err != nil {
		return nil, fmt.Errorf("starting analysis: %w", err)
	}

	blocks, err := analysis.Collect(ctx, s.Client, jobID, s.PollInterval)
	if err != nil {
		return nil, err
	}

	return WriteTables(blocks, outPrefix)
}

// WriteTables reconstructs every TABLE in blocks and writes one artifact per
// grid. Unprocessable tables are skipped with a warning, not a failure.
func WriteTables(blocks []model.Block, outPrefix string) (*Result, error) {
	if dir := filepath.Dir(outPrefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}

	byID := model.MapByID(blocks)
	tables := Tables(blocks)

	result := &Result{}
	for i, table := range tables {
		n := i + 1
		grid, err := BuildGrid(table, byID)
		if err != nil {
			if errors.Is(err, ErrNoCells) {
				slog.Warn("skipping unprocessable table", "table", n, "error", err)
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("table %d: %w", n, err)
		}

		name := FormatArtifact(outPrefix, n)
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		if err := WriteGrid(f, grid); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("closing %s: %w", name, err)
		}

		slog.Info("wrote table artifact", "file", name, "rows", grid.Rows(), "cols", grid.Cols())
		result.Written = append(result.Written, name)
	}
	return result, nil
}
