package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/statledger-dev/statledger/internal/extract"
	"github.com/statledger-dev/statledger/internal/ledger"
	"github.com/statledger-dev/statledger/internal/model"
	"github.com/statledger-dev/statledger/internal/normalize"
	"github.com/statledger-dev/statledger/internal/runlog"
	"github.com/statledger-dev/statledger/internal/statement"
)

func newAssembleCommand() *cobra.Command {
	var out string
	var profilePath string
	var formatName string
	var summariesPath string
	var logPath string

	cmd := &cobra.Command{
		Use:   "assemble <artifact-dir>",
		Short: "Normalize table artifacts and assemble the trade ledger",
		Long: `Reads every table artifact in the directory, locates each table's true
header, removes aggregate and metadata rows, and merges all trades into one
typed ledger sorted by date and symbol. A file whose header cannot be found is
skipped and reported; it does not abort the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := resolveProfile(profilePath, formatName)
			if err != nil {
				return err
			}
			return runAssemble(args[0], out, summariesPath, logPath, profile)
		},
	}

	cmd.Flags().StringVar(&out, "out", "ledger.csv", "output ledger file")
	cmd.Flags().StringVar(&profilePath, "profile", "", "statement-format profile YAML")
	cmd.Flags().StringVar(&formatName, "format", "ibkr", "built-in statement format")
	cmd.Flags().StringVar(&summariesPath, "summaries", "", "also write captured summary totals to this file")
	cmd.Flags().StringVar(&logPath, "run-log", "", "append per-file outcomes to this CSV")

	return cmd
}

// resolveProfile prefers an explicit YAML profile over a built-in format name.
func resolveProfile(profilePath, formatName string) (statement.Profile, error) {
	if profilePath != "" {
		return statement.Load(profilePath)
	}
	p, ok := statement.DefaultRegistry().Get(formatName)
	if !ok {
		return statement.Profile{}, fmt.Errorf("unknown statement format %q", formatName)
	}
	return p, nil
}

func runAssemble(dir, out, summariesPath, logPath string, profile statement.Profile) error {
	files, err := listArtifacts(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no table artifacts in %s", dir)
	}

	var batches [][]model.TradeRecord
	totals := map[string]string{}
	var logEntries []runlog.Entry
	failed := 0

	for _, file := range files {
		records, fileTotals, dropped, err := assembleFile(file, profile)
		if err != nil {
			// One bad file must not abort the batch.
			slog.Warn("skipping file", "file", file, "error", err)
			logEntries = append(logEntries, runlog.Entry{
				Timestamp: time.Now().UTC(),
				File:      file,
				Status:    runlog.StatusSkipped,
				Detail:    err.Error(),
			})
			failed++
			continue
		}

		totals = statement.MergeSummaries(totals, fileTotals)
		batches = append(batches, records)

		detail := ""
		if dropped > 0 {
			detail = fmt.Sprintf("%d row(s) dropped for unparseable dates", dropped)
		}
		logEntries = append(logEntries, runlog.Entry{
			Timestamp: time.Now().UTC(),
			File:      file,
			Status:    runlog.StatusOK,
			Rows:      len(records),
			Detail:    detail,
		})
	}

	all := ledger.Merge(batches...)
	ledger.Sort(all)

	if err := writeLedger(out, all); err != nil {
		return err
	}
	if summariesPath != "" {
		if err := writeSummaries(summariesPath, totals); err != nil {
			return err
		}
	}
	if logPath != "" {
		if err := runlog.Append(logPath, logEntries); err != nil {
			return err
		}
	}

	fmt.Printf("Assembled %d trade(s) from %d of %d file(s) into %s\n",
		len(all), len(files)-failed, len(files), out)
	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be processed", failed)
	}
	return nil
}

// assembleFile runs one artifact through the normalization pipeline.
func assembleFile(path string, profile statement.Profile) ([]model.TradeRecord, map[string]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	raw, err := normalize.ReadRagged(f, profile.ScanWidth)
	if err != nil {
		return nil, nil, 0, err
	}

	table, err := normalize.PromoteHeaderScan(raw, filepath.Base(path), profile.DescriptionColumn, profile.DateTimeColumn)
	if err != nil {
		var hnf *normalize.HeaderNotFoundError
		if errors.As(err, &hnf) {
			return nil, nil, 0, err
		}
		return nil, nil, 0, fmt.Errorf("normalizing %s: %w", path, err)
	}

	// Capture totals before filtering removes the rows that carry them.
	fileTotals := statement.CaptureSummaries(table, profile)
	filtered := statement.FilterAggregates(table, profile)

	records, dropped := ledger.BuildRecords(filtered, profile)
	return records, fileTotals, dropped, nil
}

// listArtifacts returns the directory's CSV files, numbered artifacts first in
// table order, anything else after in name order.
func listArtifacts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading artifact dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}

	sort.SliceStable(names, func(i, j int) bool {
		ni, iok := extract.ParseArtifact(names[i])
		nj, jok := extract.ParseArtifact(names[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok:
			return true
		case jok:
			return false
		default:
			return names[i] < names[j]
		}
	})

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

func writeLedger(path string, records []model.TradeRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := ledger.Write(f, records); err != nil {
		return err
	}
	return f.Close()
}

func writeSummaries(path string, totals map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := ledger.WriteSummaries(f, totals); err != nil {
		return err
	}
	return f.Close()
}
