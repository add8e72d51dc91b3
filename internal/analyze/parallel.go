package analyze

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"failsift/internal/logging"
	"failsift/internal/report"
)

// DefaultWorkers bounds the analysis pool when Options.Workers is unset.
const DefaultWorkers = 8

// Options configures one batch analysis.
type Options struct {
	ReportsDir string
	Workers    int
}

// RunFailure records a report file that could not be analyzed.
type RunFailure struct {
	Path string
	Err  error
}

// ResultSet is the outcome of one batch: one summary per analyzable report,
// in discovery order, plus the collected diagnostics and failures.
type ResultSet struct {
	Summaries   []*report.RunSummary
	Diagnostics []report.Diagnostic
	Failures    []RunFailure
}

// Run discovers every report under opts.ReportsDir and analyzes them on a
// bounded worker pool. Each run is a pure function of its own file, so
// workers share nothing; results land in an index-addressed slice and are
// compacted afterwards. Per-file failures are collected, not fatal.
func Run(ctx context.Context, opts Options) (*ResultSet, error) {
	files, err := DiscoverReports(opts.ReportsDir)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	logger := logging.New("analyze")
	logger.Info("analyzing reports", "dir", opts.ReportsDir, "files", len(files), "workers", workers)

	type slot struct {
		summary *report.RunSummary
		diags   []report.Diagnostic
		err     error
	}
	slots := make([]slot, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				slots[i].err = err
				return nil
			}
			slots[i].summary, slots[i].diags, slots[i].err = analyzeOne(f)
			return nil
		})
	}
	_ = g.Wait() // per-file errors live in slots

	rs := &ResultSet{}
	for i, s := range slots {
		if s.err != nil {
			logger.Warn("report skipped", "path", files[i].Path, "error", s.err)
			rs.Failures = append(rs.Failures, RunFailure{Path: files[i].Path, Err: s.err})
			continue
		}
		rs.Summaries = append(rs.Summaries, s.summary)
		rs.Diagnostics = append(rs.Diagnostics, s.diags...)
	}
	return rs, nil
}

func analyzeOne(f ReportFile) (*report.RunSummary, []report.Diagnostic, error) {
	rec, err := report.LoadFile(f.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", f.Path, err)
	}
	sum, diags, err := report.Summarize(rec, f.Group)
	if err != nil {
		return nil, nil, fmt.Errorf("summarize %s: %w", f.Path, err)
	}
	return sum, diags, nil
}
