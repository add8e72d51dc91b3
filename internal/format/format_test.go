package format_test

import (
	"strings"
	"testing"

	"failsift/internal/analyze"
	"failsift/internal/format"
	"failsift/internal/report"
)

func sampleSummary() *report.RunSummary {
	return &report.RunSummary{
		Identity: report.RunIdentity{Group: "2407_n16", ID: "run-seed-9-repetition-2", Seed: "9", Repetition: "2"},
		Statistics: report.RunStatistics{
			Correct:         true,
			RateDetected:    1,
			DetectTimeMean:  2100,
			DetectTimeStdev: report.Undefined,
			DetectTimeFirst: 2100,
			DetectTimeLast:  2100,
		},
	}
}

func TestRunTable_ASCII(t *testing.T) {
	out := format.RunTable([]*report.RunSummary{sampleSummary()}, format.ASCII)

	if !strings.Contains(out, "2407_n16") {
		t.Errorf("expected group in output:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("expected correctness mark in output:\n%s", out)
	}
	// Sentinel statistics render as "-", never as -1.
	if strings.Contains(out, "-1") {
		t.Errorf("sentinel leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "───") {
		t.Errorf("expected box-drawing characters in ASCII output:\n%s", out)
	}
}

func TestGroupTable_MarkdownWithFooter(t *testing.T) {
	aggs := []analyze.GroupAggregate{
		{Group: "a", Runs: 3, AllCorrect: true, RateDetected: 0.95, DetectTimeMean: 1800},
		{Group: "b", Runs: 2, AllCorrect: false, RateDetected: 0.5, DetectTimeMean: report.Undefined},
	}
	out := format.GroupTable(aggs, format.Markdown)

	if !strings.Contains(out, "| group") {
		t.Errorf("expected markdown header:\n%s", out)
	}
	if !strings.Contains(out, "total") || !strings.Contains(out, "5") {
		t.Errorf("expected run-count footer in output:\n%s", out)
	}
	if !strings.Contains(out, "0.95") {
		t.Errorf("expected rate in output:\n%s", out)
	}
}

func TestFmtStat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{report.Undefined, "-"},
		{2100.5, "2100.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := format.FmtStat(tt.in); got != tt.want {
			t.Errorf("FmtStat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if format.ParseMode("markdown") != format.Markdown || format.ParseMode("md") != format.Markdown {
		t.Error("markdown aliases should map to Markdown")
	}
	if format.ParseMode("") != format.ASCII || format.ParseMode("ascii") != format.ASCII {
		t.Error("default should be ASCII")
	}
}
