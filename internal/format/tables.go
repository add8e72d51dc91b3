package format

import (
	"fmt"
	"strconv"

	"failsift/internal/analyze"
	"failsift/internal/report"
)

// FmtStat prints a statistic, rendering the undefined sentinel as "-".
func FmtStat(v float64) string {
	if v == report.Undefined {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FmtRate prints a detection rate with two decimals.
func FmtRate(v float64) string {
	if v == report.Undefined {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// RunTable renders one row per analyzed run.
func RunTable(summaries []*report.RunSummary, m Mode) string {
	t := NewTable(m)
	t.Header("group", "run", "seed", "rep", "ok", "rate", "mean", "stdev", "first", "last", "dup", "wrong")
	for _, s := range summaries {
		st := s.Statistics
		t.Row(
			s.Identity.Group, s.Identity.ID, s.Identity.Seed, s.Identity.Repetition,
			BoolMark(st.Correct), FmtRate(st.RateDetected),
			FmtStat(st.DetectTimeMean), FmtStat(st.DetectTimeStdev),
			FmtStat(st.DetectTimeFirst), FmtStat(st.DetectTimeLast),
			st.NDuplicated, st.NWrong,
		)
	}
	t.Columns(
		ColumnConfig{Number: 6, AlignRight: true},
		ColumnConfig{Number: 7, AlignRight: true},
		ColumnConfig{Number: 8, AlignRight: true},
		ColumnConfig{Number: 9, AlignRight: true},
		ColumnConfig{Number: 10, AlignRight: true},
	)
	return t.String()
}

// GroupTable renders one row per experiment group, with a run-count footer.
func GroupTable(aggs []analyze.GroupAggregate, m Mode) string {
	t := NewTable(m)
	t.Header("group", "runs", "all ok", "rate", "mean detect", "mean dup", "mean wrong")
	total := 0
	for _, a := range aggs {
		total += a.Runs
		t.Row(
			a.Group, a.Runs, BoolMark(a.AllCorrect),
			FmtRate(a.RateDetected), FmtStat(a.DetectTimeMean),
			FmtRate(a.MeanDuplicated), FmtRate(a.MeanWrong),
		)
	}
	t.Footer("total", total, "", "", "", "", "")
	return t.String()
}
