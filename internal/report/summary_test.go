package report

import (
	"errors"
	"math"
	"testing"
)

func scenarioRecord(catastrophe bool) *RunRecord {
	return &RunRecord{
		ID:         "run-seed-1-repetition-0",
		Seed:       "1",
		Repetition: "0",
		Settings: RunSettings{
			NumberOfNodes:       5,
			Duration:            60000,
			GossipDelta:         500,
			FailureDelta:        2000,
			PushPull:            true,
			SimulateCatastrophe: catastrophe,
		},
		ExpectedCrashes: []ScheduledCrash{{Node: 1, Delta: 10}, {Node: 2, Delta: 20}},
		ReportedCrashes: []ReportedCrash{
			{Node: 1, Reporter: 3, Delta: 12},
			{Node: 2, Reporter: 4, Delta: 25},
			{Node: 1, Reporter: 3, Delta: 15},
		},
	}
}

func TestSummarizeSequential(t *testing.T) {
	sum, diags, err := Summarize(scenarioRecord(false), "batch-a")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}

	if sum.Identity.Group != "batch-a" || sum.Identity.Seed != "1" {
		t.Errorf("identity = %+v", sum.Identity)
	}
	st := sum.Statistics
	if st.NExpectedDetected != 7 || st.NCorrectlyDetected != 2 || st.NDuplicated != 1 || st.NWrong != 0 {
		t.Errorf("statistics = %+v", st)
	}
	if math.Abs(st.RateDetected-2.0/7.0) > 1e-9 {
		t.Errorf("RateDetected = %v, want 2/7", st.RateDetected)
	}
	if st.Correct {
		t.Error("Correct = true, want false")
	}
	if math.Abs(st.DetectTimeMean-3.5) > 1e-9 {
		t.Errorf("DetectTimeMean = %v, want 3.5", st.DetectTimeMean)
	}
}

func TestSummarizeCatastrophe(t *testing.T) {
	sum, _, err := Summarize(scenarioRecord(true), "batch-a")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	st := sum.Statistics
	if st.NExpectedDetected != 6 {
		t.Errorf("NExpectedDetected = %v, want 6", st.NExpectedDetected)
	}
	if math.Abs(st.RateDetected-2.0/6.0) > 1e-9 {
		t.Errorf("RateDetected = %v, want 2/6", st.RateDetected)
	}
	if st.Correct {
		t.Error("Correct = true, want false")
	}
}

func TestSummarizeZeroScheduled(t *testing.T) {
	rec := scenarioRecord(false)
	rec.ExpectedCrashes = nil
	rec.ReportedCrashes = nil

	sum, diags, err := Summarize(rec, "g")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	st := sum.Statistics
	if !st.Correct {
		t.Error("Correct = false, want true (nothing scheduled, nothing reported)")
	}
	if st.RateDetected != 0 {
		t.Errorf("RateDetected = %v, want 0", st.RateDetected)
	}
	if st.DetectTimeMean != Undefined || st.DetectTimeFirst != Undefined {
		t.Errorf("timing stats = %+v, want sentinels", st)
	}
	if len(diags) == 0 {
		t.Error("want a diagnostic for the zero-scheduled rate")
	}
}

func TestSummarizeZeroScheduledWithWrongReports(t *testing.T) {
	rec := scenarioRecord(false)
	rec.ExpectedCrashes = nil // every report is now spurious

	sum, _, err := Summarize(rec, "g")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Statistics.Correct {
		t.Error("Correct = true, want false (spurious reports present)")
	}
	if sum.Statistics.NWrong != 3 {
		t.Errorf("NWrong = %d, want 3", sum.Statistics.NWrong)
	}
}

func TestSummarizeUndefinedRatePropagates(t *testing.T) {
	rec := scenarioRecord(true)
	rec.Settings.NumberOfNodes = 2 // catastrophe with all nodes scheduled
	rec.ReportedCrashes = nil

	_, _, err := Summarize(rec, "g")
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Fatalf("error = %v, want ErrDivisionUndefined", err)
	}
}

func TestSummarizeDuplicateScheduled(t *testing.T) {
	rec := scenarioRecord(false)
	rec.ExpectedCrashes = append(rec.ExpectedCrashes, ScheduledCrash{Node: 1, Delta: 99})

	_, _, err := Summarize(rec, "g")
	var malformed *MalformedRecordError
	if !asMalformed(err, &malformed) {
		t.Fatalf("error = %v, want MalformedRecordError", err)
	}
}

func TestRowMatchesColumns(t *testing.T) {
	sum, _, err := Summarize(scenarioRecord(false), "batch-a")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	row := sum.Row()
	cols := Columns()
	if len(row) != len(cols) {
		t.Fatalf("row has %d cells, header has %d columns", len(row), len(cols))
	}
	if row[0] != "batch-a" || row[1] != "run-seed-1-repetition-0" {
		t.Errorf("row head = %v", row[:4])
	}
	// miss_delta is absent in the scenario settings: empty cell, not zero.
	for i, c := range cols {
		if c == "miss_delta" && row[i] != "" {
			t.Errorf("miss_delta cell = %q, want empty", row[i])
		}
		if c == "ratio_miss_delta" && row[i] != "0" {
			t.Errorf("ratio_miss_delta cell = %q, want explicit 0", row[i])
		}
	}
}
