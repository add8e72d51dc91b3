package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScheduledMap(t *testing.T) {
	m, err := ScheduledMap([]ScheduledCrash{{Node: 1, Delta: 10}, {Node: 2, Delta: 20}})
	if err != nil {
		t.Fatalf("ScheduledMap: %v", err)
	}
	want := map[int]float64{1: 10, 2: 20}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("ScheduledMap mismatch (-want +got):\n%s", diff)
	}
}

func TestScheduledMapDuplicateNode(t *testing.T) {
	_, err := ScheduledMap([]ScheduledCrash{{Node: 1, Delta: 10}, {Node: 1, Delta: 30}})
	var malformed *MalformedRecordError
	if !asMalformed(err, &malformed) {
		t.Fatalf("want MalformedRecordError, got %v", err)
	}
	if malformed.Field != "result.expected_crashes" {
		t.Errorf("field = %q, want result.expected_crashes", malformed.Field)
	}
}

func TestClassifyScenario(t *testing.T) {
	// n=5 nodes, A=1@10 and B=2@20 scheduled; one duplicate channel report.
	scheduled := map[int]float64{1: 10, 2: 20}
	reported := []ReportedCrash{
		{Node: 1, Reporter: 3, Delta: 12},
		{Node: 2, Reporter: 4, Delta: 25},
		{Node: 1, Reporter: 3, Delta: 15},
	}

	got := Classify(scheduled, reported)

	wantCorrect := map[DetectionKey]float64{
		{Node: 1, Reporter: 3}: 12,
		{Node: 2, Reporter: 4}: 25,
	}
	if diff := cmp.Diff(wantCorrect, got.Correct); diff != "" {
		t.Errorf("correct mismatch (-want +got):\n%s", diff)
	}
	if len(got.Duplicated) != 1 || got.Duplicated[0].Delta != 15 {
		t.Errorf("duplicated = %v, want one report with delta 15", got.Duplicated)
	}
	if len(got.Wrong) != 0 {
		t.Errorf("wrong = %v, want empty", got.Wrong)
	}
}

func TestClassifyUnscheduledNodeIsWrong(t *testing.T) {
	scheduled := map[int]float64{1: 10}
	reported := []ReportedCrash{{Node: 9, Reporter: 2, Delta: 50}}

	got := Classify(scheduled, reported)
	if len(got.Wrong) != 1 || len(got.Correct) != 0 || len(got.Duplicated) != 0 {
		t.Errorf("Classify = %+v, want single wrong report", got)
	}
}

func TestClassifyEarlyDetectionIsWrong(t *testing.T) {
	// A report that predates the scheduled crash cannot be trusted and is
	// bucketed with the spurious reports.
	scheduled := map[int]float64{1: 100}
	reported := []ReportedCrash{{Node: 1, Reporter: 2, Delta: 90}}

	got := Classify(scheduled, reported)
	if len(got.Wrong) != 1 || len(got.Correct) != 0 {
		t.Errorf("Classify = %+v, want early report classified wrong", got)
	}
}

func TestClassifyFirstCorrectWins(t *testing.T) {
	scheduled := map[int]float64{1: 10}
	reported := []ReportedCrash{
		{Node: 1, Reporter: 2, Delta: 30},
		{Node: 1, Reporter: 2, Delta: 12},
	}

	got := Classify(scheduled, reported)
	if got.Correct[DetectionKey{Node: 1, Reporter: 2}] != 30 {
		t.Errorf("correct delta = %v, want first report (30) to win the slot",
			got.Correct[DetectionKey{Node: 1, Reporter: 2}])
	}
	if len(got.Duplicated) != 1 {
		t.Errorf("duplicated = %v, want the later report", got.Duplicated)
	}
}

func TestClassifyPartitionsCoverInput(t *testing.T) {
	scheduled := map[int]float64{1: 10, 2: 20, 3: 30}
	reported := []ReportedCrash{
		{Node: 1, Reporter: 4, Delta: 11},
		{Node: 1, Reporter: 4, Delta: 12},
		{Node: 2, Reporter: 5, Delta: 19}, // early -> wrong
		{Node: 3, Reporter: 6, Delta: 31},
		{Node: 7, Reporter: 8, Delta: 40}, // unscheduled -> wrong
	}

	got := Classify(scheduled, reported)
	total := len(got.Correct) + len(got.Duplicated) + len(got.Wrong)
	if total != len(reported) {
		t.Errorf("partition cardinality = %d, want %d", total, len(reported))
	}
}

func TestClassifyEmptyInputs(t *testing.T) {
	got := Classify(map[int]float64{}, nil)
	if len(got.Correct) != 0 || len(got.Duplicated) != 0 || len(got.Wrong) != 0 {
		t.Errorf("Classify on empty inputs = %+v, want all empty", got)
	}
}
