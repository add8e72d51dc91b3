package report

import (
	"fmt"
	"math"
)

// Undefined marks a statistic whose sample was too small to compute.
// It is a deliberate sentinel, distinct from zero and from an error:
// degenerate samples are advisory, not fatal.
const Undefined = -1

// Rate is the detected-over-expected ratio. Surfaces ErrDivisionUndefined
// when the expectation is zero so callers cannot accidentally carry NaN/Inf
// into aggregate statistics.
func Rate(nCorrect int, expected float64) (float64, error) {
	if expected == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(nCorrect) / expected, nil
}

// ComputeStatistics derives the scalar summaries of one classified run.
// runID only labels diagnostics.
//
// The run is correct iff the correct-detection count equals the expectation
// exactly and there are no duplicated reports, no wrong reports, and no
// reappeared nodes. Detection delays (report delta minus scheduled delta)
// feed mean/stdev; first/last are min/max of the raw correct report deltas.
// Degenerate samples set the affected statistics to Undefined and add a
// Diagnostic instead of failing.
func ComputeStatistics(classified Classified, scheduled map[int]float64, nNodes int,
	catastrophe bool, nReappeared int, runID string,
) (RunStatistics, []Diagnostic, error) {
	nScheduled := len(scheduled)
	expected := ExpectedDetections(nScheduled, nNodes, catastrophe)
	nCorrect := len(classified.Correct)

	rate, err := Rate(nCorrect, expected)
	if err != nil {
		return RunStatistics{}, nil, fmt.Errorf("run %q: %w", runID, err)
	}

	stats := RunStatistics{
		NScheduled:         nScheduled,
		NExpectedDetected:  expected,
		NCorrectlyDetected: nCorrect,
		NDuplicated:        len(classified.Duplicated),
		NWrong:             len(classified.Wrong),
		NReappeared:        nReappeared,
		RateDetected:       rate,
		Correct: expected == float64(nCorrect) &&
			len(classified.Duplicated) == 0 &&
			len(classified.Wrong) == 0 &&
			nReappeared == 0,
	}

	delays := make([]float64, 0, nCorrect)
	for key, delta := range classified.Correct {
		scheduledDelta := scheduled[key.Node]
		if delta < scheduledDelta {
			// Classify guarantees delta >= scheduledDelta for correct entries.
			return RunStatistics{}, nil, fmt.Errorf(
				"run %q: correct detection of node %d at %v predates scheduled crash at %v",
				runID, key.Node, delta, scheduledDelta)
		}
		delays = append(delays, delta-scheduledDelta)
	}

	var diags []Diagnostic
	if m, ok := sampleMean(delays); ok {
		stats.DetectTimeMean = m
	} else {
		stats.DetectTimeMean = Undefined
		diags = append(diags, Diagnostic{
			RunID: runID, Stat: "detect_time_average",
			Message: "no detected failures, average set to -1",
		})
	}
	if sd, ok := sampleStdev(delays); ok {
		stats.DetectTimeStdev = sd
	} else {
		stats.DetectTimeStdev = Undefined
		diags = append(diags, Diagnostic{
			RunID: runID, Stat: "detect_time_stdev",
			Message: "0 or 1 detected failures, st.dev set to -1",
		})
	}

	stats.DetectTimeFirst = Undefined
	stats.DetectTimeLast = Undefined
	if nCorrect > 0 {
		first, last := math.Inf(1), math.Inf(-1)
		for _, delta := range classified.Correct {
			first = math.Min(first, delta)
			last = math.Max(last, delta)
		}
		stats.DetectTimeFirst = first
		stats.DetectTimeLast = last
	}

	return stats, diags, nil
}

// CorrectMean averages values, excluding Undefined sentinels. Returns
// Undefined when every value is sentinel. Aggregation across runs must use
// this, never a plain mean, so placeholder values do not skew averages.
func CorrectMean(vals []float64) float64 {
	ok := vals[:0:0]
	for _, v := range vals {
		if v != Undefined {
			ok = append(ok, v)
		}
	}
	m, defined := sampleMean(ok)
	if !defined {
		return Undefined
	}
	return m
}

// sampleMean needs at least one value.
func sampleMean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// sampleStdev is the sample standard deviation (n−1); needs two values.
func sampleStdev(vals []float64) (float64, bool) {
	if len(vals) < 2 {
		return 0, false
	}
	m, _ := sampleMean(vals)
	sum := 0.0
	for _, v := range vals {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(vals)-1)), true
}
