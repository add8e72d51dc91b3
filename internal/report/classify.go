package report

import "fmt"

// ScheduledMap indexes scheduled crashes by node id. A duplicate node id is
// a data-integrity error, not something to overwrite silently.
func ScheduledMap(scheduled []ScheduledCrash) (map[int]float64, error) {
	m := make(map[int]float64, len(scheduled))
	for _, c := range scheduled {
		if _, dup := m[c.Node]; dup {
			return nil, &MalformedRecordError{
				Field:  "result.expected_crashes",
				Reason: fmt.Sprintf("duplicate scheduled crash for node %d", c.Node),
			}
		}
		m[c.Node] = c.Delta
	}
	return m, nil
}

// Classify partitions the reported crashes of one run into correct,
// duplicated, and wrong detections. Pure function: no side effects, output
// depends only on the inputs.
//
// Reports are processed in the order given. Order decides which report wins
// the single correct slot of a (node, reporter) channel, but not the run's
// correctness verdict, which only counts set membership.
//
// A report that predates its node's scheduled crash is bucketed with the
// wrong detections: a detection that cannot be trusted counts as spurious.
func Classify(scheduled map[int]float64, reported []ReportedCrash) Classified {
	out := Classified{Correct: make(map[DetectionKey]float64)}

	for _, crash := range reported {
		scheduledDelta, wasScheduled := scheduled[crash.Node]
		if !wasScheduled || crash.Delta < scheduledDelta {
			out.Wrong = append(out.Wrong, crash)
			continue
		}
		key := DetectionKey{Node: crash.Node, Reporter: crash.Reporter}
		if _, seen := out.Correct[key]; seen {
			out.Duplicated = append(out.Duplicated, crash)
			continue
		}
		out.Correct[key] = crash.Delta
	}

	return out
}
