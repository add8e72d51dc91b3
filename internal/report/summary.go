package report

import "strconv"

// Summarize classifies one run's reported crashes and assembles the final
// RunSummary under the caller-supplied group label. This is the single
// entry point tying loader, classifier, expectation model, and statistics
// together; the helpers remain available for partial analysis.
//
// Zero-scheduled runs are the documented special case of the rate division:
// no crash was injected, so there is nothing to rate. Such a run gets rate 0
// and is correct iff nothing was reported wrongly or twice and no node
// reappeared. Any other run with a zero expectation (catastrophe mode with
// every node scheduled) has a genuinely undefined rate and returns
// ErrDivisionUndefined.
func Summarize(rec *RunRecord, group string) (*RunSummary, []Diagnostic, error) {
	scheduled, err := ScheduledMap(rec.ExpectedCrashes)
	if err != nil {
		return nil, nil, err
	}

	classified := Classify(scheduled, rec.ReportedCrashes)

	var (
		stats RunStatistics
		diags []Diagnostic
	)
	if len(scheduled) == 0 {
		stats, diags = zeroScheduledStatistics(classified, len(rec.ReappearedNodes), rec.ID)
	} else {
		stats, diags, err = ComputeStatistics(classified, scheduled,
			rec.Settings.NumberOfNodes, rec.Settings.SimulateCatastrophe,
			len(rec.ReappearedNodes), rec.ID)
		if err != nil {
			return nil, nil, err
		}
	}

	return &RunSummary{
		Identity: RunIdentity{
			Group:      group,
			ID:         rec.ID,
			Seed:       rec.Seed,
			Repetition: rec.Repetition,
		},
		Settings:   rec.Settings,
		Ratios:     deriveRatios(rec.Settings),
		Statistics: stats,
	}, diags, nil
}

// zeroScheduledStatistics summarizes a run with no scheduled crashes. All
// reported crashes are necessarily wrong; timing statistics are sentinel.
func zeroScheduledStatistics(classified Classified, nReappeared int, runID string) (RunStatistics, []Diagnostic) {
	stats := RunStatistics{
		NWrong:          len(classified.Wrong),
		NDuplicated:     len(classified.Duplicated),
		NReappeared:     nReappeared,
		Correct:         len(classified.Wrong) == 0 && len(classified.Duplicated) == 0 && nReappeared == 0,
		DetectTimeMean:  Undefined,
		DetectTimeStdev: Undefined,
		DetectTimeFirst: Undefined,
		DetectTimeLast:  Undefined,
	}
	diags := []Diagnostic{
		{RunID: runID, Stat: "rate_detected_crashes", Message: "no scheduled crashes, rate set to 0"},
	}
	return stats, diags
}

// Columns is the stable flat-row header shared by the CSV export, the
// tabular output, and the store. Order matters to downstream consumers.
func Columns() []string {
	return []string{
		"group", "id", "seed", "repetition",
		"simulate_catastrophe", "number_of_nodes", "duration",
		"gossip_delta", "failure_delta", "miss_delta",
		"push_pull", "pick_strategy",
		"enable_multicast", "multicast_parameter", "multicast_max_wait",
		"expected_first_multicast",
		"ratio_max_wait_and_failure", "ratio_expected_first_multicast", "ratio_miss_delta",
		"correct", "n_scheduled_crashes",
		"n_expected_detected_crashes", "n_correctly_detected_crashes",
		"n_duplicated_reported_crashes", "n_wrongly_reported_crashes", "n_reappeared",
		"rate_detected_crashes",
		"detect_time_average", "detect_time_stdev",
		"detect_time_first", "detect_time_last",
	}
}

// Row projects the summary onto Columns. Optional settings render as the
// empty string when absent; ratios keep their explicit zeros.
func (s *RunSummary) Row() []string {
	return []string{
		s.Identity.Group, s.Identity.ID, s.Identity.Seed, s.Identity.Repetition,
		formatBool(s.Settings.SimulateCatastrophe),
		strconv.Itoa(s.Settings.NumberOfNodes),
		formatFloat(s.Settings.Duration),
		formatFloat(s.Settings.GossipDelta),
		formatFloat(s.Settings.FailureDelta),
		formatOptional(s.Settings.MissDelta),
		formatBool(s.Settings.PushPull),
		strconv.Itoa(s.Settings.PickStrategy),
		formatBool(s.Settings.EnableMulticast),
		formatOptional(s.Settings.MulticastParameter),
		formatOptional(s.Settings.MulticastMaxWait),
		formatOptional(s.Settings.ExpectedFirstMulticast),
		formatFloat(s.Ratios.MaxWaitOverFailure),
		formatFloat(s.Ratios.FirstMulticastOverFailure),
		formatFloat(s.Ratios.MissDeltaOverFailure),
		formatBool(s.Statistics.Correct),
		strconv.Itoa(s.Statistics.NScheduled),
		formatFloat(s.Statistics.NExpectedDetected),
		strconv.Itoa(s.Statistics.NCorrectlyDetected),
		strconv.Itoa(s.Statistics.NDuplicated),
		strconv.Itoa(s.Statistics.NWrong),
		strconv.Itoa(s.Statistics.NReappeared),
		formatFloat(s.Statistics.RateDetected),
		formatFloat(s.Statistics.DetectTimeMean),
		formatFloat(s.Statistics.DetectTimeStdev),
		formatFloat(s.Statistics.DetectTimeFirst),
		formatFloat(s.Statistics.DetectTimeLast),
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
