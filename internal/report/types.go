// Package report is the classification and statistics engine for gossip
// failure-detection simulation reports. One report describes one run: the
// crashes the simulator scheduled and the detections the nodes reported.
// The engine classifies every reported detection, computes the expected
// number of correct detections under the run's failure model, and derives
// correctness and timing statistics.
//
// Everything in this package is a pure function of one run's record; runs
// share no state and can be processed in parallel.
package report

// ScheduledCrash is a failure event injected by the simulator: node crashes
// at simulated time offset Delta. Node ids are unique within one run.
type ScheduledCrash struct {
	Node  int     `json:"node"`
	Delta float64 `json:"delta"`
}

// ReportedCrash is an observation that Reporter detected Node as crashed at
// time Delta. The same (node, reporter) pair can report more than once.
type ReportedCrash struct {
	Node     int     `json:"node"`
	Reporter int     `json:"reporter"`
	Delta    float64 `json:"delta"`
}

// DetectionKey identifies one detection channel. At most one correct
// detection is retained per key; further matching reports are duplicates.
type DetectionKey struct {
	Node     int
	Reporter int
}

// RunSettings is the immutable configuration snapshot of one run.
// Pointer fields are optional in the input record; a nil value means the
// setting was absent (not zero).
type RunSettings struct {
	NumberOfNodes          int      `json:"number_of_nodes"`
	Duration               float64  `json:"duration"`
	GossipDelta            float64  `json:"gossip_delta"`
	FailureDelta           float64  `json:"failure_delta"`
	MissDelta              *float64 `json:"miss_delta,omitempty"`
	PushPull               bool     `json:"push_pull"`
	PickStrategy           int      `json:"pick_strategy"`
	EnableMulticast        bool     `json:"enable_multicast"`
	MulticastParameter     *float64 `json:"multicast_parameter,omitempty"`
	MulticastMaxWait       *float64 `json:"multicast_max_wait,omitempty"`
	ExpectedFirstMulticast *float64 `json:"expected_first_multicast,omitempty"`
	SimulateCatastrophe    bool     `json:"simulate_catastrophe"`
}

// RunRecord is one run's parsed report: identity, settings, and raw results.
type RunRecord struct {
	ID         string
	Seed       string
	Repetition string
	Settings   RunSettings

	ExpectedCrashes []ScheduledCrash
	ReportedCrashes []ReportedCrash
	ReappearedNodes []int
}

// Classified partitions the reported crashes of one run. The three buckets
// are disjoint and their union covers every input report.
type Classified struct {
	// Correct holds the first valid detection per channel, keyed by
	// (node, reporter), with the report delta as value.
	Correct map[DetectionKey]float64
	// Duplicated holds valid detections whose channel already has a
	// correct entry.
	Duplicated []ReportedCrash
	// Wrong holds spurious detections: the node was never scheduled to
	// crash, or the report predates the scheduled crash.
	Wrong []ReportedCrash
}

// RunStatistics are the derived scalar summaries of one run. Timing fields
// use the Undefined sentinel when the sample is too small.
type RunStatistics struct {
	Correct            bool    `json:"correct"`
	NScheduled         int     `json:"n_scheduled_crashes"`
	NExpectedDetected  float64 `json:"n_expected_detected_crashes"`
	NCorrectlyDetected int     `json:"n_correctly_detected_crashes"`
	NDuplicated        int     `json:"n_duplicated_reported_crashes"`
	NWrong             int     `json:"n_wrongly_reported_crashes"`
	NReappeared        int     `json:"n_reappeared"`
	RateDetected       float64 `json:"rate_detected_crashes"`
	DetectTimeMean     float64 `json:"detect_time_average"`
	DetectTimeStdev    float64 `json:"detect_time_stdev"`
	DetectTimeFirst    float64 `json:"detect_time_first"`
	DetectTimeLast     float64 `json:"detect_time_last"`
}

// DerivedRatios normalize optional timing settings by the failure interval,
// for downstream grouping. Absent settings yield an explicit 0, never null,
// so grouping code has no special case.
type DerivedRatios struct {
	MaxWaitOverFailure        float64 `json:"ratio_max_wait_and_failure"`
	FirstMulticastOverFailure float64 `json:"ratio_expected_first_multicast"`
	MissDeltaOverFailure      float64 `json:"ratio_miss_delta"`
}

// RunIdentity names one run within a group of experiments.
type RunIdentity struct {
	Group      string `json:"group"`
	ID         string `json:"id"`
	Seed       string `json:"seed"`
	Repetition string `json:"repetition"`
}

// RunSummary is the engine's sole output: one immutable row per run.
type RunSummary struct {
	Identity   RunIdentity   `json:"identity"`
	Settings   RunSettings   `json:"settings"`
	Ratios     DerivedRatios `json:"ratios"`
	Statistics RunStatistics `json:"statistics"`
}

// Diagnostic is a non-fatal advisory produced while computing statistics,
// e.g. a degenerate sample forcing a sentinel value. The engine returns
// diagnostics instead of writing to a shared output stream.
type Diagnostic struct {
	RunID   string
	Stat    string
	Message string
}
