package report

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// rawRecord mirrors the report JSON with pointer fields so that absent
// required fields are detectable and reported by name.
type rawRecord struct {
	ID         *string      `json:"id"`
	Seed       *string      `json:"seed"`
	Repetition *string      `json:"repetition"`
	Settings   *rawSettings `json:"settings"`
	Result     *rawResult   `json:"result"`
}

type rawSettings struct {
	NumberOfNodes          *int     `json:"number_of_nodes"`
	Duration               *float64 `json:"duration"`
	GossipDelta            *float64 `json:"gossip_delta"`
	FailureDelta           *float64 `json:"failure_delta"`
	MissDelta              *float64 `json:"miss_delta"`
	PushPull               *bool    `json:"push_pull"`
	PickStrategy           *int     `json:"pick_strategy"`
	EnableMulticast        *bool    `json:"enable_multicast"`
	MulticastParameter     *float64 `json:"multicast_parameter"`
	MulticastMaxWait       *float64 `json:"multicast_max_wait"`
	ExpectedFirstMulticast *float64 `json:"expected_first_multicast"`
	SimulateCatastrophe    *bool    `json:"simulate_catastrophe"`
}

type rawResult struct {
	ExpectedCrashes *[]ScheduledCrash `json:"expected_crashes"`
	ReportedCrashes *[]ReportedCrash  `json:"reported_crashes"`
	ReappearedNodes []int             `json:"reappeared_nodes"`
}

var (
	seedPattern       = regexp.MustCompile(`seed-([0-9]+)`)
	repetitionPattern = regexp.MustCompile(`repetition-([0-9]+)`)
)

// extractStrategy yields a value for an identity field, or false when the
// strategy does not apply. Strategies are tried in order; the first hit wins.
type extractStrategy func() (string, bool)

func fromField(p *string) extractStrategy {
	return func() (string, bool) {
		if p == nil {
			return "", false
		}
		return *p, true
	}
}

func fromID(re *regexp.Regexp, id string) extractStrategy {
	return func() (string, bool) {
		m := re.FindStringSubmatch(id)
		if m == nil {
			return "", false
		}
		return m[1], true
	}
}

func extract(strategies ...extractStrategy) (string, bool) {
	for _, s := range strategies {
		if v, ok := s(); ok {
			return v, true
		}
	}
	return "", false
}

// LoadFile reads and parses one report file.
func LoadFile(path string) (*RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return Load(data)
}

// Load parses one report record. Required fields fail fast with a
// MalformedRecordError naming the field; optional fields are recovered via
// their documented fallbacks (seed/repetition parsed from the run id,
// absent timing settings kept as nil).
func Load(data []byte) (*RunRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse report json: %w", err)
	}

	if raw.ID == nil {
		return nil, missingField("id")
	}
	if raw.Settings == nil {
		return nil, missingField("settings")
	}
	if raw.Result == nil {
		return nil, missingField("result")
	}

	s := raw.Settings
	for field, present := range map[string]bool{
		"settings.number_of_nodes":      s.NumberOfNodes != nil,
		"settings.duration":             s.Duration != nil,
		"settings.gossip_delta":         s.GossipDelta != nil,
		"settings.failure_delta":        s.FailureDelta != nil,
		"settings.push_pull":            s.PushPull != nil,
		"settings.pick_strategy":        s.PickStrategy != nil,
		"settings.enable_multicast":     s.EnableMulticast != nil,
		"settings.simulate_catastrophe": s.SimulateCatastrophe != nil,
	} {
		if !present {
			return nil, missingField(field)
		}
	}
	if raw.Result.ExpectedCrashes == nil {
		return nil, missingField("result.expected_crashes")
	}
	if raw.Result.ReportedCrashes == nil {
		return nil, missingField("result.reported_crashes")
	}
	// Every derived ratio divides by the failure interval.
	if *s.FailureDelta == 0 {
		return nil, &MalformedRecordError{Field: "settings.failure_delta", Reason: "must be non-zero"}
	}

	id := *raw.ID
	seed, ok := extract(fromField(raw.Seed), fromID(seedPattern, id))
	if !ok {
		return nil, &MalformedRecordError{Field: "seed", Reason: "absent and not encoded in id"}
	}
	repetition, ok := extract(fromField(raw.Repetition), fromID(repetitionPattern, id))
	if !ok {
		return nil, &MalformedRecordError{Field: "repetition", Reason: "absent and not encoded in id"}
	}

	// Scheduled node ids must be unique: the expectation model counts
	// crashes, and a duplicate would silently overwrite its schedule.
	if _, err := ScheduledMap(*raw.Result.ExpectedCrashes); err != nil {
		return nil, err
	}

	return &RunRecord{
		ID:         id,
		Seed:       seed,
		Repetition: repetition,
		Settings: RunSettings{
			NumberOfNodes:          *s.NumberOfNodes,
			Duration:               *s.Duration,
			GossipDelta:            *s.GossipDelta,
			FailureDelta:           *s.FailureDelta,
			MissDelta:              s.MissDelta,
			PushPull:               *s.PushPull,
			PickStrategy:           *s.PickStrategy,
			EnableMulticast:        *s.EnableMulticast,
			MulticastParameter:     s.MulticastParameter,
			MulticastMaxWait:       s.MulticastMaxWait,
			ExpectedFirstMulticast: s.ExpectedFirstMulticast,
			SimulateCatastrophe:    *s.SimulateCatastrophe,
		},
		ExpectedCrashes: *raw.Result.ExpectedCrashes,
		ReportedCrashes: *raw.Result.ReportedCrashes,
		ReappearedNodes: raw.Result.ReappearedNodes,
	}, nil
}
