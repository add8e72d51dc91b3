package analyze

import (
	"sort"

	"failsift/internal/report"
)

// GroupAggregate condenses the runs of one group. Means over sentinel-able
// statistics use report.CorrectMean, so a group where every run had a
// degenerate sample aggregates to the sentinel instead of a skewed average.
type GroupAggregate struct {
	Group          string
	Runs           int
	AllCorrect     bool
	RateDetected   float64
	DetectTimeMean float64
	MeanDuplicated float64
	MeanWrong      float64
}

// AggregateByGroup folds run summaries into one row per group, sorted by
// group label.
func AggregateByGroup(summaries []*report.RunSummary) []GroupAggregate {
	type acc struct {
		runs       int
		allCorrect bool
		rates      []float64
		means      []float64
		duplicated int
		wrong      int
	}
	byGroup := make(map[string]*acc)
	for _, s := range summaries {
		a, ok := byGroup[s.Identity.Group]
		if !ok {
			a = &acc{allCorrect: true}
			byGroup[s.Identity.Group] = a
		}
		a.runs++
		a.allCorrect = a.allCorrect && s.Statistics.Correct
		a.rates = append(a.rates, s.Statistics.RateDetected)
		a.means = append(a.means, s.Statistics.DetectTimeMean)
		a.duplicated += s.Statistics.NDuplicated
		a.wrong += s.Statistics.NWrong
	}

	out := make([]GroupAggregate, 0, len(byGroup))
	for group, a := range byGroup {
		out = append(out, GroupAggregate{
			Group:          group,
			Runs:           a.runs,
			AllCorrect:     a.allCorrect,
			RateDetected:   report.CorrectMean(a.rates),
			DetectTimeMean: report.CorrectMean(a.means),
			MeanDuplicated: float64(a.duplicated) / float64(a.runs),
			MeanWrong:      float64(a.wrong) / float64(a.runs),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}
