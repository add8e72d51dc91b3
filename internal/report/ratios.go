package report

import "math"

// Ratio normalizes an optional timing setting by the failure interval,
// rounded to two decimals. An absent setting yields an explicit 0 so that
// downstream grouping never has to special-case nulls.
func Ratio(x *float64, failureDelta float64) float64 {
	if x == nil {
		return 0
	}
	return math.Round(*x/failureDelta*100) / 100
}

// deriveRatios computes all three per-run ratios from the settings.
func deriveRatios(s RunSettings) DerivedRatios {
	return DerivedRatios{
		MaxWaitOverFailure:        Ratio(s.MulticastMaxWait, s.FailureDelta),
		FirstMulticastOverFailure: Ratio(s.ExpectedFirstMulticast, s.FailureDelta),
		MissDeltaOverFailure:      Ratio(s.MissDelta, s.FailureDelta),
	}
}
