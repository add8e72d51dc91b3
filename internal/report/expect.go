package report

// ExpectedDetections is the number of correct detections a perfect run
// would produce, as a function of the failure model.
//
// Sequential model (catastrophe=false): nodes crash one at a time; a node
// that already crashed cannot report later crashes. The i-th crash can be
// detected by the n−i nodes still alive, so summing over i = 1..s gives
// s*n − s*(s+1)/2. The result can be fractional (the /2 term), so callers
// compare against observed integer counts numerically, without rounding.
//
// Catastrophe model (catastrophe=true): all crashes happen at the same
// instant; only the n−s survivors can detect them, each detecting all s
// failures: s*(n−s).
func ExpectedDetections(nScheduled, nNodes int, catastrophe bool) float64 {
	s := float64(nScheduled)
	n := float64(nNodes)
	if catastrophe {
		return s * (n - s)
	}
	return s*n - s*(s+1)/2
}
