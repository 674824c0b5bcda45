package randomness

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"randcheck/domain/core"
)

// RunsResult holds the outcome of the Wald-Wolfowitz runs test.
type RunsResult struct {
	NRuns int     `json:"n_runs"`
	Z     float64 `json:"z"`
	P     float64 `json:"p"`
}

// WaldWolfowitz counts the runs in a two-valued sequence and compares the
// count against its expectation under randomness. P is the lower-tail normal
// probability of the z statistic: a small value means significantly fewer
// runs than a random sequence would produce (clustering), a value near 1
// means over-alternation.
func WaldWolfowitz[T comparable](seq []T) (*RunsResult, error) {
	if len(seq) == 0 {
		return nil, core.NewSequenceLengthError("runs test", 1, 0)
	}

	n1 := 0
	for _, v := range seq {
		if v == seq[0] {
			n1++
		}
	}
	n2 := len(seq) - n1
	if n2 == 0 {
		return nil, core.NewDegenerateInputError("runs test", "sequence has a single distinct value")
	}

	n := float64(len(seq))
	pairs := 2 * float64(n1) * float64(n2)
	mean := pairs/n + 1
	variance := pairs * (pairs - n) / (n * n * (n - 1))
	if variance <= 0 {
		return nil, core.NewDegenerateInputError("runs test", "zero run-count variance")
	}

	runs := countRuns(seq)
	z := (float64(runs) - mean) / math.Sqrt(variance)

	return &RunsResult{
		NRuns: runs,
		Z:     z,
		P:     distuv.UnitNormal.CDF(z),
	}, nil
}
