package randomness

import (
	"randcheck/domain/core"
)

// SerialResult holds the outcome of the serial (transition pair) test.
type SerialResult struct {
	Chi float64 `json:"chi"`
	P   float64 `json:"p"`
}

// SerialTest tabulates every ordered pair of consecutive elements into a k x k
// contingency table, where k is the number of distinct values observed, and
// applies a chi-squared goodness-of-fit test against the uniform-independence
// expectation of (n-1)/k^2 per cell with k^2-1 degrees of freedom.
func SerialTest[T comparable](seq []T) (*SerialResult, error) {
	if len(seq) < 2 {
		return nil, core.NewSequenceLengthError("serial test", 2, len(seq))
	}
	values := alphabet(seq)
	k := len(values)
	if k < 2 {
		return nil, core.NewDegenerateInputError("serial test", "sequence has a single distinct value")
	}

	index := make(map[T]int, k)
	for i, v := range values {
		index[v] = i
	}

	observed := make([]int, k*k)
	for i := 0; i+1 < len(seq); i++ {
		observed[index[seq[i]]*k+index[seq[i+1]]]++
	}

	expected := float64(len(seq)-1) / float64(k*k)
	chi := 0.0
	for _, obs := range observed {
		diff := float64(obs) - expected
		chi += diff * diff / expected
	}

	p, err := ChiSquarePValue(chi, k*k-1)
	if err != nil {
		return nil, err
	}
	return &SerialResult{Chi: chi, P: p}, nil
}
