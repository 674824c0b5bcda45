package randomness

import (
	"math"

	"github.com/montanaflynn/stats"

	"randcheck/domain/core"
)

// AutocorrelationResult holds the outcome of the lag-1 autocorrelation test.
type AutocorrelationResult struct {
	AutoCorrelation float64 `json:"auto_correlation"`
	P               float64 `json:"p"`
}

// AutoCorrelation measures how strongly each element of a two-valued sequence
// predicts the next one. The two values are coded 0 and 1 in order of first
// appearance (the coefficient is invariant under swapping the codes). The
// coefficient is the Pearson correlation of the sequence against itself
// shifted by one position; significance uses the normal approximation
// z = r * sqrt(n-1).
func AutoCorrelation[T comparable](seq []T) (*AutocorrelationResult, error) {
	if len(seq) < 2 {
		return nil, core.NewSequenceLengthError("autocorrelation test", 2, len(seq))
	}
	values := alphabet(seq)
	if len(values) > 2 {
		return nil, core.NewAlphabetError("autocorrelation test", len(values), 2)
	}
	if len(values) < 2 {
		return nil, core.NewDegenerateInputError("autocorrelation test", "sequence has zero variance")
	}

	coded := make([]float64, len(seq))
	for i, v := range seq {
		if v == values[1] {
			coded[i] = 1
		}
	}

	lead, lag := coded[1:], coded[:len(coded)-1]
	for _, window := range [][]float64{lead, lag} {
		sd, err := stats.StandardDeviationPopulation(window)
		if err != nil {
			return nil, err
		}
		if sd == 0 {
			return nil, core.NewDegenerateInputError("autocorrelation test", "shifted window has zero variance")
		}
	}

	r, err := stats.Correlation(lead, lag)
	if err != nil {
		return nil, err
	}

	z := r * math.Sqrt(float64(len(seq)-1))
	return &AutocorrelationResult{
		AutoCorrelation: r,
		P:               NormalPValue(z),
	}, nil
}
