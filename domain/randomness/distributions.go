// Package randomness implements statistical checks for whether a finite
// sequence of two-valued observations is consistent with a random process.
// Each test is a pure function over its input: no shared state, no side
// effects, safe to call from any number of goroutines.
package randomness

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"randcheck/domain/core"
)

// NormalPValue computes the two-tailed p-value of a z statistic under the
// standard normal distribution: 2 * (1 - Phi(|z|)). Defined for every real z;
// approaches 0 for large |z| and 1 for z near 0.
func NormalPValue(z float64) float64 {
	p := 2 * distuv.UnitNormal.Survival(math.Abs(z))
	if p > 1 {
		p = 1
	}
	return p
}

// ChiSquarePValue computes the upper-tail probability of observing a value at
// least as extreme as chi under a chi-squared distribution with dof degrees
// of freedom. dof must be positive.
func ChiSquarePValue(chi float64, dof int) (float64, error) {
	if dof < 1 {
		return 0, core.NewDegreesOfFreedomError(dof)
	}
	if chi <= 0 {
		return 1, nil
	}
	return distuv.ChiSquared{K: float64(dof)}.Survival(chi), nil
}
