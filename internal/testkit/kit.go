// Package testkit provides deterministic sequence generators for the
// randomness test suite.
package testkit

import (
	"math/rand"
)

// Bernoulli returns a pseudo-random 0/1 sequence of length n in which each
// element is 1 with probability p. The same seed always yields the same
// sequence.
func Bernoulli(n int, p float64, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	seq := make([]int, n)
	for i := range seq {
		if rng.Float64() < p {
			seq[i] = 1
		}
	}
	return seq
}

// Alternating returns 0,1,0,1,... of length n.
func Alternating(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i % 2
	}
	return seq
}

// Constant returns a sequence of n copies of v.
func Constant[T comparable](n int, v T) []T {
	seq := make([]T, n)
	for i := range seq {
		seq[i] = v
	}
	return seq
}

// Clustered returns a sequence of n zeros followed by m ones, the worst case
// for run-based tests.
func Clustered(n, m int) []int {
	seq := make([]int, 0, n+m)
	for i := 0; i < n; i++ {
		seq = append(seq, 0)
	}
	for i := 0; i < m; i++ {
		seq = append(seq, 1)
	}
	return seq
}
