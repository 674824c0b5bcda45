package randomness

import (
	"randcheck/domain/core"
)

// GapResult holds the outcome of the gap test for a target item.
type GapResult[T comparable] struct {
	Chi  float64 `json:"chi"`
	P    float64 `json:"p"`
	Item T       `json:"item"`
}

// minGapBuckets bounds the number of chi-squared categories from below so the
// expected geometric tail is always represented, even when every observed gap
// is short.
const minGapBuckets = 10

// GapTest measures the lengths of the stretches between occurrences of item
// and compares their distribution against the geometric decay implied by the
// item's empirical frequency. item is optional and defaults to the first
// element of the sequence, resolved at call time. A gap is a maximal run of
// non-item elements, including any stretch before the first or after the last
// occurrence.
//
// Gap lengths are bucketed one length per category, 0 through max(10,
// maxGap+1)-1, with no merging, so the largest observed gap always lands in a
// category.
func GapTest[T comparable](seq []T, item ...T) (*GapResult[T], error) {
	if len(seq) == 0 {
		return nil, core.NewSequenceLengthError("gap test", 1, 0)
	}
	target := seq[0]
	if len(item) > 0 {
		target = item[0]
	}

	occurrences := 0
	for _, v := range seq {
		if v == target {
			occurrences++
		}
	}
	switch {
	case occurrences == 0:
		return nil, core.NewDegenerateInputError("gap test", "item does not occur in the sequence")
	case occurrences == 1:
		return nil, core.NewDegenerateInputError("gap test", "item occurs only once")
	case occurrences == len(seq):
		return nil, core.NewDegenerateInputError("gap test", "no gaps between occurrences")
	}

	gaps := gapLengths(seq, target)
	maxGap := 0
	for _, g := range gaps {
		if g > maxGap {
			maxGap = g
		}
	}

	buckets := maxGap + 1
	if buckets < minGapBuckets {
		buckets = minGapBuckets
	}
	observed := make([]int, buckets)
	for _, g := range gaps {
		observed[g]++
	}

	pItem := float64(occurrences) / float64(len(seq))
	chi := 0.0
	expected := float64(len(seq))
	for g := 0; g < buckets; g++ {
		expected *= pItem
		diff := float64(observed[g]) - expected
		chi += diff * diff / expected
	}

	p, err := ChiSquarePValue(chi, buckets-1)
	if err != nil {
		return nil, err
	}
	return &GapResult[T]{Chi: chi, P: p, Item: target}, nil
}
