package randomness

// alphabet returns the distinct values of seq in order of first appearance.
func alphabet[T comparable](seq []T) []T {
	seen := make(map[T]struct{}, 4)
	var values []T
	for _, v := range seq {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// countRuns counts the maximal blocks of equal consecutive elements. A run
// starts at the first element and wherever an element differs from its
// predecessor.
func countRuns[T comparable](seq []T) int {
	if len(seq) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[i-1] {
			runs++
		}
	}
	return runs
}

// gapLengths returns the lengths of the maximal runs of elements different
// from item, including any run before the first or after the last occurrence.
func gapLengths[T comparable](seq []T, item T) []int {
	var gaps []int
	current := 0
	for _, v := range seq {
		if v == item {
			if current > 0 {
				gaps = append(gaps, current)
				current = 0
			}
			continue
		}
		current++
	}
	if current > 0 {
		gaps = append(gaps, current)
	}
	return gaps
}
