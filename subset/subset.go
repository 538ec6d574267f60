// Package subset enumerates k-element index combinations.
//
// Combinations are produced lazily in ascending lexicographic order, e.g. for
// n=4, k=2: [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]. Generation is iterative and
// holds a single k-sized buffer, delegating the successor step to gonum's
// combin.CombinationGenerator.
package subset

import (
	"iter"

	"gonum.org/v1/gonum/stat/combin"
)

// valid reports whether (n, k) describes a non-empty enumeration.
func valid(n, k int) bool {
	return n >= 0 && k >= 0 && k <= n
}

// Count returns the number of k-combinations of n elements, C(n, k).
// Out-of-range arguments (k > n, negative values) yield 0.
func Count(n, k int) int {
	if !valid(n, k) {
		return 0
	}

	return combin.Binomial(n, k)
}

// Combinations yields every k-combination of {0, …, n-1} exactly once, in
// ascending lexicographic order. Each yielded slice is freshly allocated, so
// callers may retain it. Nothing is yielded when k > n or either argument is
// negative.
//
// Complexity: O(k) per combination, O(k) live memory.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if !valid(n, k) {
			return
		}
		gen := combin.NewCombinationGenerator(n, k)
		for gen.Next() {
			if !yield(gen.Combination(nil)) {
				return
			}
		}
	}
}
