package press

import (
	"math"

	"github.com/katalvlaran/jolt/matrix"
)

// Verify reports whether pressing button subset[i] exactly x[i] times drives
// every counter to joltages[c], using integer arithmetic only.
//
// It is the final gate for every candidate: lengths must agree, every x[i]
// must be non-negative, and each counter sum must match exactly.
// Complexity: O(Σ|wiring(subset[i])| + counters).
func Verify(inc *matrix.Incidence, subset, x, joltages []int) bool {
	if inc == nil || len(subset) != len(x) || len(joltages) != inc.Counters() {
		return false
	}
	sums := make([]int, len(joltages))
	var i, b int
	for i, b = range subset {
		if x[i] < 0 || b < 0 || b >= inc.Buttons() {
			return false
		}
		for _, c := range inc.Wiring(b) {
			sums[c] += x[i]
		}
	}
	for c, want := range joltages {
		if sums[c] != want {
			return false
		}
	}

	return true
}

// roundNonNegative returns the nearest integer to v when v is within tol of a
// non-negative integer.
func roundNonNegative(v, tol float64) (int, bool) {
	if math.IsNaN(v) || v < -tol {
		return 0, false
	}
	r := math.Round(v)
	if r < 0 || math.Abs(v-r) > tol {
		return 0, false
	}

	return int(r), true
}

func sum(x []int) int {
	var s int
	for _, v := range x {
		s += v
	}

	return s
}
