package subset_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jolt/subset"
)

func TestCombinations_Lexicographic(t *testing.T) {
	got := slices.Collect(subset.Combinations(4, 2))
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, got)
}

func TestCombinations_EdgeSizes(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}}, slices.Collect(subset.Combinations(3, 3)))
	assert.Equal(t, [][]int{{0}, {1}, {2}}, slices.Collect(subset.Combinations(3, 1)))
	assert.Empty(t, slices.Collect(subset.Combinations(2, 3)), "k > n yields nothing")
	assert.Empty(t, slices.Collect(subset.Combinations(3, -1)))
	assert.Empty(t, slices.Collect(subset.Combinations(-1, 0)))
}

func TestCombinations_NoDuplicatesMatchesCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for k := 1; k <= n; k++ {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				seen := make(map[string]struct{})
				var prev []int
				for c := range subset.Combinations(n, k) {
					require.Len(t, c, k)
					require.True(t, slices.IsSorted(c), "members ascend: %v", c)
					if prev != nil {
						require.Equal(t, -1, slices.Compare(prev, c), "strictly increasing order")
					}
					key := fmt.Sprint(c)
					_, dup := seen[key]
					require.False(t, dup, "duplicate %v", c)
					seen[key] = struct{}{}
					prev = c
				}
				require.Len(t, seen, subset.Count(n, k))
			})
		}
	}
}

func TestCombinations_EarlyStop(t *testing.T) {
	var got [][]int
	for c := range subset.Combinations(5, 3) {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, [][]int{{0, 1, 2}, {0, 1, 3}}, got)
}

func TestCombinations_YieldedSlicesAreIndependent(t *testing.T) {
	var got [][]int
	for c := range subset.Combinations(3, 2) {
		got = append(got, c)
	}
	got[0][0] = 99
	require.Equal(t, []int{0, 2}, got[1])
}

func TestCount(t *testing.T) {
	assert.Equal(t, 10, subset.Count(5, 2))
	assert.Equal(t, 1, subset.Count(5, 0))
	assert.Equal(t, 0, subset.Count(2, 5))
}
