package press_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jolt/matrix"
	"github.com/katalvlaran/jolt/press"
)

func TestVerify(t *testing.T) {
	inc, err := matrix.NewIncidence(2, [][]int{{0}, {1}, {0, 1}})
	require.NoError(t, err)
	target := []int{3, 5}

	cases := []struct {
		name   string
		subset []int
		x      []int
		want   bool
	}{
		{"singles", []int{0, 1}, []int{3, 5}, true},
		{"shared", []int{1, 2}, []int{2, 3}, true},
		{"off by one", []int{1, 2}, []int{2, 2}, false},
		{"negative press", []int{0, 2}, []int{-2, 5}, false},
		{"length mismatch", []int{0, 1}, []int{3}, false},
		{"unknown button", []int{0, 3}, []int{3, 5}, false},
		{"empty subset misses targets", nil, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, press.Verify(inc, tc.subset, tc.x, target))
		})
	}
}

func TestVerify_ZeroTargetsAcceptEmptyPresses(t *testing.T) {
	inc, err := matrix.NewIncidence(2, [][]int{{0, 1}})
	require.NoError(t, err)

	require.True(t, press.Verify(inc, nil, nil, []int{0, 0}))
	require.False(t, press.Verify(inc, nil, nil, []int{0}), "target length must match counters")
	require.False(t, press.Verify(nil, nil, nil, nil))
}
