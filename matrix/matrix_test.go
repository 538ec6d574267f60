// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jolt/matrix"
)

const epsSolve = 1e-9

// mulVec computes m·x from a row-major slice, for checking solutions.
func mulVec(rows, cols int, data, x []float64) []float64 {
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			y[i] += data[i*cols+j] * x[j]
		}
	}

	return y
}

func TestNewDenseFrom_Guards(t *testing.T) {
	for _, tc := range []struct{ rows, cols, n int }{{0, 1, 0}, {1, 0, 0}, {-1, 3, 3}, {2, 2, 3}} {
		_, err := matrix.NewDenseFrom(tc.rows, tc.cols, make([]float64, tc.n))
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestDense_CopiesAndRenders(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, data)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	data[0] = 42
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String(), "input slice must not alias the matrix")
}

func TestDense_MatSharesStorage(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, make([]float64, 4))
	require.NoError(t, err)
	m.Mat().Set(1, 0, 7)

	require.Equal(t, "[0, 0]\n[7, 0]\n", m.String())
}

func TestLU_NeedsPivoting(t *testing.T) {
	// Zero in the (0,0) slot: elimination without row swaps would stop here.
	m, err := matrix.NewDenseFrom(3, 3, []float64{
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	})
	require.NoError(t, err)

	f, err := matrix.Factorize(m, matrix.DefaultSingularTol)
	require.NoError(t, err)
	x, err := f.Solve([]float64{5, 4, 3})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 3}, x, epsSolve)
}

func TestLU_ReusedForSeveralRightHandSides(t *testing.T) {
	data := []float64{
		1, 1, 0,
		0, 1, 1,
		1, 0, 1,
	}
	m, err := matrix.NewDenseFrom(3, 3, data)
	require.NoError(t, err)
	f, err := matrix.Factorize(m, matrix.DefaultSingularTol)
	require.NoError(t, err)

	for _, b := range [][]float64{{3, 5, 4}, {1, 0, 0}, {0, 0, 0}} {
		in := append([]float64(nil), b...)
		x, err := f.Solve(in)
		require.NoError(t, err)
		require.Equal(t, b, in, "b is not modified")
		require.InDeltaSlice(t, b, mulVec(3, 3, data, x), epsSolve)
	}
}

func TestLU_Singular(t *testing.T) {
	cases := map[string][]float64{
		"equal rows":    {1, 1, 1, 1},
		"zero":          {0, 0, 0, 0},
		"near singular": {1, 1, 1, 1 + 1e-14},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDenseFrom(2, 2, data)
			require.NoError(t, err)
			_, err = matrix.Factorize(m, matrix.DefaultSingularTol)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestLU_Guards(t *testing.T) {
	rect, err := matrix.NewDenseFrom(2, 3, make([]float64, 6))
	require.NoError(t, err)
	_, err = matrix.Factorize(rect, matrix.DefaultSingularTol)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Factorize(nil, matrix.DefaultSingularTol)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	sq, err := matrix.NewDenseFrom(1, 1, []float64{2})
	require.NoError(t, err)
	f, err := matrix.Factorize(sq, matrix.DefaultSingularTol)
	require.NoError(t, err)
	_, err = f.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLeastSquares_Overdetermined(t *testing.T) {
	// Consistent tall system: three counters, two buttons {0,1} and {1,2}.
	data := []float64{
		1, 0,
		1, 1,
		0, 1,
	}
	m, err := matrix.NewDenseFrom(3, 2, data)
	require.NoError(t, err)

	x, err := matrix.LeastSquares(m, []float64{2, 5, 3}, 1e-10)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 3}, x, epsSolve)
	require.InDeltaSlice(t, []float64{2, 5, 3}, mulVec(3, 2, data, x), epsSolve)
}

func TestLeastSquares_RankDeficient(t *testing.T) {
	// Two identical columns: minimum-norm solution splits the target evenly.
	m, err := matrix.NewDenseFrom(1, 2, []float64{1, 1})
	require.NoError(t, err)

	x, err := matrix.LeastSquares(m, []float64{4}, 1e-10)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 2}, x, epsSolve)
}

func TestLeastSquares_ZeroMatrix(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, make([]float64, 4))
	require.NoError(t, err)

	x, err := matrix.LeastSquares(m, []float64{1, 1}, 1e-10)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, x)
}

func TestLeastSquares_Guards(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 1, make([]float64, 2))
	require.NoError(t, err)

	_, err = matrix.LeastSquares(m, []float64{1}, 1e-10)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.LeastSquares(nil, []float64{1}, 1e-10)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
