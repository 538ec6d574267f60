// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// LeastSquares returns the minimum-norm x minimising ‖m·x − b‖₂, computed from
// a thin SVD of m. Singular values not exceeding rcond·σ_max are treated as
// zero, so rank-deficient and rectangular systems are accepted.
//
// A matrix of numerical rank 0 yields the zero vector.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrFactorization
// (all wrapped with "LeastSquares").
// Complexity: O(r·c·min(r,c)).
func LeastSquares(m *Dense, b []float64, rcond float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(m.Mat(), mat.SVDThin); !ok {
		return nil, matrixErrorf(opLeastSquares, ErrFactorization)
	}

	out := make([]float64, m.Cols())
	rank := svd.Rank(rcond)
	if rank == 0 {
		return out, nil
	}

	rhs := make([]float64, len(b))
	copy(rhs, b)
	var x mat.VecDense
	// The returned residual needs the full U factor; SVDThin leaves it unset.
	_ = svd.SolveVecTo(&x, mat.NewVecDense(len(rhs), rhs), rank)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
