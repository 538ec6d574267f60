// SPDX-License-Identifier: MIT
// Package matrix: LU factorization and square solves.
//
// Purpose:
//   - Factor a square Dense as A = P·L·U through gonum's mat.LU.
//   - Solve A·x = b for any number of right-hand sides with one factorization.
//
// Notes:
//   - A factorization whose reciprocal condition number is not above tol is
//     reported as ErrSingular, so callers never substitute through a
//     numerically zero pivot.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultSingularTol is the reciprocal condition number at or below which a
// square matrix counts as singular.
const DefaultSingularTol = 1e-12

// LU holds the factorization of a square matrix.
type LU struct {
	n  int
	lu mat.LU
}

// Factorize computes the LU factorization of the square matrix m.
//
// Implementation:
//   - Stage 1: validate non-nil and square.
//   - Stage 2: factor with partial pivoting (mat.LU).
//   - Stage 3: reject when 1/cond(m) <= tol or the factorization is exactly singular.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (wrapped with "LU").
// Complexity: O(n³) time, O(n²) memory.
func Factorize(m *Dense, tol float64) (*LU, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	f := &LU{n: m.Rows()}
	f.lu.Factorize(m.Mat())
	cond := f.lu.Cond()
	if math.IsInf(cond, 1) || math.IsNaN(cond) || 1/cond <= tol {
		return nil, matrixErrorf(opLU, ErrSingular)
	}

	return f, nil
}

// Solve returns x with A·x = b using the stored factorization.
// b is not modified.
//
// Errors: ErrNilMatrix or ErrDimensionMismatch for a bad b, ErrNaNInf for a
// non-finite b, ErrSingular when gonum refuses the solve.
// Complexity: O(n²).
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var x mat.VecDense
	if err := f.lu.SolveVecTo(&x, false, mat.NewVecDense(f.n, b)); err != nil {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	out := make([]float64, f.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
