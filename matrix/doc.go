// Package matrix offers the dense linear-algebra kernels used by the press solver.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with a zero-copy gonum view (Mat)
//     for kernels that delegate to gonum.
//   - Incidence: an immutable 0/1 counter×button matrix with per-button
//     wiring lists and column sub-matrix extraction (Sub).
//   - Factorize / LU.Solve: gonum LU with partial pivoting for square
//     systems, rejecting ill-conditioned matrices as ErrSingular.
//   - LeastSquares: SVD-based minimum-norm least squares that tolerates
//     rank deficiency and rectangular shapes.
//
// All errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
