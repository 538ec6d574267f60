// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a row-major matrix of float64 values stored in a flat slice for
// cache friendliness; Mat exposes the same storage to gonum kernels.
package matrix

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense     = "NewDense"
	opColumn       = "Column"
	opLU           = "LU"
	opSolve        = "Solve"
	opLeastSquares = "LeastSquares"
	opIncidence    = "NewIncidence"
	opSub          = "Sub"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDenseFrom creates an r×c Dense matrix from a row-major slice.
// The slice is copied; later changes to data do not affect the matrix.
// Returns ErrBadShape if rows/cols are non-positive or len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Dense{r: rows, c: cols, data: cp}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Mat returns a gonum view sharing the receiver's backing storage.
// Writes through the view are visible in m and vice versa.
func (m *Dense) Mat() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[1, 1]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
