// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"sort"
)

// Incidence is a 0/1 counter×button matrix: entry (c, b) is 1 when pressing
// button b increments counter c. It is immutable once built.
//
// Rows are counters, columns are buttons. Each button additionally keeps the
// sorted, de-duplicated list of counters it is wired to, so exact integer
// checks can walk only the non-zero entries.
type Incidence struct {
	counters int
	buttons  int
	data     []uint8 // counters×buttons, row-major
	wiring   [][]int // wiring[b] = sorted counters touched by button b
}

// NewIncidence builds the incidence matrix for the given number of counters
// and button wiring. A counter listed twice in one button counts once.
//
// Errors: ErrBadShape for a negative counter count; ErrOutOfRange (wrapped
// with the offending button and counter) for an index outside [0, counters).
// Complexity: O(counters·buttons + Σ|button|·log|button|).
func NewIncidence(counters int, buttons [][]int) (*Incidence, error) {
	if counters < 0 {
		return nil, matrixErrorf(opIncidence, ErrBadShape)
	}

	inc := &Incidence{
		counters: counters,
		buttons:  len(buttons),
		data:     make([]uint8, counters*len(buttons)),
		wiring:   make([][]int, len(buttons)),
	}
	var (
		b, c  int
		btn   []int
		wired []int
	)
	for b, btn = range buttons {
		wired = make([]int, 0, len(btn))
		for _, c = range btn {
			if c < 0 || c >= counters {
				return nil, fmt.Errorf("%s: button %d counter %d: %w", opIncidence, b, c, ErrOutOfRange)
			}
			if inc.data[c*inc.buttons+b] == 1 {
				continue
			}
			inc.data[c*inc.buttons+b] = 1
			wired = append(wired, c)
		}
		sort.Ints(wired)
		inc.wiring[b] = wired
	}

	return inc, nil
}

// Counters returns the number of rows.
func (inc *Incidence) Counters() int { return inc.counters }

// Buttons returns the number of columns.
func (inc *Incidence) Buttons() int { return inc.buttons }

// Wiring returns the sorted counters touched by button b (shared, do not modify).
// Returns nil for an out-of-range button.
func (inc *Incidence) Wiring(b int) []int {
	if b < 0 || b >= inc.buttons {
		return nil
	}

	return inc.wiring[b]
}

// Covered reports whether at least one button increments counter c.
func (inc *Incidence) Covered(c int) bool {
	if c < 0 || c >= inc.counters {
		return false
	}
	row := inc.data[c*inc.buttons : (c+1)*inc.buttons]
	for _, v := range row {
		if v == 1 {
			return true
		}
	}

	return false
}

// Column returns button b as a float64 vector of length Counters().
func (inc *Incidence) Column(b int) ([]float64, error) {
	if b < 0 || b >= inc.buttons {
		return nil, matrixErrorf(opColumn, ErrOutOfRange)
	}
	col := make([]float64, inc.counters)
	for _, c := range inc.wiring[b] {
		col[c] = 1
	}

	return col, nil
}

// Sub returns the Counters()×len(cols) Dense made of the listed button columns,
// in the given order.
//
// Errors: ErrBadShape when cols is empty or there are no counters;
// ErrOutOfRange for an unknown button.
// Complexity: O(Counters()·len(cols)).
func (inc *Incidence) Sub(cols []int) (*Dense, error) {
	n := len(cols)
	data := make([]float64, inc.counters*n)
	var j, b int
	for j, b = range cols {
		if b < 0 || b >= inc.buttons {
			return nil, matrixErrorf(opSub, ErrOutOfRange)
		}
		for _, c := range inc.wiring[b] {
			data[c*n+j] = 1
		}
	}
	d, err := NewDenseFrom(inc.counters, n, data)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return d, nil
}

// Dense returns the full Counters()×Buttons() matrix.
func (inc *Incidence) Dense() (*Dense, error) {
	cols := make([]int, inc.buttons)
	for b := range cols {
		cols[b] = b
	}

	return inc.Sub(cols)
}
