package press

import (
	"github.com/katalvlaran/jolt/matrix"
)

// problem is the per-machine search state shared read-only by all workers.
type problem struct {
	inc      *matrix.Incidence
	joltages []int
	b        []float64 // joltages as float64
	maxJolt  int
	opts     Options
}

func newProblem(inc *matrix.Incidence, joltages []int, opts Options) *problem {
	p := &problem{
		inc:      inc,
		joltages: joltages,
		b:        make([]float64, len(joltages)),
		opts:     opts,
	}
	for i, j := range joltages {
		p.b[i] = float64(j)
		if j > p.maxJolt {
			p.maxJolt = j
		}
	}

	return p
}

// verified runs the exact check and records a rejection in st (when non-nil).
func (p *problem) verified(st *Stats, sub, x, target []int) bool {
	if Verify(p.inc, sub, x, target) {
		return true
	}
	if st != nil {
		st.Rejected++
	}

	return false
}

// solveDetermined handles len(sub) <= counters: a minimum-norm least-squares
// solve of A_sub·x ≈ b, rounded and re-verified.
//
// Returns the press vector aligned with sub.
// Complexity: O(counters·s²) for the SVD, s = len(sub).
func (p *problem) solveDetermined(sub []int, st *Stats) ([]int, bool) {
	a, err := p.inc.Sub(sub)
	if err != nil {
		return nil, false
	}
	xf, err := matrix.LeastSquares(a, p.b, p.opts.RankTol)
	if err != nil {
		return nil, false
	}

	x := make([]int, len(xf))
	var ok bool
	for i, v := range xf {
		if x[i], ok = roundNonNegative(v, p.opts.IntTol); !ok {
			return nil, false
		}
	}
	if !p.verified(st, sub, x, p.joltages) {
		return nil, false
	}

	return x, true
}
