package press

import (
	"math"

	"github.com/katalvlaran/jolt/matrix"
)

// resolveFree handles subsets larger than the counter count by parametrising
// the d = len(sub) − counters free variables. Only d ∈ {1, 2} is supported.
func (p *problem) resolveFree(sub []int, st *Stats) ([]int, bool) {
	switch len(sub) - p.inc.Counters() {
	case 1:
		return p.bestOneFree(sub, p.joltages, st)
	case 2:
		return p.twoFree(sub, st)
	default:
		return nil, false
	}
}

// bestOneFree tries every position of sub as the free variable and keeps the
// cheapest verified vector (first position wins ties).
func (p *problem) bestOneFree(sub, target []int, st *Stats) ([]int, bool) {
	var (
		best      []int
		bestTotal int
	)
	for free := range sub {
		x, ok := p.oneFree(sub, target, free, st)
		if !ok {
			continue
		}
		if t := sum(x); best == nil || t < bestTotal {
			best, bestTotal = x, t
		}
	}

	return best, best != nil
}

// oneFree solves A_sub·x = target where sub has exactly one more column than
// there are counters and position free carries the free variable t.
//
// The remaining square system gives x_basic(t) = x0 − coef·t. Non-negativity
// bounds t to [t_min, t_max] (starting from [0, maxJoltage]); the objective
// sum(x0) + (1 − Σcoef)·t is linear, so the optimum sits at an end of the
// integer range. The chosen vector is rounded and checked exactly.
//
// Complexity: O(n³) for the LU factorization, n = counters.
func (p *problem) oneFree(sub, target []int, free int, st *Stats) ([]int, bool) {
	n := p.inc.Counters()
	basic := make([]int, 0, n)
	for i, b := range sub {
		if i != free {
			basic = append(basic, b)
		}
	}
	a, err := p.inc.Sub(basic)
	if err != nil {
		return nil, false
	}
	f, err := matrix.Factorize(a, matrix.DefaultSingularTol)
	if err != nil {
		return nil, false
	}

	rhs := make([]float64, n)
	for i, v := range target {
		rhs[i] = float64(v)
	}
	x0, err := f.Solve(rhs)
	if err != nil {
		return nil, false
	}
	col, err := p.inc.Column(sub[free])
	if err != nil {
		return nil, false
	}
	coef, err := f.Solve(col)
	if err != nil {
		return nil, false
	}

	var (
		eps  = p.opts.SignTol
		tMin = 0.0
		tMax = float64(p.maxJolt)
	)
	for i, c := range coef {
		switch {
		case c > eps:
			if bound := x0[i] / c; bound < tMax {
				tMax = bound
			}
		case c < -eps:
			if bound := x0[i] / c; bound > tMin {
				tMin = bound
			}
		case x0[i] < -eps:
			// t has no effect on this variable and it is already negative
			return nil, false
		}
	}

	lo, hi := math.Ceil(tMin-eps), math.Floor(tMax+eps)
	if lo > hi {
		return nil, false
	}
	slope := 1.0
	for _, c := range coef {
		slope -= c
	}
	t := lo
	if slope < -eps {
		t = hi
	}
	if t < 0 {
		return nil, false
	}

	x := make([]int, len(sub))
	x[free] = int(t)
	var (
		k  int
		ok bool
	)
	for i := range sub {
		if i == free {
			continue
		}
		if x[i], ok = roundNonNegative(x0[k]-coef[k]*t, p.opts.IntTol); !ok {
			return nil, false
		}
		k++
	}
	if !p.verified(st, sub, x, target) {
		return nil, false
	}

	return x, true
}

// twoFree handles two free variables: each position e of sub in turn is
// enumerated over [0, min(maxJoltage, FreeVarCap)], its contribution is
// subtracted from the targets, and the remaining one-free subproblem is
// solved by bestOneFree. Combined vectors are checked against the original
// targets.
//
// Complexity: O(s·V·s·n³), s = len(sub), V = enumerated values.
func (p *problem) twoFree(sub []int, st *Stats) ([]int, bool) {
	var (
		limit     = min(p.maxJolt, p.opts.FreeVarCap)
		rest      = make([]int, 0, len(sub)-1)
		target    = make([]int, len(p.joltages))
		best      []int
		bestTotal int
	)
	for e := range sub {
		rest = rest[:0]
		for i, b := range sub {
			if i != e {
				rest = append(rest, b)
			}
		}
		wiring := p.inc.Wiring(sub[e])
		copy(target, p.joltages)

	values:
		for v := 0; v <= limit; v++ {
			if v > 0 {
				for _, c := range wiring {
					if target[c]--; target[c] < 0 {
						// larger v only overshoots further
						break values
					}
				}
			}
			y, ok := p.bestOneFree(rest, target, st)
			if !ok {
				continue
			}

			x := make([]int, len(sub))
			x[e] = v
			k := 0
			for i := range sub {
				if i == e {
					continue
				}
				x[i] = y[k]
				k++
			}
			if !p.verified(st, sub, x, p.joltages) {
				continue
			}
			if t := sum(x); best == nil || t < bestTotal {
				best, bestTotal = x, t
			}
		}
	}

	return best, best != nil
}
