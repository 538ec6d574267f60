package press

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jolt/matrix"
	"github.com/katalvlaran/jolt/subset"
)

// silent swallows log entries when Options.Logger is nil.
var silent = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// candidate is a verified press vector over one subset.
type candidate struct {
	sub   []int // machine button indices, ascending
	x     []int // presses aligned with sub
	total int
}

// sizeBest is the fold of all subsets of one size.
type sizeBest struct {
	best  *candidate
	stats Stats
}

// Solve returns the minimum total number of presses that drives every counter
// of m to its joltage exactly.
//
// Subsets of 1..min(counters+MaxExtra, buttons) buttons are enumerated in
// size-then-lexicographic order. Subsets no larger than the counter count go
// to the least-squares solver, larger ones to the free-variable resolver;
// every candidate passes Verify before it competes. The first subset in
// enumeration order wins ties, so Workers > 1 gives the same Result as a
// sequential run.
//
// Degenerate machines (no buttons, no counters, all-zero targets) need 0
// presses. A non-zero counter that no button touches is Infeasible at once.
//
// Errors: ErrBadOptions, ErrUnsupportedFreedom, ErrNegativeJoltage,
// ErrCounterOutOfRange, or ctx.Err() if ctx is cancelled mid-search.
func Solve(ctx context.Context, m Machine, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	for c, j := range m.Joltages {
		if j < 0 {
			return Result{}, fmt.Errorf("counter %d = %d: %w", c, j, ErrNegativeJoltage)
		}
	}

	var (
		log = opts.Logger
		nb  = len(m.Buttons)
		nc  = len(m.Joltages)
	)
	if log == nil {
		log = silent
	}
	if nb == 0 || nc == 0 {
		return Result{Total: 0, Presses: make([]int, nb)}, nil
	}

	inc, err := matrix.NewIncidence(nc, m.Buttons)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCounterOutOfRange, err)
	}
	if allZero(m.Joltages) {
		return Result{Total: 0, Presses: make([]int, nb)}, nil
	}
	for c, j := range m.Joltages {
		if j > 0 && !inc.Covered(c) {
			log.WithField("counter", c).Debug("press: counter has no button")
			return Result{Total: Infeasible}, nil
		}
	}

	p := newProblem(inc, m.Joltages, opts)
	maxSize := min(nc+opts.MaxExtra, nb)
	fields := logrus.Fields{
		"counters":   nc,
		"buttons":    nb,
		"max_subset": maxSize,
		"workers":    opts.Workers,
		"subsets":    searchSpace(nb, maxSize),
	}
	if full, err := inc.Dense(); err == nil {
		fields["incidence"] = full.String()
	}
	log.WithFields(fields).Debug("press: search start")

	bests := make([]sizeBest, maxSize+1)
	if opts.Workers <= 1 {
		for s := 1; s <= maxSize; s++ {
			if bests[s], err = p.searchSize(ctx, s); err != nil {
				return Result{}, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for s := 1; s <= maxSize; s++ {
			g.Go(func() error {
				var err error
				bests[s], err = p.searchSize(gctx, s)
				return err
			})
		}
		if err = g.Wait(); err != nil {
			return Result{}, err
		}
	}

	res := Result{Total: Infeasible}
	var best *candidate
	for s := 1; s <= maxSize; s++ {
		res.Stats.add(bests[s].stats)
		if c := bests[s].best; c != nil && (best == nil || c.total < best.total) {
			best = c
		}
	}
	if best == nil {
		log.WithField("subsets", res.Stats.Subsets).Debug("press: no verified candidate")
		return res, nil
	}

	res.Total = best.total
	res.Presses = make([]int, nb)
	for i, b := range best.sub {
		res.Presses[b] = best.x[i]
	}
	log.WithFields(logrus.Fields{
		"total":    res.Total,
		"support":  best.sub,
		"subsets":  res.Stats.Subsets,
		"accepted": res.Stats.Accepted,
		"rejected": res.Stats.Rejected,
	}).Debug("press: search done")

	return res, nil
}

// searchSize folds every subset of size s into its cheapest candidate.
func (p *problem) searchSize(ctx context.Context, s int) (sizeBest, error) {
	var out sizeBest
	for sub := range subset.Combinations(p.inc.Buttons(), s) {
		if err := ctx.Err(); err != nil {
			return sizeBest{}, err
		}
		c, ok := p.evaluate(sub, &out.stats)
		if ok && (out.best == nil || c.total < out.best.total) {
			out.best = &c
		}
	}

	return out, nil
}

// evaluate dispatches one subset to the matching solver.
func (p *problem) evaluate(sub []int, st *Stats) (candidate, bool) {
	st.Subsets++
	var (
		x  []int
		ok bool
	)
	if len(sub) <= p.inc.Counters() {
		x, ok = p.solveDetermined(sub, st)
	} else {
		x, ok = p.resolveFree(sub, st)
	}
	if !ok {
		return candidate{}, false
	}
	st.Accepted++

	return candidate{sub: sub, x: x, total: sum(x)}, true
}

// MinPresses solves m with DefaultOptions and returns the minimum total, or
// Infeasible when no vector was found or the machine is malformed.
func MinPresses(m Machine) int {
	res, err := Solve(context.Background(), m, DefaultOptions())
	if err != nil {
		return Infeasible
	}

	return res.Total
}

// SumMinPresses adds the per-machine minimum totals. Infeasible machines
// contribute Infeasible (−1) to the sum; malformed machines abort with an
// error naming the machine index.
func SumMinPresses(ctx context.Context, machines []Machine, opts Options) (int, error) {
	var total int
	for i, m := range machines {
		res, err := Solve(ctx, m, opts)
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		total += res.Total
	}

	return total, nil
}

// searchSpace is the number of subsets of 1..maxSize buttons out of nb.
func searchSpace(nb, maxSize int) int {
	var n int
	for s := 1; s <= maxSize; s++ {
		n += subset.Count(nb, s)
	}

	return n
}

func allZero(xs []int) bool {
	for _, v := range xs {
		if v != 0 {
			return false
		}
	}

	return true
}
