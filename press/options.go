package press

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Default numeric tolerances and search limits.
const (
	// DefaultIntTol is the distance within which a float counts as an integer.
	DefaultIntTol = 1e-6

	// DefaultSignTol separates "zero" from positive/negative coefficients.
	DefaultSignTol = 1e-9

	// DefaultRankTol is the relative singular-value cutoff of the least-squares solve.
	DefaultRankTol = 1e-10

	// DefaultMaxExtra bounds subset size at counters+MaxExtra.
	DefaultMaxExtra = 2

	// DefaultFreeVarCap bounds the enumerated free variable when two are free.
	DefaultFreeVarCap = 100

	// maxFreedom is the largest supported number of free variables per subset.
	maxFreedom = 2
)

// Options configures Solve.
//
//   - IntTol, SignTol, RankTol: numeric tolerances (all must be > 0).
//   - MaxExtra: subsets hold at most counters+MaxExtra buttons (0..2).
//   - FreeVarCap: the enumerated free variable runs over [0, min(maxJoltage, FreeVarCap)].
//   - Workers: number of goroutines for the subset search (0 or 1 ⇒ sequential).
//   - Logger: receives Debug entries about the search; nil ⇒ silent.
type Options struct {
	IntTol     float64
	SignTol    float64
	RankTol    float64
	MaxExtra   int
	FreeVarCap int
	Workers    int
	Logger     logrus.FieldLogger
}

// DefaultOptions returns the reference configuration: sequential search,
// counters+2 subset cap, free variable cap 100.
func DefaultOptions() Options {
	return Options{
		IntTol:     DefaultIntTol,
		SignTol:    DefaultSignTol,
		RankTol:    DefaultRankTol,
		MaxExtra:   DefaultMaxExtra,
		FreeVarCap: DefaultFreeVarCap,
		Workers:    1,
	}
}

// validate checks option consistency.
// Complexity: O(1).
func (o Options) validate() error {
	if o.IntTol <= 0 || o.SignTol <= 0 || o.RankTol <= 0 {
		return fmt.Errorf("tolerances must be positive: %w", ErrBadOptions)
	}
	if o.MaxExtra < 0 || o.FreeVarCap < 0 || o.Workers < 0 {
		return fmt.Errorf("limits must be non-negative: %w", ErrBadOptions)
	}
	if o.MaxExtra > maxFreedom {
		return fmt.Errorf("MaxExtra=%d: %w", o.MaxExtra, ErrUnsupportedFreedom)
	}

	return nil
}
