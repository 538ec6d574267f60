package factory

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jolt/lights"
	"github.com/katalvlaran/jolt/press"
)

// Report holds both answers for a machine list.
type Report struct {
	Lights     int // sum of minimum light presses
	Joltage    int // sum of minimum joltage presses
	PerLights  []int
	PerJoltage []int
}

// Config controls SolveAll.
type Config struct {
	// Workers bounds the number of machines solved at once; < 1 means 1.
	Workers int
	// Press is overlaid on press.DefaultOptions() field by field: every zero
	// field keeps its default (so MaxExtra 0 means DefaultMaxExtra). Its own
	// Workers field parallelises a single machine on top of the fan-out above.
	Press press.Options
	// Logger receives one Debug entry per machine; nil is silent.
	Logger logrus.FieldLogger
}

// SumLights adds the light-variant answers of every machine.
// An unreachable machine contributes lights.Unreachable (−1).
func SumLights(machines []Machine) (int, error) {
	var total int
	for i, m := range machines {
		n, err := lights.MinPresses(m.LightMachine())
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i, err)
		}
		total += n
	}

	return total, nil
}

// SumJoltage adds the joltage-variant answers of every machine in order.
func SumJoltage(ctx context.Context, machines []Machine, opts press.Options) (int, error) {
	pm := make([]press.Machine, len(machines))
	for i, m := range machines {
		pm[i] = m.Joltage()
	}

	return press.SumMinPresses(ctx, pm, opts)
}

// SolveAll solves both variants of every machine, at most cfg.Workers
// machines at a time. The first error cancels the remaining machines.
func SolveAll(ctx context.Context, machines []Machine, cfg Config) (Report, error) {
	rep := Report{
		PerLights:  make([]int, len(machines)),
		PerJoltage: make([]int, len(machines)),
	}
	workers := max(cfg.Workers, 1)
	opts := pressOptions(cfg.Press)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range machines {
		g.Go(func() error {
			n, err := lights.MinPresses(m.LightMachine())
			if err != nil {
				return fmt.Errorf("machine %d lights: %w", i, err)
			}
			res, err := press.Solve(gctx, m.Joltage(), opts)
			if err != nil {
				return fmt.Errorf("machine %d joltage: %w", i, err)
			}
			rep.PerLights[i] = n
			rep.PerJoltage[i] = res.Total
			if cfg.Logger != nil {
				cfg.Logger.WithFields(logrus.Fields{
					"machine": i,
					"lights":  n,
					"joltage": res.Total,
					"subsets": res.Stats.Subsets,
				}).Debug("factory: machine solved")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	for i := range machines {
		rep.Lights += rep.PerLights[i]
		rep.Joltage += rep.PerJoltage[i]
	}

	return rep, nil
}

// pressOptions overlays the non-zero fields of o on press.DefaultOptions.
func pressOptions(o press.Options) press.Options {
	opts := press.DefaultOptions()
	if o.IntTol != 0 {
		opts.IntTol = o.IntTol
	}
	if o.SignTol != 0 {
		opts.SignTol = o.SignTol
	}
	if o.RankTol != 0 {
		opts.RankTol = o.RankTol
	}
	if o.MaxExtra != 0 {
		opts.MaxExtra = o.MaxExtra
	}
	if o.FreeVarCap != 0 {
		opts.FreeVarCap = o.FreeVarCap
	}
	if o.Workers != 0 {
		opts.Workers = o.Workers
	}
	if o.Logger != nil {
		opts.Logger = o.Logger
	}

	return opts
}
