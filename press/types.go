package press

import "errors"

// Infeasible is the Total reported when no verified press vector was found
// within the bounded search.
const Infeasible = -1

var (
	// ErrNegativeJoltage is returned when a target counter value is below zero.
	ErrNegativeJoltage = errors.New("press: negative joltage")

	// ErrCounterOutOfRange is returned when a button references a counter
	// index outside [0, len(Joltages)).
	ErrCounterOutOfRange = errors.New("press: button counter out of range")

	// ErrBadOptions is returned for non-positive tolerances or negative limits.
	ErrBadOptions = errors.New("press: invalid options")

	// ErrUnsupportedFreedom is returned when Options.MaxExtra asks for more
	// than two free variables per subset.
	ErrUnsupportedFreedom = errors.New("press: more than two degrees of freedom")
)

// Machine is one puzzle instance: target counter values and button wiring.
// Buttons[b] lists the 0-based counters incremented by one press of button b.
type Machine struct {
	Joltages []int
	Buttons  [][]int
}

// Result is the outcome of Solve.
type Result struct {
	// Total is the minimum number of presses, or Infeasible.
	Total int

	// Presses holds the press count for every button of the machine
	// (len == len(Machine.Buttons)); nil when Total == Infeasible.
	Presses []int

	// Stats describes the search that produced Total.
	Stats Stats
}

// Feasible reports whether a verified press vector was found.
func (r Result) Feasible() bool { return r.Total != Infeasible }

// Stats counts search work. Counts are identical for sequential and parallel runs.
type Stats struct {
	Subsets  int // button subsets evaluated
	Accepted int // subsets that produced a verified candidate
	Rejected int // rounded vectors refused by the exact integer check
}

func (s *Stats) add(o Stats) {
	s.Subsets += o.Subsets
	s.Accepted += o.Accepted
	s.Rejected += o.Rejected
}
