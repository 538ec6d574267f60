// Package press finds the minimum number of button presses that drives a set
// of integer counters ("joltages") to exact targets.
//
// Every button adds 1 to each counter it is wired to, so a press vector x must
// satisfy A·x = b over the non-negative integers, where A is the 0/1
// counter×button incidence matrix and b the target vector. Solve minimises
// sum(x) without a general ILP solver:
//
//   - Subsets of 1..counters+MaxExtra buttons are enumerated (package subset).
//   - Subsets no larger than the counter count are solved by SVD least
//     squares; near-integer, non-negative solutions are rounded.
//   - Subsets with one or two more buttons than counters parametrise the
//     free variables: one free variable is optimised analytically over its
//     feasible integer range, a second is enumerated up to FreeVarCap.
//   - Every rounded vector is re-checked with exact integer arithmetic
//     (Verify) before it may compete for the minimum.
//
// The subset-size cap and the FreeVarCap bound are heuristics: the search is
// exact within its bounds but not a proof of global optimality.
//
// Complexity: Σ_s C(buttons, s) subsets, each O(counters³) (s ≤ counters or
// one free variable) or O(s²·V·counters³) (two free variables, V enumerated
// values).
package press
