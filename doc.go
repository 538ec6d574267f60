// Package jolt solves the factory machine puzzles: find the fewest button
// presses that drive a machine's counters (or indicator lights) to a target.
//
// 🚀 What is in here?
//
//   - Joltage counters: minimum non-negative integer press vectors via
//     subset enumeration, least squares and free-variable resolution
//   - Indicator lights: minimum XOR cover by increasing subset size
//   - Exact integer verification of every candidate
//   - Parallel subset search with deterministic tie-breaking
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   — dense matrices, LU, least squares & the counter/button incidence matrix
//	subset/   — lexicographic k-subset enumeration
//	press/    — the joltage optimizer (Solve, Verify, MinPresses)
//	lights/   — the indicator-light variant
//	factory/  — machine line parser and both-part aggregation
//	cmd/factory — command-line front end
//
// Quick example, one machine and its counters:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//	counters  3 5 4 7  →  10 presses: (3)×1 (1,3)×5 (2,3)×1 (0,2)×3
//
//	go get github.com/katalvlaran/jolt
package jolt
