// Package lights solves the indicator-light variant of the factory machines:
// every button toggles the lights it is wired to, and the goal is the fewest
// presses that turn the all-off panel into the target pattern.
//
// Pressing a button twice cancels out, so each button is pressed at most once
// and the problem is a minimum-weight XOR cover. Button sets are enumerated by
// increasing size, so the first match is minimal.
package lights

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/jolt/subset"
)

// Unreachable is returned when no combination of buttons yields the target.
const Unreachable = -1

// MaxLights is the largest panel representable in the uint64 bitmask.
const MaxLights = 64

var (
	// ErrTooManyLights is returned for panels wider than MaxLights.
	ErrTooManyLights = errors.New("lights: too many lights")

	// ErrLightOutOfRange is returned when a button references a missing light.
	ErrLightOutOfRange = errors.New("lights: button light out of range")
)

// Machine is a target light pattern (true = on) and the button wiring.
type Machine struct {
	Target  []bool
	Buttons [][]int
}

// masks converts the target and buttons to bitmasks.
func (m Machine) masks() (uint64, []uint64, error) {
	if len(m.Target) > MaxLights {
		return 0, nil, fmt.Errorf("%d lights: %w", len(m.Target), ErrTooManyLights)
	}
	var target uint64
	for i, on := range m.Target {
		if on {
			target |= 1 << uint(i)
		}
	}
	buttons := make([]uint64, len(m.Buttons))
	for b, btn := range m.Buttons {
		for _, l := range btn {
			if l < 0 || l >= len(m.Target) {
				return 0, nil, fmt.Errorf("button %d light %d: %w", b, l, ErrLightOutOfRange)
			}
			// a light listed twice in one button still toggles once
			buttons[b] |= 1 << uint(l)
		}
	}

	return target, buttons, nil
}

// MinPresses returns the fewest buttons whose combined toggles produce the
// target pattern, or Unreachable.
//
// Complexity: O(Σ_k C(n,k)·k) in the worst case, n = len(Buttons).
func MinPresses(m Machine) (int, error) {
	target, buttons, err := m.masks()
	if err != nil {
		return Unreachable, err
	}

	n := len(buttons)
	for k := 0; k <= n; k++ {
		for combo := range subset.Combinations(n, k) {
			var state uint64
			for _, b := range combo {
				state ^= buttons[b]
			}
			if state == target {
				return k, nil
			}
		}
	}

	return Unreachable, nil
}
