// Package factory reads factory machine descriptions and aggregates the
// answers of both machine variants.
//
// One machine per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// [...] is the target light pattern ('#' on, '.' off), each (...) lists the
// 0-based indices a button is wired to, and {...} holds the joltage targets.
// A leading "N→" line-number prefix is ignored.
package factory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/jolt/lights"
	"github.com/katalvlaran/jolt/press"
)

var (
	// ErrMalformed is returned for a line without a light pattern, for a
	// light other than '.' or '#', and for a list entry that is not a
	// non-negative integer.
	ErrMalformed = errors.New("factory: malformed machine line")

	// ErrNoJoltages is returned for a line without a {...} joltage block.
	ErrNoJoltages = errors.New("factory: missing joltages")
)

// Each group captures everything up to its closing bracket; the contents
// are validated afterwards so bad input is reported instead of skipped.
var (
	lightRe   = regexp.MustCompile(`\[([^\]]*)\]`)
	buttonRe  = regexp.MustCompile(`\(([^)]*)\)`)
	joltageRe = regexp.MustCompile(`\{([^}]*)\}`)
)

// lineArrow separates an optional line number from the machine text.
const lineArrow = "→"

// Machine is one parsed factory line.
type Machine struct {
	Lights   []bool
	Buttons  [][]int
	Joltages []int
}

// LightMachine returns the light-toggling view of the machine.
func (m Machine) LightMachine() lights.Machine {
	return lights.Machine{Target: m.Lights, Buttons: m.Buttons}
}

// Joltage returns the counter view of the machine.
func (m Machine) Joltage() press.Machine {
	return press.Machine{Joltages: m.Joltages, Buttons: m.Buttons}
}

// ParseLine parses a single machine description.
func ParseLine(line string) (Machine, error) {
	if _, rest, ok := strings.Cut(line, lineArrow); ok {
		line = rest
	}

	var m Machine
	lm := lightRe.FindStringSubmatch(line)
	if lm == nil {
		return Machine{}, fmt.Errorf("no light pattern: %w", ErrMalformed)
	}
	pattern := strings.TrimSpace(lm[1])
	m.Lights = make([]bool, 0, len(pattern))
	for _, c := range pattern {
		switch c {
		case '#':
			m.Lights = append(m.Lights, true)
		case '.':
			m.Lights = append(m.Lights, false)
		default:
			return Machine{}, fmt.Errorf("light %q: %w", c, ErrMalformed)
		}
	}

	for _, bm := range buttonRe.FindAllStringSubmatch(line, -1) {
		btn, err := parseList(bm[1])
		if err != nil {
			return Machine{}, fmt.Errorf("button %q: %w", bm[0], err)
		}
		m.Buttons = append(m.Buttons, btn)
	}

	jm := joltageRe.FindStringSubmatch(line)
	if jm == nil {
		return Machine{}, ErrNoJoltages
	}
	jolts, err := parseList(jm[1])
	if err != nil {
		return Machine{}, fmt.Errorf("joltages %q: %w", jm[0], err)
	}
	m.Joltages = jolts

	return m, nil
}

// parseList parses "1,3,4" (spaces around numbers allowed); a blank string
// yields an empty list. Only non-negative integers are accepted.
func parseList(s string) ([]int, error) {
	out := []int{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%q: %w", f, ErrMalformed)
		}
		out = append(out, n)
	}

	return out, nil
}

// Load parses every non-blank line of r.
// Errors are wrapped with the 1-based line number.
func Load(r io.Reader) ([]Machine, error) {
	var (
		machines []Machine
		sc       = bufio.NewScanner(r)
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		machines = append(machines, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}

	return machines, nil
}
