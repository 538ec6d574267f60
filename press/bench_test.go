package press_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/jolt/press"
)

// sinkTotal defeats dead-code elimination.
var sinkTotal int

// ringMachine builds n counters and 2n buttons: singles {i} and pairs {i, i+1 mod n}.
func ringMachine(n int) press.Machine {
	m := press.Machine{Joltages: make([]int, n)}
	for i := 0; i < n; i++ {
		m.Joltages[i] = 3 + (i*7)%5
		m.Buttons = append(m.Buttons, []int{i}, []int{i, (i + 1) % n})
	}

	return m
}

func BenchmarkSolve_Sample(b *testing.B) {
	b.ReportAllocs()
	ctx := context.Background()
	opts := press.DefaultOptions()
	for i := 0; i < b.N; i++ {
		for _, m := range sampleMachines {
			res, err := press.Solve(ctx, m, opts)
			if err != nil {
				b.Fatal(err)
			}
			sinkTotal = res.Total
		}
	}
}

func BenchmarkSolve_Ring(b *testing.B) {
	ctx := context.Background()
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			m := ringMachine(4)
			opts := press.DefaultOptions()
			opts.Workers = workers
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := press.Solve(ctx, m, opts)
				if err != nil {
					b.Fatal(err)
				}
				sinkTotal = res.Total
			}
		})
	}
}
