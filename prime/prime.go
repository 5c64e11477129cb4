// Package prime counts primes by plain trial division.
package prime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/haormj/cpubench/clock"
)

// The benchmark's fixed inclusive candidate range.
const (
	RangeStart int64 = 90000000000
	RangeEnd   int64 = 90000100000
)

// IsPrime tests n by dividing it by every i >= 2 with i*i <= n.
// There is deliberately no even-number shortcut.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}

	for i := int64(2); within(i, n); i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// within reports i*i <= n for positive i without overflowing.
func within(i, n int64) bool {
	return i <= n/i
}

// CountRange returns the number of primes in [lo, hi].
func CountRange(lo, hi int64) int {
	count := 0

	for n := lo; n <= hi; n++ {
		if IsPrime(n) {
			count++
		}

		// n+1 would overflow
		if n == hi {
			break
		}
	}

	return count
}

type Benchmark struct {
	Start, End int64
	Clock      clock.Clock
	Logger     *slog.Logger
}

type Result struct {
	Count   int
	Elapsed time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("Found %d primes in %.3f seconds\n", r.Count, r.Elapsed.Seconds())
}

// Run counts primes in [b.Start, b.End] with the whole loop timed.
func (b *Benchmark) Run(ctx context.Context) (Result, error) {
	log := b.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("benchmark", "primes", "start", b.Start, "end", b.End)

	if b.Clock == nil {
		return Result{}, fmt.Errorf("prime: benchmark needs a clock")
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var count int
	elapsed, err := clock.Measure(b.Clock, func() error {
		count = CountRange(b.Start, b.End)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("prime: failed to time count: %w", err)
	}

	log.Debug("range counted", "count", count, "elapsed", elapsed)

	return Result{Count: count, Elapsed: elapsed}, nil
}
