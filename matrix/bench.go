package matrix

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/haormj/cpubench/accelerated"
	"github.com/haormj/cpubench/clock"
)

// Benchmark multiplies two randomly filled Size×Size matrices and times the
// product alone. Allocation, fill and verification happen outside the
// timed window.
type Benchmark struct {
	Size    int
	Backend accelerated.Backend
	// Verifier, when set, recomputes the product after timing and the run
	// fails with ErrMismatch if the two disagree.
	Verifier accelerated.Backend
	Alloc    Allocator
	Rand     *rand.Rand
	Clock    clock.Clock
	Logger   *slog.Logger
}

type Result struct {
	Elapsed time.Duration
	Product *Matrix
}

func (r Result) String() string {
	return fmt.Sprintf("Elapsed time: %.4f\n", r.Elapsed.Seconds())
}

func (b *Benchmark) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}

	return b.Logger
}

func (b *Benchmark) Run(ctx context.Context) (Result, error) {
	log := b.logger().With("benchmark", "matmul", "size", b.Size)

	if b.Backend == nil || b.Rand == nil || b.Clock == nil {
		return Result{}, fmt.Errorf("matrix: benchmark needs a backend, a random source and a clock")
	}

	var mats [3]*Matrix
	for i := range mats {
		m, err := New(b.Size, b.Alloc)
		if err != nil {
			log.Error("allocation failed", "matrix", i, "error", err)
			return Result{}, fmt.Errorf("matrix: failed to allocate matrix %d: %w", i, err)
		}

		mats[i] = m
	}

	a, bm, c := mats[0], mats[1], mats[2]
	a.Fill(b.Rand)
	bm.Fill(b.Rand)
	log.Debug("inputs filled")

	if err := b.Backend.SetupContext(); err != nil {
		return Result{}, fmt.Errorf("matrix: failed to set up backend: %w", err)
	}
	defer func() {
		if err := b.Backend.Release(); err != nil {
			log.Warn("backend release failed", "error", err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	elapsed, err := clock.Measure(b.Clock, func() error {
		return b.Backend.MatMul(c.Data, a.Data, bm.Data, b.Size)
	})
	if err != nil {
		return Result{}, fmt.Errorf("matrix: failed to multiply: %w", err)
	}

	log.Debug("product computed", "elapsed", elapsed)

	if b.Verifier != nil {
		if err := b.verify(a, bm, c); err != nil {
			return Result{}, err
		}

		log.Info("product verified")
	}

	return Result{Elapsed: elapsed, Product: c}, nil
}

func (b *Benchmark) verify(a, bm, c *Matrix) error {
	want, err := New(b.Size, b.Alloc)
	if err != nil {
		return fmt.Errorf("matrix: failed to allocate verification matrix: %w", err)
	}

	if err := b.Verifier.SetupContext(); err != nil {
		return fmt.Errorf("matrix: failed to set up verifier: %w", err)
	}
	defer b.Verifier.Release()

	if err := b.Verifier.MatMul(want.Data, a.Data, bm.Data, b.Size); err != nil {
		return fmt.Errorf("matrix: failed to compute reference product: %w", err)
	}

	return c.Compare(want)
}
