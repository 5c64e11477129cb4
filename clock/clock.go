// Package clock supplies the timestamps that bracket a benchmark's timed
// section.
package clock

import (
	"fmt"
	"time"
)

// Clock returns a reading that is only meaningful relative to another
// reading from the same Clock.
type Clock interface {
	Now() (time.Duration, error)
}

// Wall is a monotonic wall clock anchored at its creation.
type Wall struct {
	origin time.Time
}

func NewWall() *Wall {
	return &Wall{origin: time.Now()}
}

func (w *Wall) Now() (time.Duration, error) {
	return time.Since(w.origin), nil
}

// New returns the clock registered under name: "cpu" or "wall".
func New(name string) (Clock, error) {
	switch name {
	case "cpu":
		return NewProcessCPU(), nil
	case "wall":
		return NewWall(), nil
	default:
		return nil, fmt.Errorf("clock: unknown clock %q", name)
	}
}

// Measure runs fn between two readings of c and returns the difference.
func Measure(c Clock, fn func() error) (time.Duration, error) {
	start, err := c.Now()
	if err != nil {
		return 0, fmt.Errorf("clock: failed to read start time: %w", err)
	}

	if err := fn(); err != nil {
		return 0, err
	}

	end, err := c.Now()
	if err != nil {
		return 0, fmt.Errorf("clock: failed to read end time: %w", err)
	}

	if end < start {
		return 0, nil
	}

	return end - start, nil
}
