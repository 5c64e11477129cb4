//go:build !linux && !darwin

package clock

import "time"

// ProcessCPU falls back to the monotonic wall clock where no process CPU
// clock is available.
type ProcessCPU struct {
	wall *Wall
}

func NewProcessCPU() *ProcessCPU {
	return &ProcessCPU{wall: NewWall()}
}

func (p *ProcessCPU) Now() (time.Duration, error) {
	return p.wall.Now()
}
