//go:build linux || darwin

package clock

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// ProcessCPU reads CPU time consumed by all threads of the process.
type ProcessCPU struct{}

func NewProcessCPU() *ProcessCPU {
	return &ProcessCPU{}
}

func (*ProcessCPU) Now() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("clock: failed to read process cpu time: %w", err)
	}

	return time.Duration(ts.Nano()), nil
}
