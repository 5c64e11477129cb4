package cpu

import (
	"fmt"

	"github.com/haormj/cpubench/accelerated"
)

type CPU struct {
}

// MatMul implements accelerated.Backend.
//
// The loop order is i-j-k with int32 accumulation; overflow wraps.
func (*CPU) MatMul(c []int32, a []int32, b []int32, n int) error {
	size := n * n
	if len(a) < size || len(b) < size || len(c) < size {
		return fmt.Errorf("accelerated/cpu: matrices must hold %d elements, got a=%d b=%d c=%d",
			size, len(a), len(b), len(c))
	}

	for i := 0; i < n; i++ {
		row := i * n

		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				c[row+j] += a[row+k] * b[k*n+j]
			}
		}
	}

	return nil
}

// Release implements accelerated.Backend.
func (*CPU) Release() error {
	return nil
}

// SetupContext implements accelerated.Backend.
func (*CPU) SetupContext() error {
	return nil
}

var _ accelerated.Backend = &CPU{}
