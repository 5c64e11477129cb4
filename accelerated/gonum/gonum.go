// Package gonum provides a reference accelerated.Backend on top of
// gonum's dense matrix product.
//
// Products are computed in float64 and are exact only while every partial
// sum stays below 2^53 in magnitude, which holds for the benchmark's
// [0,9] inputs at any practical size.
package gonum

import (
	"fmt"
	"math"

	"github.com/haormj/cpubench/accelerated"
	"gonum.org/v1/gonum/mat"
)

type Gonum struct {
	a, b, c *mat.Dense
	n       int
}

func New() *Gonum {
	return &Gonum{}
}

// SetupContext implements accelerated.Backend.
func (g *Gonum) SetupContext() error {
	return nil
}

// Release implements accelerated.Backend.
func (g *Gonum) Release() error {
	g.a, g.b, g.c = nil, nil, nil
	g.n = 0

	return nil
}

func (g *Gonum) dense(n int) {
	if g.n == n && g.a != nil {
		return
	}

	g.a = mat.NewDense(n, n, nil)
	g.b = mat.NewDense(n, n, nil)
	g.c = mat.NewDense(n, n, nil)
	g.n = n
}

// MatMul implements accelerated.Backend.
func (g *Gonum) MatMul(c []int32, a []int32, b []int32, n int) error {
	size := n * n
	if len(a) < size || len(b) < size || len(c) < size {
		return fmt.Errorf("accelerated/gonum: matrices must hold %d elements, got a=%d b=%d c=%d",
			size, len(a), len(b), len(c))
	}

	if n == 0 {
		return nil
	}

	g.dense(n)
	load(g.a, a, n)
	load(g.b, b, n)

	g.c.Mul(g.a, g.b)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := g.c.At(i, j)
			if math.Abs(v) >= 1<<53 {
				return fmt.Errorf("accelerated/gonum: entry (%d,%d) exceeds exact float64 range", i, j)
			}

			c[i*n+j] += int32(int64(v))
		}
	}

	return nil
}

func load(dst *mat.Dense, src []int32, n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst.Set(i, j, float64(src[i*n+j]))
		}
	}
}

var _ accelerated.Backend = &Gonum{}
