// Package matrix holds the square int32 matrices used by the matrix
// multiplication benchmark and the runner that times their product.
package matrix

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// Size is the side length of the benchmark matrices.
const Size = 500

// MaxValue is the exclusive upper bound of the random fill.
const MaxValue = 10

var (
	ErrAllocation = errors.New("matrix: allocation failed")
	ErrMismatch   = errors.New("matrix: product mismatch")
)

// Allocator obtains backing storage for elems int32 values. New zeroes it.
type Allocator func(elems int) ([]int32, error)

// HeapAllocator allocates from the Go heap. Requests the runtime rejects
// are reported as ErrAllocation instead of panicking.
func HeapAllocator(elems int) (buf []int32, err error) {
	if elems < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrAllocation, elems)
	}

	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return make([]int32, elems), nil
}

// Matrix is an n×n row-major matrix that exclusively owns its storage.
type Matrix struct {
	N    int
	Data []int32
}

// New allocates a zeroed n×n matrix through alloc.
func New(n int, alloc Allocator) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}

	if n > 0 && n > math.MaxInt/n {
		return nil, fmt.Errorf("%w: size %d overflows", ErrAllocation, n)
	}

	if alloc == nil {
		alloc = HeapAllocator
	}

	data, err := alloc(n * n)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}

	if len(data) != n*n {
		return nil, fmt.Errorf("%w: allocator returned %d elements, want %d", ErrAllocation, len(data), n*n)
	}

	// Allocators may hand back reused storage.
	clear(data)

	return &Matrix{N: n, Data: data}, nil
}

// FromRows copies a square slice of rows into a new matrix.
func FromRows(rows [][]int32) (*Matrix, error) {
	m, err := New(len(rows), nil)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != m.N {
			return nil, fmt.Errorf("matrix: row %d has %d columns, want %d", i, len(row), m.N)
		}

		copy(m.Data[i*m.N:], row)
	}

	return m, nil
}

func (m *Matrix) At(i, j int) int32 {
	return m.Data[i*m.N+j]
}

func (m *Matrix) Set(i, j int, v int32) {
	m.Data[i*m.N+j] = v
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]int32 {
	rows := make([][]int32, m.N)
	for i := range rows {
		rows[i] = append([]int32(nil), m.Data[i*m.N:(i+1)*m.N]...)
	}

	return rows
}

// Fill overwrites every entry with a value drawn uniformly from [0, MaxValue).
func (m *Matrix) Fill(rng *rand.Rand) {
	for i := range m.Data {
		m.Data[i] = rng.Int32N(MaxValue)
	}
}

// Compare returns ErrMismatch naming the first entry where m and o differ.
func (m *Matrix) Compare(o *Matrix) error {
	if m.N != o.N {
		return fmt.Errorf("%w: size %d vs %d", ErrMismatch, m.N, o.N)
	}

	for idx, v := range m.Data {
		if w := o.Data[idx]; v != w {
			return fmt.Errorf("%w: entry (%d,%d) is %d, want %d", ErrMismatch, idx/m.N, idx%m.N, v, w)
		}
	}

	return nil
}
