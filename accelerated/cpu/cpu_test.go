package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatMul2x2(t *testing.T) {
	a := []int32{1, 2, 3, 4}
	b := []int32{5, 6, 7, 8}
	c := make([]int32, 4)

	require.NoError(t, (&CPU{}).MatMul(c, a, b, 2))
	require.Equal(t, []int32{19, 22, 43, 50}, c)
}

func TestMatMul3x3(t *testing.T) {
	a := []int32{
		1, 0, 2,
		0, 3, 0,
		4, 0, 5,
	}
	b := []int32{
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	}
	c := make([]int32, 9)

	require.NoError(t, (&CPU{}).MatMul(c, a, b, 3))
	require.Equal(t, []int32{
		15, 12, 9,
		18, 15, 12,
		51, 42, 33,
	}, c)
}

func TestMatMulAccumulatesIntoOutput(t *testing.T) {
	c := []int32{100}

	require.NoError(t, (&CPU{}).MatMul(c, []int32{2}, []int32{3}, 1))
	require.Equal(t, []int32{106}, c)
}

func TestMatMulWrapsOnOverflow(t *testing.T) {
	c := make([]int32, 1)

	require.NoError(t, (&CPU{}).MatMul(c, []int32{math.MaxInt32}, []int32{2}, 1))
	require.Equal(t, int32(-2), c[0])
}

func TestMatMulShortSlices(t *testing.T) {
	err := (&CPU{}).MatMul(make([]int32, 3), make([]int32, 4), make([]int32, 4), 2)
	require.Error(t, err)
}

func TestMatMulEmpty(t *testing.T) {
	require.NoError(t, (&CPU{}).MatMul(nil, nil, nil, 0))
}

func BenchmarkMatMul(b *testing.B) {
	const n = 128

	x := make([]int32, n*n)
	y := make([]int32, n*n)
	for i := range x {
		x[i] = int32(i % 10)
		y[i] = int32((i * 7) % 10)
	}

	cpu := &CPU{}
	out := make([]int32, n*n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clear(out)
		if err := cpu.MatMul(out, x, y, n); err != nil {
			b.Fatal(err)
		}
	}
}
