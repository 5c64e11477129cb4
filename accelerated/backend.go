package accelerated

// Backend computes the dense product c = a × b of two n×n row-major int32
// matrices. c must be zeroed by the caller.
type Backend interface {
	SetupContext() error
	MatMul(c, a, b []int32, n int) error
	Release() error
}
