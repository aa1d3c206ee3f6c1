package numeric

import (
	"fmt"
	"strings"
)

// Vector is a fixed-length column vector of float32. Its length is
// fixed at construction and carried as data; there is no way to change
// n after NewVector returns.
type Vector struct {
	n    int
	data []float32
}

// NewVector builds a Vector from data, which becomes the vector's
// backing store (copied, so later mutation of data does not alias it).
func NewVector(data []float32) Vector {
	cp := make([]float32, len(data))
	copy(cp, data)
	return Vector{n: len(data), data: cp}
}

// ZeroVector returns the n-length zero vector.
func ZeroVector(n int) Vector {
	return Vector{n: n, data: make([]float32, n)}
}

func (v Vector) Kind() Kind       { return VectorKind }
func (v Vector) Dims() (int, int) { return v.n, 0 }
func (v Vector) Len() int         { return v.n }
func (v Vector) At(i int) float32 { return v.data[i] }
func (v Vector) N() int           { return v.n }

// Raw returns the backing slice. Callers must not mutate it.
func (v Vector) Raw() []float32 { return v.data }

func (v Vector) Zero() Tensor { return ZeroVector(v.n) }

func (v Vector) Ones() Tensor {
	ones := make([]float32, v.n)
	for i := range ones {
		ones[i] = 1
	}
	return Vector{n: v.n, data: ones}
}

func (v Vector) String() string {
	parts := make([]string, v.n)
	for i, x := range v.data {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
