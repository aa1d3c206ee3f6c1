package numeric

import (
	"fmt"
	"strings"
)

// Matrix is a fixed-size R×C row-major matrix of float32.
type Matrix struct {
	rows, cols int
	data       []float32 // row-major, length rows*cols
}

// NewMatrix builds an R×C matrix from row-major data.
func NewMatrix(rows, cols int, data []float32) Matrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("numeric: NewMatrix: got %d elements, want %d for a %dx%d matrix", len(data), rows*cols, rows, cols))
	}
	cp := make([]float32, len(data))
	copy(cp, data)
	return Matrix{rows: rows, cols: cols, data: cp}
}

// ZeroMatrix returns the rows×cols zero matrix.
func ZeroMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float32, rows*cols)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	m := ZeroMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m Matrix) Kind() Kind       { return MatrixKind }
func (m Matrix) Dims() (int, int) { return m.rows, m.cols }
func (m Matrix) Len() int         { return m.rows * m.cols }
func (m Matrix) At(i int) float32 { return m.data[i] }
func (m Matrix) Rows() int        { return m.rows }
func (m Matrix) Cols() int        { return m.cols }

// Raw returns the backing row-major slice. Callers must not mutate it.
func (m Matrix) Raw() []float32 { return m.data }

// AtRC returns element (i, j).
func (m Matrix) AtRC(i, j int) float32 { return m.data[i*m.cols+j] }

func (m Matrix) Zero() Tensor { return ZeroMatrix(m.rows, m.cols) }

func (m Matrix) Ones() Tensor {
	ones := make([]float32, len(m.data))
	for i := range ones {
		ones[i] = 1
	}
	return Matrix{rows: m.rows, cols: m.cols, data: ones}
}

func (m Matrix) String() string {
	rows := make([]string, m.rows)
	for i := 0; i < m.rows; i++ {
		cols := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			cols[j] = fmt.Sprintf("%g", m.AtRC(i, j))
		}
		rows[i] = "[" + strings.Join(cols, ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}
