package numeric

import "math"

// Add computes a + b element-wise. One operand may be a Scalar while
// the other is a Vector or Matrix, in which case the scalar is
// broadcast across every element of the other operand.
func Add(a, b Tensor) (Tensor, error) {
	return combine("add", a, b, func(x, y float32) float32 { return x + y })
}

// Sub computes a - b element-wise, with the same scalar-broadcast rule as Add.
func Sub(a, b Tensor) (Tensor, error) {
	return combine("sub", a, b, func(x, y float32) float32 { return x - y })
}

// Mul computes a ⊙ b element-wise (or scalar-scaled), with the same
// broadcast rule as Add. It does not implement the matrix-vector
// product — see MatVec.
func Mul(a, b Tensor) (Tensor, error) {
	return combine("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div computes a / b element-wise, with the same broadcast rule as Add.
func Div(a, b Tensor) (Tensor, error) {
	return combine("div", a, b, func(x, y float32) float32 { return x / y })
}

// combine implements the element-wise-with-scalar-broadcast shape rule
// shared by Add/Sub/Mul/Div: equal shapes combine position-wise; a
// Scalar paired with a Vector/Matrix is broadcast across every element.
func combine(op string, a, b Tensor, f func(x, y float32) float32) (Tensor, error) {
	switch {
	case a.Kind() == ScalarKind && b.Kind() == ScalarKind:
		return Scalar(f(float32(a.(Scalar)), float32(b.(Scalar)))), nil

	case a.Kind() == ScalarKind && b.Kind() == VectorKind:
		bv := b.(Vector)
		s := float32(a.(Scalar))
		out := make([]float32, bv.n)
		for i, x := range bv.data {
			out[i] = f(s, x)
		}
		return Vector{n: bv.n, data: out}, nil

	case a.Kind() == VectorKind && b.Kind() == ScalarKind:
		av := a.(Vector)
		s := float32(b.(Scalar))
		out := make([]float32, av.n)
		for i, x := range av.data {
			out[i] = f(x, s)
		}
		return Vector{n: av.n, data: out}, nil

	case a.Kind() == VectorKind && b.Kind() == VectorKind:
		av, bv := a.(Vector), b.(Vector)
		if av.n != bv.n {
			return nil, shapeErrorf(op, "vector lengths %d and %d differ", av.n, bv.n)
		}
		out := make([]float32, av.n)
		for i := range out {
			out[i] = f(av.data[i], bv.data[i])
		}
		return Vector{n: av.n, data: out}, nil

	case a.Kind() == ScalarKind && b.Kind() == MatrixKind:
		bm := b.(Matrix)
		s := float32(a.(Scalar))
		out := make([]float32, len(bm.data))
		for i, x := range bm.data {
			out[i] = f(s, x)
		}
		return Matrix{rows: bm.rows, cols: bm.cols, data: out}, nil

	case a.Kind() == MatrixKind && b.Kind() == ScalarKind:
		am := a.(Matrix)
		s := float32(b.(Scalar))
		out := make([]float32, len(am.data))
		for i, x := range am.data {
			out[i] = f(x, s)
		}
		return Matrix{rows: am.rows, cols: am.cols, data: out}, nil

	case a.Kind() == MatrixKind && b.Kind() == MatrixKind:
		am, bm := a.(Matrix), b.(Matrix)
		if am.rows != bm.rows || am.cols != bm.cols {
			return nil, shapeErrorf(op, "matrix shapes %dx%d and %dx%d differ", am.rows, am.cols, bm.rows, bm.cols)
		}
		out := make([]float32, len(am.data))
		for i := range out {
			out[i] = f(am.data[i], bm.data[i])
		}
		return Matrix{rows: am.rows, cols: am.cols, data: out}, nil

	default:
		return nil, shapeErrorf(op, "unsupported shape combination %s and %s", a.Kind(), b.Kind())
	}
}

// MatVec computes the matrix-vector product m·v, producing a vector of
// length m.Rows(). It requires m.Cols() == v.N().
func MatVec(m Matrix, v Vector) (Vector, error) {
	if m.cols != v.n {
		return Vector{}, shapeErrorf("matvec", "matrix is %dx%d, vector has length %d", m.rows, m.cols, v.n)
	}
	out := make([]float32, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum float32
		for j := 0; j < m.cols; j++ {
			sum += m.AtRC(i, j) * v.data[j]
		}
		out[i] = sum
	}
	return Vector{n: m.rows, data: out}, nil
}

// Outer computes the outer product a·bᵀ, producing an len(a)×len(b) matrix.
func Outer(a, b Vector) Matrix {
	out := make([]float32, a.n*b.n)
	for i := 0; i < a.n; i++ {
		for j := 0; j < b.n; j++ {
			out[i*b.n+j] = a.data[i] * b.data[j]
		}
	}
	return Matrix{rows: a.n, cols: b.n, data: out}
}

// Transpose returns mᵀ.
func Transpose(m Matrix) Matrix {
	out := make([]float32, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.AtRC(i, j)
		}
	}
	return Matrix{rows: m.cols, cols: m.rows, data: out}
}

// Sum reduces every element of t to their sum.
func Sum(t Tensor) Scalar {
	var sum float32
	for i := 0; i < t.Len(); i++ {
		sum += t.At(i)
	}
	return Scalar(sum)
}

// Map applies f to every element of t, returning a same-shape result.
func Map(t Tensor, f func(float32) float32) Tensor {
	switch v := t.(type) {
	case Scalar:
		return Scalar(f(float32(v)))
	case Vector:
		out := make([]float32, v.n)
		for i, x := range v.data {
			out[i] = f(x)
		}
		return Vector{n: v.n, data: out}
	case Matrix:
		out := make([]float32, len(v.data))
		for i, x := range v.data {
			out[i] = f(x)
		}
		return Matrix{rows: v.rows, cols: v.cols, data: out}
	default:
		panic("numeric: Map: unknown Tensor kind")
	}
}

// Pow raises every element of t to the exponent e.
func Pow(t Tensor, e float32) Tensor {
	return Map(t, func(x float32) float32 { return float32(math.Pow(float64(x), float64(e))) })
}

// Sin applies math.Sin element-wise.
func Sin(t Tensor) Tensor {
	return Map(t, func(x float32) float32 { return float32(math.Sin(float64(x))) })
}

// Cos applies math.Cos element-wise.
func Cos(t Tensor) Tensor {
	return Map(t, func(x float32) float32 { return float32(math.Cos(float64(x))) })
}
