package numeric

import "fmt"

// Kind identifies which of the three fixed shape families a Tensor is.
type Kind int

const (
	ScalarKind Kind = iota
	VectorKind
	MatrixKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case VectorKind:
		return "vector"
	case MatrixKind:
		return "matrix"
	default:
		return "unknown"
	}
}

// Tensor is implemented by Scalar, Vector, and Matrix. It exposes just
// enough shape and element access for the autodiff core to build
// shape-agnostic helpers (zero/ones seeds, element iteration) on top of
// the three concrete families.
type Tensor interface {
	Kind() Kind
	// Dims returns (rows, cols) for a Matrix, (n, 0) for a Vector, and
	// (0, 0) for a Scalar.
	Dims() (int, int)
	// Len returns the total element count.
	Len() int
	// At returns the flat (row-major) element at index i.
	At(i int) float32
	// Zero returns the additive-identity tensor of the same shape.
	Zero() Tensor
	// Ones returns the all-ones tensor of the same shape — the
	// seed backward() writes into the root's gradient.
	Ones() Tensor
	fmt.Stringer
}

// SameShape reports whether a and b carry identical shapes.
func SameShape(a, b Tensor) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}

// ShapeError reports an operation applied to incompatible shapes. It is
// the facade-level error that internal/graph wraps into a
// graph.Error{Kind: ShapeMismatch}.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("numeric: %s: %s", e.Op, e.Msg)
}

func shapeErrorf(op, format string, args ...any) error {
	return &ShapeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
