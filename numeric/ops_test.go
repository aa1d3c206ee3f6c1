package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/born/numeric"
)

func TestAddScalarBroadcast(t *testing.T) {
	v := numeric.NewVector([]float32{1, 2, 3})
	out, err := numeric.Add(numeric.Scalar(2), v)
	require.NoError(t, err)
	got := out.(numeric.Vector)
	assert.Equal(t, []float32{3, 4, 5}, got.Raw())
}

func TestAddVectorLengthMismatch(t *testing.T) {
	a := numeric.NewVector([]float32{1, 2})
	b := numeric.NewVector([]float32{1, 2, 3})
	_, err := numeric.Add(a, b)
	assert.Error(t, err)
	var shapeErr *numeric.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestMatVec(t *testing.T) {
	m := numeric.Identity(3)
	v := numeric.NewVector([]float32{2, 4, 6})
	out, err := numeric.MatVec(m, v)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 4, 6}, out.Raw())
}

func TestMatVecShapeMismatch(t *testing.T) {
	m := numeric.NewMatrix(2, 3, []float32{1, 2, 3, 4, 5, 6})
	v := numeric.NewVector([]float32{1, 2})
	_, err := numeric.MatVec(m, v)
	assert.Error(t, err)
}

func TestOuter(t *testing.T) {
	a := numeric.NewVector([]float32{1, 1, 1})
	b := numeric.NewVector([]float32{2, 4, 6})
	out := numeric.Outer(a, b)
	assert.Equal(t, 3, out.Rows())
	assert.Equal(t, 3, out.Cols())
	for i := 0; i < 3; i++ {
		assert.Equal(t, []float32{2, 4, 6}[i], out.AtRC(0, i))
		assert.Equal(t, []float32{2, 4, 6}[i], out.AtRC(2, i))
	}
}

func TestTranspose(t *testing.T) {
	m := numeric.NewMatrix(2, 3, []float32{1, 2, 3, 4, 5, 6})
	tr := numeric.Transpose(m)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, float32(4), tr.AtRC(0, 1))
}

func TestSum(t *testing.T) {
	v := numeric.NewVector([]float32{1, 2, 3})
	assert.Equal(t, numeric.Scalar(6), numeric.Sum(v))

	m := numeric.NewMatrix(2, 2, []float32{1, 2, 3, 4})
	assert.Equal(t, numeric.Scalar(10), numeric.Sum(m))
}

func TestPow(t *testing.T) {
	v := numeric.NewVector([]float32{1, 2, 3})
	out := numeric.Pow(v, 2).(numeric.Vector)
	assert.Equal(t, []float32{1, 4, 9}, out.Raw())
}

func TestOnesAndZero(t *testing.T) {
	m := numeric.NewMatrix(2, 2, []float32{1, 2, 3, 4})
	ones := m.Ones().(numeric.Matrix)
	assert.Equal(t, []float32{1, 1, 1, 1}, ones.Raw())

	zero := m.Zero().(numeric.Matrix)
	assert.Equal(t, []float32{0, 0, 0, 0}, zero.Raw())
}
