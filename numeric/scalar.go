package numeric

import "strconv"

// Scalar is a single float32 value — the simplest of the three fixed shapes.
type Scalar float32

func (s Scalar) Kind() Kind            { return ScalarKind }
func (s Scalar) Dims() (int, int)      { return 0, 0 }
func (s Scalar) Len() int              { return 1 }
func (s Scalar) At(i int) float32      { return float32(s) }
func (s Scalar) Zero() Tensor          { return Scalar(0) }
func (s Scalar) Ones() Tensor          { return Scalar(1) }
func (s Scalar) String() string        { return strconv.FormatFloat(float64(s), 'g', -1, 32) }
