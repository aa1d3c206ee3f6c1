// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewMul records a * b. When a is a Matrix and b is a Vector this is
// the matrix-vector product A·B → Vec<R>; otherwise it is the
// element-wise (or scalar-scaled) product. Either way the backward
// rule is the same gradMult helper, applied once per child.
func NewMul(a, b *graph.Node) (*graph.Node, error) {
	var value numeric.Tensor
	if am, ok := a.Value.(numeric.Matrix); ok {
		if bv, ok := b.Value.(numeric.Vector); ok {
			mv, err := numeric.MatVec(am, bv)
			if err != nil {
				return nil, graph.ShapeMismatchf("mul", err)
			}
			value = mv
		}
	}
	if value == nil {
		v, err := numeric.Mul(a.Value, b.Value)
		if err != nil {
			return nil, graph.ShapeMismatchf("mul", err)
		}
		value = v
	}

	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		gradA, err := gradMult(childKindOf(a), g, b.Value)
		if err != nil {
			return nil, err
		}
		gradB, err := gradMult(childKindOf(b), g, a.Value)
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{gradA, gradB}, nil
	}
	op := "*"
	if _, ok := value.(numeric.Vector); ok {
		if _, ok := a.Value.(numeric.Matrix); ok {
			op = "·"
		}
	}
	print := func(c []string) string { return c[0] + op + c[1] }
	return graph.NewOp(op, value, []*graph.Node{a, b}, backward, print), nil
}
