// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewSub records a - b: value is a - b; ∂L/∂a = sum_if_scalar_shape_of_a(g),
// ∂L/∂b = -sum_if_scalar_shape_of_b(g).
func NewSub(a, b *graph.Node) (*graph.Node, error) {
	value, err := numeric.Sub(a.Value, b.Value)
	if err != nil {
		return nil, graph.ShapeMismatchf("sub", err)
	}
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		bGrad, err := numeric.Mul(sumIfScalar(childKindOf(b), g), numeric.Scalar(-1))
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{
			sumIfScalar(childKindOf(a), g),
			bGrad,
		}, nil
	}
	print := func(c []string) string { return c[0] + "-" + c[1] }
	return graph.NewOp("-", value, []*graph.Node{a, b}, backward, print), nil
}
