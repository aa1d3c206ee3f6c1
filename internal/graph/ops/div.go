// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewDiv records a / b: ∂L/∂a = sum_if_scalar_shape_of_a(g/b),
// ∂L/∂b = sum_if_scalar_shape_of_b(-g·a/b²).
func NewDiv(a, b *graph.Node) (*graph.Node, error) {
	value, err := numeric.Div(a.Value, b.Value)
	if err != nil {
		return nil, graph.ShapeMismatchf("div", err)
	}
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		gradA, err := numeric.Div(g, b.Value)
		if err != nil {
			return nil, err
		}

		bSquared, err := numeric.Mul(b.Value, b.Value)
		if err != nil {
			return nil, err
		}
		num, err := numeric.Mul(g, a.Value)
		if err != nil {
			return nil, err
		}
		ratio, err := numeric.Div(num, bSquared)
		if err != nil {
			return nil, err
		}
		gradB, err := numeric.Mul(ratio, numeric.Scalar(-1))
		if err != nil {
			return nil, err
		}

		return []numeric.Tensor{
			sumIfScalar(childKindOf(a), gradA),
			sumIfScalar(childKindOf(b), gradB),
		}, nil
	}
	print := func(c []string) string { return c[0] + "/" + c[1] }
	return graph.NewOp("/", value, []*graph.Node{a, b}, backward, print), nil
}
