// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewPow records a^exponent, where exponent must be a Scalar node;
// ∂L/∂a = g · exponent · a^(exponent-1). A non-scalar exponent is
// rejected immediately, since the shape of the forward result would
// otherwise depend on a combination this façade has no rule for.
// Backward through the exponent itself is never supported — attempting
// it (exponent.RequiresGrad true) fails with UnsupportedDerivative once
// backward actually reaches this node.
func NewPow(a, exponent *graph.Node) (*graph.Node, error) {
	es, ok := exponent.Value.(numeric.Scalar)
	if !ok {
		return nil, graph.ErrUnsupportedDerivative("pow", "exponent must be a scalar")
	}
	e := float32(es)

	value := numeric.Pow(a.Value, e)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		if exponent.RequiresGrad {
			return nil, graph.ErrUnsupportedDerivative("pow", "gradient w.r.t. the exponent is not supported")
		}
		local := numeric.Pow(a.Value, e-1)
		scaled := numeric.Map(local, func(x float32) float32 { return e * x })
		grad, err := numeric.Mul(g, scaled)
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad, nil}, nil
	}
	print := func(c []string) string { return "pow(" + c[0] + ")" }
	return graph.NewOp("pow", value, []*graph.Node{a, exponent}, backward, print), nil
}
