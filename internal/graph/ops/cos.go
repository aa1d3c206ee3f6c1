// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewCos records cos(a); ∂L/∂a = -g · sin(a).
func NewCos(a *graph.Node) *graph.Node {
	value := numeric.Cos(a.Value)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		sin := numeric.Sin(a.Value)
		prod, err := numeric.Mul(g, sin)
		if err != nil {
			return nil, err
		}
		grad, err := numeric.Mul(prod, numeric.Scalar(-1))
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad}, nil
	}
	print := func(c []string) string { return "cos(" + c[0] + ")" }
	return graph.NewOp("cos", value, []*graph.Node{a}, backward, print)
}
