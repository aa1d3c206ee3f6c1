// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewSin records sin(a); ∂L/∂a = g · cos(a).
func NewSin(a *graph.Node) *graph.Node {
	value := numeric.Sin(a.Value)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		cos := numeric.Cos(a.Value)
		grad, err := numeric.Mul(g, cos)
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad}, nil
	}
	print := func(c []string) string { return "sin(" + c[0] + ")" }
	return graph.NewOp("sin", value, []*graph.Node{a}, backward, print)
}
