// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewRelu records relu(a) = max(a, 0); ∂L/∂a = g where a > 0, else 0.
func NewRelu(a *graph.Node) *graph.Node {
	value := numeric.Map(a.Value, func(x float32) float32 {
		if x > 0 {
			return x
		}
		return 0
	})
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		mask := numeric.Map(a.Value, func(x float32) float32 {
			if x > 0 {
				return 1
			}
			return 0
		})
		grad, err := numeric.Mul(g, mask)
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad}, nil
	}
	print := func(c []string) string { return "relu(" + c[0] + ")" }
	return graph.NewOp("relu", value, []*graph.Node{a}, backward, print)
}
