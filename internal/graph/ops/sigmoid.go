// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"math"

	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewSigmoid records sigmoid(a) = 1/(1+e^-a); ∂L/∂a = g · s · (1-s)
// where s is the forward value.
func NewSigmoid(a *graph.Node) *graph.Node {
	value := numeric.Map(a.Value, func(x float32) float32 {
		return float32(1 / (1 + math.Exp(float64(-x))))
	})
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		oneMinus := numeric.Map(value, func(s float32) float32 { return 1 - s })
		local, err := numeric.Mul(value, oneMinus)
		if err != nil {
			return nil, err
		}
		grad, err := numeric.Mul(g, local)
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad}, nil
	}
	print := func(c []string) string { return "sigmoid(" + c[0] + ")" }
	return graph.NewOp("sigmoid", value, []*graph.Node{a}, backward, print)
}
