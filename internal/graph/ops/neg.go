// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewNeg records -a: value is -a; ∂L/∂a = -g.
func NewNeg(a *graph.Node) *graph.Node {
	value := numeric.Map(a.Value, func(x float32) float32 { return -x })
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		neg, err := numeric.Mul(g, numeric.Scalar(-1))
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{neg}, nil
	}
	print := func(c []string) string { return "-" + c[0] }
	return graph.NewOp("neg", value, []*graph.Node{a}, backward, print)
}
