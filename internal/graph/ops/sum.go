// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewSum records sum(a), reducing a Vector or Matrix to a Scalar;
// ∂L/∂a broadcasts the incoming scalar gradient back across every
// element of a's shape.
func NewSum(a *graph.Node) *graph.Node {
	value := numeric.Sum(a.Value)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		grad, err := broadcastScalar(a.Value, g.(numeric.Scalar))
		if err != nil {
			return nil, err
		}
		return []numeric.Tensor{grad}, nil
	}
	print := func(c []string) string { return "sum(" + c[0] + ")" }
	return graph.NewOp("sum", value, []*graph.Node{a}, backward, print)
}
