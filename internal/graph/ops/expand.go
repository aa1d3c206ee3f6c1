// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// NewExpandScalar records expand<n>(a) for a Scalar a: value is a Vec<n>
// with a replicated into every position; ∂L/∂a = sum(g), collapsing the
// n upstream gradients back onto the single scalar they came from.
func NewExpandScalar(a *graph.Node, n int) (*graph.Node, error) {
	s, ok := a.Value.(numeric.Scalar)
	if !ok {
		return nil, graph.ErrUnsupportedDerivative("expand", "scalar expand requires a Scalar operand")
	}
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(s)
	}
	value := numeric.NewVector(data)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		return []numeric.Tensor{numeric.Sum(g)}, nil
	}
	print := func(c []string) string { return "expand(" + c[0] + ")" }
	return graph.NewOp("expand", value, []*graph.Node{a}, backward, print), nil
}

// NewExpandVector records expand<n>(a) for a Vec<s> a: value is a
// Vec<s*n> formed by tiling a n times back to back. ∂L/∂a sums the n
// gradient blocks position-wise back onto the s-length source: this is
// the block-sum rule paired with block-tiling in the forward pass.
func NewExpandVector(a *graph.Node, n int) (*graph.Node, error) {
	v, ok := a.Value.(numeric.Vector)
	if !ok {
		return nil, graph.ErrUnsupportedDerivative("expand", "vector expand requires a Vector operand")
	}
	s := v.N()
	data := make([]float32, s*n)
	for k := 0; k < n; k++ {
		copy(data[k*s:(k+1)*s], v.Raw())
	}
	value := numeric.NewVector(data)
	backward := func(g numeric.Tensor) ([]numeric.Tensor, error) {
		gv, ok := g.(numeric.Vector)
		if !ok {
			return nil, graph.ErrUnsupportedDerivative("expand", "expected vector upstream gradient")
		}
		out := make([]float32, s)
		for k := 0; k < n; k++ {
			for i := 0; i < s; i++ {
				out[i] += gv.Raw()[k*s+i]
			}
		}
		return []numeric.Tensor{numeric.NewVector(out)}, nil
	}
	print := func(c []string) string { return "expand(" + c[0] + ")" }
	return graph.NewOp("expand", value, []*graph.Node{a}, backward, print), nil
}
