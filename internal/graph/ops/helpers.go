// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ops provides the forward constructors for every differentiable
// operation: each NewXxx allocates a graph.Node, computes its forward
// value via the numeric façade, wires its children, and records the
// shape-aware backward closure for that operation.
package ops

import (
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// sumIfScalar reduces t by sum when the target child's shape is Scalar;
// otherwise t passes through unchanged. This is the rule that lets a
// scalar operand's gradient collapse a vector- or matrix-shaped
// upstream gradient back down to one number.
func sumIfScalar(childKind numeric.Kind, t numeric.Tensor) numeric.Tensor {
	if childKind == numeric.ScalarKind {
		return numeric.Sum(t)
	}
	return t
}

// gradMult computes the gradient contribution for a child of shape
// childKind in an A*B (or matrix-vector) product, given the upstream
// gradient g and the sibling operand's value.
func gradMult(childKind numeric.Kind, g, other numeric.Tensor) (numeric.Tensor, error) {
	switch {
	case childKind == numeric.VectorKind && other.Kind() == numeric.MatrixKind:
		return numeric.MatVec(numeric.Transpose(other.(numeric.Matrix)), g.(numeric.Vector))
	case childKind == numeric.MatrixKind && other.Kind() == numeric.VectorKind:
		return numeric.Outer(g.(numeric.Vector), other.(numeric.Vector)), nil
	default:
		prod, err := numeric.Mul(other, g)
		if err != nil {
			return nil, err
		}
		return sumIfScalar(childKind, prod), nil
	}
}

func childKindOf(child *graph.Node) numeric.Kind { return child.Value.Kind() }

// broadcastScalar fills a tensor of like's shape with the scalar s in
// every position — used to broadcast a reduce's upstream scalar
// gradient back across the elements it summed.
func broadcastScalar(like numeric.Tensor, s numeric.Scalar) (numeric.Tensor, error) {
	return numeric.Mul(like.Ones(), s)
}
