// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff is the public handle API of the reverse-mode
// automatic-differentiation core: a small value type wrapping a
// computation-graph node, plus free functions for every differentiable
// operation. Every free function accepts an Operand on each side —
// either a Value or a bare numeric.Tensor/float32/float64/int — lifting
// the bare form to a non-grad temporary leaf before recording the
// operation, so `autodiff.Add(x, 2.0)` and
// `autodiff.Add(x, autodiff.Constant(numeric.Scalar(2)))` produce the
// same graph.
package autodiff

import (
	"fmt"

	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/internal/graph/ops"
	"github.com/born-ml/born/numeric"
)

// Value is a handle onto a node in the computation graph. Copying a
// Value shares the underlying node: the Go garbage collector provides
// the shared-ownership lifetime the node needs (every parent that lists
// a node as a child, plus any live handle, keeps it reachable).
type Value struct {
	node *graph.Node
}

// NewLeaf creates a user-owned leaf that participates in backward passes.
func NewLeaf(t numeric.Tensor) Value {
	return Value{node: graph.NewLeaf(t, true)}
}

// Constant lifts a raw tensor to a non-grad leaf: a temporary that is
// recorded in the graph (so it survives into backward) but never
// accumulates or exposes a gradient. This is the TempValue factory of
// the overload surface, exported for callers who want it explicitly.
func Constant(t numeric.Tensor) Value {
	return Value{node: graph.NewLeaf(t, false)}
}

// Operand is anything the overload surface accepts on either side of a
// binary op: a Value, a numeric.Tensor, or a plain float32/float64/int
// treated as a Scalar.
type Operand any

// toNode lifts an Operand to a graph node, materializing bare values as
// non-grad temporaries. Nesting a Value inside another wrapper is not
// possible through this type, so "nesting a handle inside a handle" is
// ruled out by construction.
func toNode(o Operand) (*graph.Node, error) {
	switch v := o.(type) {
	case Value:
		return v.node, nil
	case numeric.Tensor:
		return graph.NewLeaf(v, false), nil
	case float32:
		return graph.NewLeaf(numeric.Scalar(v), false), nil
	case float64:
		return graph.NewLeaf(numeric.Scalar(float32(v)), false), nil
	case int:
		return graph.NewLeaf(numeric.Scalar(float32(v)), false), nil
	default:
		return nil, fmt.Errorf("autodiff: unsupported operand type %T", o)
	}
}

// Add computes a + b.
func Add(a, b Operand) (Value, error) { return binary(a, b, ops.NewAdd) }

// Sub computes a - b.
func Sub(a, b Operand) (Value, error) { return binary(a, b, ops.NewSub) }

// Mul computes a * b (or the matrix-vector product, when the shapes call for it).
func Mul(a, b Operand) (Value, error) { return binary(a, b, ops.NewMul) }

// Div computes a / b.
func Div(a, b Operand) (Value, error) { return binary(a, b, ops.NewDiv) }

func binary(a, b Operand, ctor func(a, b *graph.Node) (*graph.Node, error)) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	bn, err := toNode(b)
	if err != nil {
		return Value{}, err
	}
	n, err := ctor(an, bn)
	if err != nil {
		return Value{}, err
	}
	return Value{node: n}, nil
}

// Neg computes -a.
func Neg(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewNeg(an)}, nil
}

// Relu computes max(a, 0) element-wise.
func Relu(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewRelu(an)}, nil
}

// Sigmoid computes 1/(1+e^-a) element-wise.
func Sigmoid(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewSigmoid(an)}, nil
}

// Sin computes sin(a) element-wise.
func Sin(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewSin(an)}, nil
}

// Cos computes cos(a) element-wise.
func Cos(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewCos(an)}, nil
}

// Pow computes a^exponent element-wise. exponent goes through the same
// Operand overload surface as every other operand — a bare numeric
// literal is lifted to a non-grad scalar leaf — but it must describe a
// Scalar and can never itself receive a gradient: requesting one fails
// with UnsupportedDerivative once Backward reaches this node.
func Pow(a, exponent Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	en, err := toNode(exponent)
	if err != nil {
		return Value{}, err
	}
	node, err := ops.NewPow(an, en)
	if err != nil {
		return Value{}, err
	}
	return Value{node: node}, nil
}

// Sum reduces a to a Scalar by summing every element.
func Sum(a Operand) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	return Value{node: ops.NewSum(an)}, nil
}

// Expand replicates a to length n: a Scalar expands to a Vec<n> by
// replication, a Vec<s> expands to a Vec<s*n> by tiling n copies back
// to back. Any other shape fails with UnsupportedDerivative, since the
// core defines no expand rule for matrices.
func Expand(a Operand, n int) (Value, error) {
	an, err := toNode(a)
	if err != nil {
		return Value{}, err
	}
	switch an.Value.(type) {
	case numeric.Scalar:
		node, err := ops.NewExpandScalar(an, n)
		if err != nil {
			return Value{}, err
		}
		return Value{node: node}, nil
	case numeric.Vector:
		node, err := ops.NewExpandVector(an, n)
		if err != nil {
			return Value{}, err
		}
		return Value{node: node}, nil
	default:
		return Value{}, graph.ErrUnsupportedDerivative("expand", "expand is only defined for Scalar and Vector operands")
	}
}

// Tensor returns the current forward value.
func (v Value) Tensor() numeric.Tensor { return v.node.Value }

// Grad returns the gradient accumulated by the last backward pass that
// reached this node. It fails with MissingGradient if no such pass has
// happened yet.
func (v Value) Grad() (numeric.Tensor, error) {
	if !v.node.HasGrad {
		return nil, graph.ErrMissingGradient("Grad")
	}
	return v.node.Grad, nil
}

// Backward seeds this node's gradient to the all-ones tensor of its
// shape and runs the backward traversal from it.
func (v Value) Backward() error {
	return graph.Backward(v.node)
}

// RequiresGrad reports whether this node (or any ancestor) requires grad.
func (v Value) RequiresGrad() bool { return v.node.RequiresGrad }

// Update applies one step of gradient descent in place: value ← value
// − grad·lr. It fails with MissingGradient if this node was not part of
// a completed backward pass.
func (v Value) Update(lr float32) error {
	if !v.node.HasGrad {
		return graph.ErrMissingGradient("Update")
	}
	step, err := numeric.Mul(v.node.Grad, numeric.Scalar(lr))
	if err != nil {
		return err
	}
	next, err := numeric.Sub(v.node.Value, step)
	if err != nil {
		return err
	}
	v.node.Value = next
	return nil
}

// String renders the expression tree rooted at this value, inlining
// each op's infix symbol where it produced a node, e.g. "relu(w*x+b)".
func (v Value) String() string { return v.node.String() }
