// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph implements the computation-graph core: nodes, the
// backward traversal driver, and the operation constructors in
// internal/graph/ops build on top of it.
package graph

import "github.com/born-ml/born/numeric"

// BackwardFn computes, from the gradient that has flowed into a node,
// the gradient contribution for each of that node's children, in the
// same order as Node.Children. A nil entry means "this child does not
// need a contribution" (its RequiresGrad is false, or the rule has
// nothing to send it). It returns an error only for UnsupportedDerivative
// — shape errors are caught earlier, at construction.
type BackwardFn func(outGrad numeric.Tensor) ([]numeric.Tensor, error)

// PrintFn renders a node given the already-rendered strings of its
// children, producing a pretty-print with each op's infix symbol
// inlined where it produced the node (e.g. "relu(w*x+b)").
type PrintFn func(children []string) string

// Node is one sub-expression result in the computation graph. Children
// are held by ordinary Go pointers — the garbage collector provides the
// shared-ownership lifetime a node needs, since the graph is acyclic by
// construction.
type Node struct {
	Value        numeric.Tensor
	Grad         numeric.Tensor
	RequiresGrad bool
	HasGrad      bool
	Op           string
	Children     []*Node

	backward BackwardFn
	print    PrintFn
}

// NewLeaf creates a leaf node (no children). requiresGrad is true for
// user-created leaves and false for temporaries materialized from raw
// values injected into an operation.
func NewLeaf(value numeric.Tensor, requiresGrad bool) *Node {
	return &Node{
		Value:        value,
		Grad:         value.Zero(),
		RequiresGrad: requiresGrad,
		Op:           "value",
		backward:     func(numeric.Tensor) ([]numeric.Tensor, error) { return nil, nil },
		print:        func([]string) string { return value.String() },
	}
}

// NewOp creates a node produced by an operation: it allocates the node,
// wires the given children, and records the operation's forward value,
// backward closure, and pretty-printer. RequiresGrad is true iff at
// least one child requires grad.
func NewOp(op string, value numeric.Tensor, children []*Node, backward BackwardFn, print PrintFn) *Node {
	requires := false
	for _, c := range children {
		if c.RequiresGrad {
			requires = true
			break
		}
	}
	return &Node{
		Value:        value,
		Grad:         value.Zero(),
		RequiresGrad: requires,
		Op:           op,
		Children:     children,
		backward:     backward,
		print:        print,
	}
}

// String renders the expression tree rooted at n, inlining each child's
// op tag where that op produced the node.
func (n *Node) String() string {
	childStrings := make([]string, len(n.Children))
	for i, c := range n.Children {
		childStrings[i] = c.String()
	}
	return n.print(childStrings)
}
