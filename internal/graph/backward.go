// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import "github.com/born-ml/born/numeric"

// Backward seeds root's gradient to the all-ones tensor of its shape
// and runs the backward traversal.
//
// Rather than walking the graph as a tree and overwriting each child's
// gradient in place — which silently drops contributions for any node
// reused as input to more than one parent — this topologically orders
// the reachable nodes once, zeroes every gradient, seeds the root, then
// visits in reverse topological order accumulating into each child.
// A node reused as input to more than one parent receives the sum of
// every parent's contribution instead of only the last one written.
func Backward(root *Node) error {
	order := topoOrder(root)
	for _, n := range order {
		n.Grad = n.Value.Zero()
		n.HasGrad = false
	}

	root.Grad = root.Value.Ones()
	root.HasGrad = true

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if !n.HasGrad || !n.RequiresGrad {
			continue
		}
		contributions, err := n.backward(n.Grad)
		if err != nil {
			return err
		}
		for j, child := range n.Children {
			if j >= len(contributions) || contributions[j] == nil {
				continue
			}
			if !child.RequiresGrad {
				continue
			}
			if child.HasGrad {
				sum, addErr := numeric.Add(child.Grad, contributions[j])
				if addErr != nil {
					return ShapeMismatchf(n.Op, addErr)
				}
				child.Grad = sum
			} else {
				child.Grad = contributions[j]
				child.HasGrad = true
			}
		}
	}
	return nil
}

// topoOrder returns the nodes reachable from root in dependency order:
// every child appears before any node that lists it as a child.
func topoOrder(root *Node) []*Node {
	visited := make(map[*Node]bool)
	var order []*Node

	var visit func(n *Node)
	visit = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		for _, c := range n.Children {
			visit(c)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}
