package graph_test

import (
	"testing"

	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

// addNode builds a minimal a+b node without going through internal/graph/ops,
// to exercise Node/Backward in isolation.
func addNode(a, b *graph.Node) *graph.Node {
	value, _ := numeric.Add(a.Value, b.Value)
	backward := func(outGrad numeric.Tensor) ([]numeric.Tensor, error) {
		return []numeric.Tensor{outGrad, outGrad}, nil
	}
	print := func(children []string) string { return children[0] + "+" + children[1] }
	return graph.NewOp("+", value, []*graph.Node{a, b}, backward, print)
}

func TestLeafGradientIsOne(t *testing.T) {
	a := graph.NewLeaf(numeric.Scalar(5), true)
	zero := graph.NewLeaf(numeric.Scalar(0), false)
	b := addNode(a, zero)

	if err := graph.Backward(b); err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if !a.HasGrad {
		t.Fatal("a.HasGrad should be true after backward")
	}
	if a.Grad.(numeric.Scalar) != 1 {
		t.Fatalf("a.Grad = %v, want 1", a.Grad)
	}
}

func TestLinearityOfAddition(t *testing.T) {
	a := graph.NewLeaf(numeric.Scalar(3), true)
	b := graph.NewLeaf(numeric.Scalar(4), true)
	y := addNode(a, b)

	if err := graph.Backward(y); err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if a.Grad.(numeric.Scalar) != 1 || b.Grad.(numeric.Scalar) != 1 {
		t.Fatalf("a.Grad=%v b.Grad=%v, want 1 and 1", a.Grad, b.Grad)
	}
}

func TestDiamondAccumulatesGradient(t *testing.T) {
	// y = (a+a) + (a+a): a appears four times via a shared subexpression.
	a := graph.NewLeaf(numeric.Scalar(2), true)
	left := addNode(a, a)
	right := addNode(a, a)
	y := addNode(left, right)

	if err := graph.Backward(y); err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if a.Grad.(numeric.Scalar) != 4 {
		t.Fatalf("a.Grad = %v, want 4 (accumulated across all four uses)", a.Grad)
	}
}

func TestNonRequiresGradLeafSkipped(t *testing.T) {
	a := graph.NewLeaf(numeric.Scalar(5), true)
	temp := graph.NewLeaf(numeric.Scalar(2), false)
	y := addNode(a, temp)

	if err := graph.Backward(y); err != nil {
		t.Fatalf("Backward: %v", err)
	}
	if temp.HasGrad {
		t.Fatal("a non-requires_grad leaf must not be marked HasGrad")
	}
	if a.Grad.(numeric.Scalar) != 1 {
		t.Fatalf("a.Grad = %v, want 1", a.Grad)
	}
}

func TestMissingGradientBeforeBackward(t *testing.T) {
	a := graph.NewLeaf(numeric.Scalar(5), true)
	if a.HasGrad {
		t.Fatal("a fresh leaf must not have HasGrad set")
	}
}

func TestPrintIdempotent(t *testing.T) {
	a := graph.NewLeaf(numeric.Scalar(5), true)
	b := graph.NewLeaf(numeric.Scalar(4), true)
	y := addNode(a, b)

	before := y.String()
	_ = y.String()
	after := y.String()
	if before != after {
		t.Fatalf("printing mutated output: %q vs %q", before, after)
	}
	if a.HasGrad || b.HasGrad {
		t.Fatal("printing must not alter gradient state")
	}
}
