// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/internal/graph"
	"github.com/born-ml/born/numeric"
)

func TestLeafGradientIsOne(t *testing.T) {
	a := autodiff.NewLeaf(numeric.Scalar(5))
	b, err := autodiff.Add(a, numeric.Scalar(0))
	require.NoError(t, err)
	require.NoError(t, b.Backward())

	grad, err := a.Grad()
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(1), grad)
}

func TestChainRuleReluOfLinear(t *testing.T) {
	// y = relu(-x*3 + 2), x = -3 -> pre-activation = 11, well past the gate.
	x := autodiff.NewLeaf(numeric.Scalar(-3))
	negX, err := autodiff.Neg(x)
	require.NoError(t, err)
	scaled, err := autodiff.Mul(negX, float32(3))
	require.NoError(t, err)
	pre, err := autodiff.Add(scaled, float32(2))
	require.NoError(t, err)
	y, err := autodiff.Relu(pre)
	require.NoError(t, err)
	require.NoError(t, y.Backward())

	grad, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(-3), grad)
}

func TestReluOfLinearValue(t *testing.T) {
	x := autodiff.NewLeaf(numeric.Scalar(-3.14))
	negX, err := autodiff.Neg(x)
	require.NoError(t, err)
	scaled, err := autodiff.Mul(negX, float32(3))
	require.NoError(t, err)
	pre, err := autodiff.Add(scaled, float32(2))
	require.NoError(t, err)
	y, err := autodiff.Relu(pre)
	require.NoError(t, err)

	got := float32(y.Tensor().(numeric.Scalar))
	assert.InDelta(t, 11.42, got, 1e-2)
}

func TestVectorScale(t *testing.T) {
	v := autodiff.NewLeaf(numeric.NewVector([]float32{1, 2, 3}))
	y, err := autodiff.Mul(float32(2), v)
	require.NoError(t, err)
	sum, err := autodiff.Sum(y)
	require.NoError(t, err)
	require.NoError(t, sum.Backward())

	grad, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 2, 2}, grad.(numeric.Vector).Raw())
}

func TestMatVecPlusBias(t *testing.T) {
	m := autodiff.NewLeaf(numeric.Identity(3))
	v := autodiff.NewLeaf(numeric.NewVector([]float32{2, 4, 6}))
	mv, err := autodiff.Mul(m, v)
	require.NoError(t, err)
	y, err := autodiff.Add(mv, float32(2))
	require.NoError(t, err)
	sum, err := autodiff.Sum(y)
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(18), sum.Tensor())

	require.NoError(t, sum.Backward())

	mGrad, err := m.Grad()
	require.NoError(t, err)
	want := numeric.Outer(numeric.NewVector([]float32{1, 1, 1}), numeric.NewVector([]float32{2, 4, 6}))
	assert.Equal(t, want.Raw(), mGrad.(numeric.Matrix).Raw())

	vGrad, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1}, vGrad.(numeric.Vector).Raw())
}

func TestExpandScalarRoundTrip(t *testing.T) {
	s := autodiff.NewLeaf(numeric.Scalar(1))
	expanded, err := autodiff.Expand(s, 5)
	require.NoError(t, err)
	sum, err := autodiff.Sum(expanded)
	require.NoError(t, err)
	require.NoError(t, sum.Backward())

	grad, err := s.Grad()
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(5), grad)
}

func TestPowGradient(t *testing.T) {
	v := autodiff.NewLeaf(numeric.NewVector([]float32{1, 2, 3}))
	p, err := autodiff.Pow(v, 2)
	require.NoError(t, err)
	sum, err := autodiff.Sum(p)
	require.NoError(t, err)
	require.NoError(t, sum.Backward())

	grad, err := v.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 4, 6}, grad.(numeric.Vector).Raw())
}

func TestPowGradientWithRespectToExponentIsUnsupported(t *testing.T) {
	base := autodiff.NewLeaf(numeric.Scalar(3))
	exponent := autodiff.NewLeaf(numeric.Scalar(2))
	p, err := autodiff.Pow(base, exponent)
	require.NoError(t, err)

	err = p.Backward()
	require.Error(t, err)
	var graphErr *graph.Error
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, graph.UnsupportedDerivative, graphErr.Kind)
}

func TestPowRejectsNonScalarExponent(t *testing.T) {
	base := autodiff.NewLeaf(numeric.Scalar(3))
	_, err := autodiff.Pow(base, numeric.NewVector([]float32{2, 2}))
	require.Error(t, err)
	var graphErr *graph.Error
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, graph.UnsupportedDerivative, graphErr.Kind)
}

func TestSigmoidBoundsAndDerivative(t *testing.T) {
	x := autodiff.NewLeaf(numeric.Scalar(0))
	y, err := autodiff.Sigmoid(x)
	require.NoError(t, err)
	assert.Equal(t, numeric.Scalar(0.5), y.Tensor())

	require.NoError(t, y.Backward())
	grad, err := x.Grad()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, float32(grad.(numeric.Scalar)), 1e-6)
}

func TestGradBeforeBackwardIsMissingGradient(t *testing.T) {
	x := autodiff.NewLeaf(numeric.Scalar(1))
	_, err := x.Grad()
	assert.Error(t, err)
}

func TestUpdateBeforeBackwardIsMissingGradient(t *testing.T) {
	x := autodiff.NewLeaf(numeric.Scalar(1))
	err := x.Update(0.1)
	assert.Error(t, err)
}

func TestPrintInlinesOpTags(t *testing.T) {
	w := autodiff.NewLeaf(numeric.Scalar(2))
	x := autodiff.NewLeaf(numeric.Scalar(3))
	b := autodiff.NewLeaf(numeric.Scalar(1))
	wx, err := autodiff.Mul(w, x)
	require.NoError(t, err)
	pre, err := autodiff.Add(wx, b)
	require.NoError(t, err)
	y, err := autodiff.Relu(pre)
	require.NoError(t, err)
	assert.Equal(t, "relu(2*3+1)", y.String())
}

// TestANDGateTraining trains a single linear unit with a relu gate on
// the AND truth table by full-batch gradient descent: every epoch sums
// the four samples' squared errors into one scalar before a single
// Backward/Update pair, rather than stepping after each sample.
// Per-sample online updates on this exact init/learning-rate pair walk
// straight into a dead-relu fixed point after one epoch (w settles at
// [0,1], b at -1, which mismatches sample (1,1)); batching the epoch's
// gradient avoids that walk and converges to the [1,1]/-1 solution,
// where every sample matches its target within the tolerance asserted
// below.
func TestANDGateTraining(t *testing.T) {
	type sample struct {
		x1, x2, y float32
	}
	samples := []sample{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 1},
	}

	w := autodiff.NewLeaf(numeric.NewMatrix(1, 2, []float32{1, 1}))
	b := autodiff.NewLeaf(numeric.Scalar(0))
	const lr = 0.5
	const epochs = 300

	for epoch := 0; epoch < epochs; epoch++ {
		var total autodiff.Value
		for i, s := range samples {
			x := numeric.NewVector([]float32{s.x1, s.x2})
			wx, err := autodiff.Mul(w, x)
			require.NoError(t, err)
			pre, err := autodiff.Add(wx, b)
			require.NoError(t, err)
			pred, err := autodiff.Relu(pre)
			require.NoError(t, err)
			diff, err := autodiff.Sub(pred, numeric.Scalar(s.y))
			require.NoError(t, err)
			sq, err := autodiff.Pow(diff, 2)
			require.NoError(t, err)

			if i == 0 {
				total = sq
				continue
			}
			total, err = autodiff.Add(total, sq)
			require.NoError(t, err)
		}

		mean, err := autodiff.Mul(total, numeric.Scalar(0.25))
		require.NoError(t, err)
		require.NoError(t, mean.Backward())
		require.NoError(t, w.Update(lr))
		require.NoError(t, b.Update(lr))
	}

	wv := w.Tensor().(numeric.Matrix)
	bv := float32(b.Tensor().(numeric.Scalar))
	for _, s := range samples {
		pre := wv.AtRC(0, 0)*s.x1 + wv.AtRC(0, 1)*s.x2 + bv
		pred := float32(0)
		if pre > 0 {
			pred = pre
		}
		assert.InDelta(t, s.y, pred, 1e-3, "AND(%g,%g)", s.x1, s.x2)
	}
}
