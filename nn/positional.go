// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn is a thin convenience layer of compositions over the core
// autodiff ops: it wires no new node kinds of its own, it just builds
// the same expressions a caller could build by hand.
package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/born/autodiff"
	"github.com/born-ml/born/numeric"
)

// PositionalEncoding computes sin(expand<2n>(v) * scales + offsets),
// the classic Fourier-feature positional encoding used to lift a low-
// dimensional coordinate (a Scalar or a small Vector) into a
// higher-frequency representation before it enters a network. For each
// frequency band i in [0, n), the encoding contributes a sin and a
// cos component at frequency 2^i, so the output has 2*n times the
// input's element count.
//
// Panics if n is negative.
func PositionalEncoding(v autodiff.Value, n int) (autodiff.Value, error) {
	if n < 0 {
		panic(fmt.Sprintf("nn: PositionalEncoding: n must be non-negative, got %d", n))
	}
	if n == 0 {
		return v, nil
	}

	inputSize := v.Tensor().Len()
	outputSize := 2 * n * inputSize

	scales := make([]float32, outputSize)
	offsets := make([]float32, outputSize)
	for i := 0; i < n; i++ {
		freq := float32(math.Pow(2, float64(i)))
		base := 2 * i * inputSize
		for j := base; j < base+inputSize; j++ {
			scales[j] = freq
			scales[j+inputSize] = freq
			offsets[j] = 0
			offsets[j+inputSize] = float32(math.Pi / 2)
		}
	}

	expanded, err := autodiff.Expand(v, 2*n)
	if err != nil {
		return autodiff.Value{}, err
	}
	scaled, err := autodiff.Mul(expanded, numeric.NewVector(scales))
	if err != nil {
		return autodiff.Value{}, err
	}
	shifted, err := autodiff.Add(scaled, numeric.NewVector(offsets))
	if err != nil {
		return autodiff.Value{}, err
	}
	return autodiff.Sin(shifted)
}
