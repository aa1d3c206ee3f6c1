// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric is the dense linear-algebra façade the autodiff core
// builds on: fixed-size scalars, vectors, and row-major matrices of
// float32, plus the element-wise arithmetic, matrix-vector product,
// transpose, reducing sum, element-wise power, and element-wise map
// the core's backward rules are expressed in terms of.
//
// Shapes are fixed once a value is constructed and are carried as data
// (an int field or two), not as a Go type parameter — Go has no const
// generics, so NewVector(data) takes its length from data and
// NewMatrix(r, c, data) checks the element count at construction
// instead of at compile time.
package numeric
