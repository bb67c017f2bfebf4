// Copyright 2026 The Tetra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API for the Tetra rank-4 tensor core.
package tensor

import (
	"github.com/tensorlab/tetra/internal/tensor"
)

// Type aliases for public API

// Tensor4 is a dense rank-4 tensor with 1-based public indexing on
// the axes length → width → depth → depth2.
type Tensor4 = tensor.Tensor4

// Dim is a single named axis of a shape.
type Dim = tensor.Dim

// Shape is an ordered axis-name → size mapping, outermost axis first.
type Shape = tensor.Shape

// Tensor is the capability set shared by every tensor rank: shape
// introspection plus flattening in nesting order.
type Tensor = tensor.Tensor

// Dense is the rank-generic generation result; convert it to a fixed
// rank with its Tensor4 method.
type Dense = tensor.Dense

// Generator produces the value for the cell at a 0-based flat index.
type Generator = tensor.Generator

// Operand is the closed set of right-hand operand kinds for Mul and
// Div: Number, *Tensor4, or *Scalar.
type Operand = tensor.Operand

// Number is a plain scalar operand.
type Number = tensor.Number

// Scalar is a single-value numeric wrapper usable as an operand.
type Scalar = tensor.Scalar

// Axis names for rank-4 tensors, outermost first.
const (
	AxisLength = tensor.AxisLength
	AxisWidth  = tensor.AxisWidth
	AxisDepth  = tensor.AxisDepth
	AxisDepth2 = tensor.AxisDepth2
)

// Creation functions

// New wraps caller-supplied nested data after validating that it is
// rectangular. New takes exclusive ownership of data; use FromNested
// to copy instead.
//
// Example:
//
//	t, err := tensor.New([][][][]float64{{{{1, 2}, {3, 4}}}})
func New(data [][][][]float64) (*Tensor4, error) {
	return tensor.New(data)
}

// FromNested deep-copies caller-supplied nested data into a fresh
// tensor.
func FromNested(data [][][][]float64) (*Tensor4, error) {
	return tensor.FromNested(data)
}

// Generate4 builds a length×width×depth×depth2 tensor, invoking gen
// once per cell with the 0-based flat index in nesting order
// (outermost axis slowest).
//
// Example:
//
//	t, err := tensor.Generate4(2, 3, 4, 5, func(i int) float64 {
//	    return float64(i)
//	})
func Generate4(length, width, depth, depth2 int, gen Generator) (*Tensor4, error) {
	return tensor.Generate4(length, width, depth, depth2, gen)
}

// Generate allocates a rank-generic Dense container of the given
// shape, filled by gen in flat order. Most users should use Generate4
// instead.
func Generate(shape Shape, gen Generator) (*Dense, error) {
	return tensor.Generate(shape, gen)
}

// Zeros4 creates a zero-filled length×width×depth×depth2 tensor.
func Zeros4(length, width, depth, depth2 int) *Tensor4 {
	return tensor.Zeros4(length, width, depth, depth2)
}

// Full4 creates a length×width×depth×depth2 tensor filled with v.
func Full4(length, width, depth, depth2 int, v float64) *Tensor4 {
	return tensor.Full4(length, width, depth, depth2, v)
}

// NewScalar wraps v as an arithmetic operand.
func NewScalar(v float64) *Scalar {
	return tensor.NewScalar(v)
}

// Shape4 builds the canonical rank-4 shape
// length → width → depth → depth2.
func Shape4(length, width, depth, depth2 int) Shape {
	return tensor.Shape4(length, width, depth, depth2)
}

// Traversal functions

// Reduce flattens t in nesting order and folds f left-to-right over
// the values. Fails with ErrEmptyTensor when t has no elements.
func Reduce(t Tensor, f func(acc, v float64) float64) (float64, error) {
	return tensor.Reduce(t, f)
}

// Any reports whether at least one element of t satisfies pred.
func Any(t Tensor, pred func(v float64) bool) bool {
	return tensor.Any(t, pred)
}

// Every reports whether all elements of t satisfy pred.
func Every(t Tensor, pred func(v float64) bool) bool {
	return tensor.Every(t, pred)
}

// Sum returns the arithmetic sum of all elements of t.
func Sum(t Tensor) float64 {
	return tensor.Sum(t)
}
