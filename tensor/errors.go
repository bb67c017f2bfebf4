// Copyright 2026 The Tetra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tensorlab/tetra/internal/tensor"
)

// Sentinel errors.
var (
	// ErrDivisionByZero is returned when the scalar divisor of Div,
	// plain or wrapped, equals zero.
	ErrDivisionByZero = tensor.ErrDivisionByZero

	// ErrEmptyTensor is returned by Reduce on a tensor with no
	// elements.
	ErrEmptyTensor = tensor.ErrEmptyTensor

	// ErrRagged is returned when caller-supplied nested data is not
	// rectangular.
	ErrRagged = tensor.ErrRagged
)

// IndexError reports a 1-based coordinate outside [1, size] on a
// named axis.
type IndexError = tensor.IndexError

// ShapeMismatchError reports operands of different shapes passed to a
// binary elementwise operation.
type ShapeMismatchError = tensor.ShapeMismatchError

// UnsupportedOperandError reports an operand kind an operation does
// not accept.
type UnsupportedOperandError = tensor.UnsupportedOperandError
