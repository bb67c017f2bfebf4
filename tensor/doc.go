// Copyright 2026 The Tetra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense rank-4 numeric tensor for the Tetra
// linear-algebra library.
//
// # Overview
//
// Tensor4 stores rectangular float64 data addressed by four 1-based
// coordinates on the axes length → width → depth → depth2 (outermost
// first). On top of indexed access it provides:
//   - Elementwise arithmetic (Add, Sub, Neg, Mul, Div)
//   - Functional traversal (Map, Reduce, Any, Every, ToList)
//   - Generation from an index-driven function (Generate4)
//   - Structural equality and deep copying
//
// # Basic Usage
//
//	// 2×3×4×5 tensor whose flattened values are 0..119.
//	a, err := tensor.Generate4(2, 3, 4, 5, func(i int) float64 {
//	    return float64(i)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	b := a.Map(func(v float64) float64 { return v * v })
//	sum, err := a.Add(b)          // new tensor, operands untouched
//	scaled, err := a.Mul(tensor.Number(2))
//	half, err := a.Div(tensor.NewScalar(2))
//
// # Indexing
//
// Public indexing is 1-based and inclusive: every coordinate of At and
// SetAt must lie in [1, axis size]. Out-of-range coordinates return an
// *IndexError rather than panicking.
//
//	v, err := a.At(1, 1, 1, 1)   // first element
//	err = a.SetAt(2, 3, 4, 5, 9) // last element of the 2×3×4×5 tensor
//
// # Operands
//
// Mul and Div take a closed Operand variant: a plain Number, another
// *Tensor4 (Mul only), or a wrapped *Scalar. Any other kind fails with
// *UnsupportedOperandError; a zero divisor fails with
// ErrDivisionByZero.
//
// # Purity and concurrency
//
// All operators are pure with respect to their inputs: they deep-copy
// the left operand and mutate only the copy. SetAt is the only
// mutating operation, so concurrent mutation of a single tensor needs
// external synchronization; distinct tensors are safe to use from
// multiple goroutines.
package tensor
