package tensor

import "gonum.org/v1/gonum/floats"

// Binary elementwise operators require identical shapes and never
// mutate their operands: each deep-copies the left operand and
// mutates the copy row by row.

// Add returns the elementwise sum t + other.
func (t *Tensor4) Add(other *Tensor4) (*Tensor4, error) {
	if !t.Shape().Equal(other.Shape()) {
		return nil, &ShapeMismatchError{Left: t.Shape(), Right: other.Shape()}
	}
	out := t.Copy()
	for l, plane := range out.data {
		for w, rows := range plane {
			for d, row := range rows {
				floats.Add(row, other.data[l][w][d])
			}
		}
	}
	return out, nil
}

// Sub returns the elementwise difference t - other, defined as
// t + (-other).
func (t *Tensor4) Sub(other *Tensor4) (*Tensor4, error) {
	if !t.Shape().Equal(other.Shape()) {
		return nil, &ShapeMismatchError{Left: t.Shape(), Right: other.Shape()}
	}
	return t.Add(other.Neg())
}

// Neg returns the elementwise negation.
func (t *Tensor4) Neg() *Tensor4 {
	return t.Map(func(v float64) float64 { return -v })
}

// scale returns a copy of t with every row scaled by k.
func (t *Tensor4) scale(k float64) *Tensor4 {
	out := t.Copy()
	for _, plane := range out.data {
		for _, rows := range plane {
			for _, row := range rows {
				floats.Scale(k, row)
			}
		}
	}
	return out
}

// Mul returns the product of t and op. The operand is polymorphic:
// a Number scales every element, a *Tensor4 of identical shape
// multiplies elementwise, and a *Scalar scales by its wrapped value.
func (t *Tensor4) Mul(op Operand) (*Tensor4, error) {
	switch rhs := op.(type) {
	case Number:
		return t.scale(float64(rhs)), nil
	case *Tensor4:
		if !t.Shape().Equal(rhs.Shape()) {
			return nil, &ShapeMismatchError{Left: t.Shape(), Right: rhs.Shape()}
		}
		out := t.Copy()
		for l, plane := range out.data {
			for w, rows := range plane {
				for d, row := range rows {
					floats.Mul(row, rhs.data[l][w][d])
				}
			}
		}
		return out, nil
	case *Scalar:
		return t.scale(rhs.Value()), nil
	default:
		return nil, &UnsupportedOperandError{Op: "*", Operand: operandKind(op)}
	}
}

// Div returns t divided by a scalar operand, computed as
// t * (1/divisor). Only Number and *Scalar divisors are supported;
// a zero divisor fails with ErrDivisionByZero, and tensor-by-tensor
// division is an UnsupportedOperandError.
func (t *Tensor4) Div(op Operand) (*Tensor4, error) {
	var divisor float64
	switch rhs := op.(type) {
	case Number:
		divisor = float64(rhs)
	case *Scalar:
		divisor = rhs.Value()
	default:
		return nil, &UnsupportedOperandError{Op: "/", Operand: operandKind(op)}
	}
	if divisor == 0 {
		return nil, ErrDivisionByZero
	}
	return t.Mul(Number(1 / divisor))
}
