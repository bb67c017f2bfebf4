package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrDivisionByZero is returned when the scalar divisor of Div,
	// plain or wrapped, equals zero.
	ErrDivisionByZero = errors.New("tensor: division by zero")

	// ErrEmptyTensor is returned by Reduce on a tensor with no
	// elements; no identity element is assumed.
	ErrEmptyTensor = errors.New("tensor: empty tensor")

	// ErrRagged is returned when caller-supplied nested data is not
	// rectangular.
	ErrRagged = errors.New("tensor: ragged nested data")
)

// IndexError reports a 1-based coordinate outside [1, size] on a
// named axis.
type IndexError struct {
	Axis  string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("tensor: index %d out of range [1, %d] on axis %q", e.Index, e.Size, e.Axis)
}

// ShapeMismatchError reports operands of different shapes passed to a
// binary elementwise operation.
type ShapeMismatchError struct {
	Left  Shape
	Right Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("tensor: shape mismatch: %v vs %v", e.Left, e.Right)
}

// UnsupportedOperandError reports an operand kind that an operation
// does not accept, e.g. a tensor divisor in Div.
type UnsupportedOperandError struct {
	Op      string
	Operand string
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("tensor: unsupported operand %s for %q", e.Operand, e.Op)
}
