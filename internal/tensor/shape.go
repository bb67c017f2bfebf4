package tensor

import (
	"fmt"
	"strings"
)

// Axis names for rank-4 tensors, outermost first.
const (
	AxisLength = "length"
	AxisWidth  = "width"
	AxisDepth  = "depth"
	AxisDepth2 = "depth2"
)

// Dim is a single named axis of a shape.
type Dim struct {
	Name string
	Size int
}

// Shape is an ordered mapping from axis name to axis size,
// outermost axis first.
type Shape []Dim

// Shape4 builds the canonical rank-4 shape
// length → width → depth → depth2.
func Shape4(length, width, depth, depth2 int) Shape {
	return Shape{
		{AxisLength, length},
		{AxisWidth, width},
		{AxisDepth, depth},
		{AxisDepth2, depth2},
	}
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements a tensor of this
// shape holds: the product of all axis sizes.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d.Size
	}
	return n
}

// Sizes returns the axis sizes in order, without names.
func (s Shape) Sizes() []int {
	sizes := make([]int, len(s))
	for i, d := range s {
		sizes[i] = d.Size
	}
	return sizes
}

// Validate checks that every axis size is non-negative.
// A zero size is legal and yields an empty tensor.
func (s Shape) Validate() error {
	for i, d := range s {
		if d.Size < 0 {
			return fmt.Errorf("invalid size for axis %q at index %d: %d (must be >= 0)", d.Name, i, d.Size)
		}
	}
	return nil
}

// Equal reports whether two shapes have the same axes, in the same
// order, with the same sizes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as {length: 2, width: 3, ...}.
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", d.Name, d.Size)
	}
	b.WriteByte('}')
	return b.String()
}
