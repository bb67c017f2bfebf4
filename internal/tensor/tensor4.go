package tensor

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"slices"
)

// Tensor4 is a dense rank-4 tensor over nested storage, outermost to
// innermost: length → width → depth → depth2. Axis sizes are always
// derived from the storage extents; the empty tensor (any axis zero)
// is legal.
//
// Public indexing is 1-based and inclusive on [1, size]; storage is
// 0-based. SetAt is the only mutating operation — every arithmetic
// operator deep-copies its left operand and mutates the copy, so
// operands are never touched. Concurrent SetAt calls on one instance
// need external synchronization.
type Tensor4 struct {
	data [][][][]float64
}

// New wraps caller-supplied nested data after validating that it is
// rectangular. New takes exclusive ownership of data: the caller must
// not retain a mutable alias, since SetAt writes through to it. Use
// FromNested to copy instead.
func New(data [][][][]float64) (*Tensor4, error) {
	if err := validateRect(data); err != nil {
		return nil, err
	}
	return &Tensor4{data: data}, nil
}

// FromNested deep-copies caller-supplied nested data into a fresh
// tensor, leaving the caller's slices unaliased.
func FromNested(data [][][][]float64) (*Tensor4, error) {
	if err := validateRect(data); err != nil {
		return nil, err
	}
	return &Tensor4{data: cloneNested(data)}, nil
}

// Generate4 builds a length×width×depth×depth2 tensor by requesting a
// rank-4 container from Generate and converting it. gen receives the
// 0-based flat cell index in nesting order.
func Generate4(length, width, depth, depth2 int, gen Generator) (*Tensor4, error) {
	d, err := Generate(Shape4(length, width, depth, depth2), gen)
	if err != nil {
		return nil, err
	}
	return d.Tensor4()
}

// validateRect checks that every sequence at a given nesting level
// has the same extent as its siblings.
func validateRect(data [][][][]float64) error {
	if len(data) == 0 {
		return nil
	}
	width := len(data[0])
	for l, plane := range data {
		if len(plane) != width {
			return fmt.Errorf("%w: width %d at length %d, want %d", ErrRagged, len(plane), l, width)
		}
	}
	if width == 0 {
		return nil
	}
	depth := len(data[0][0])
	for l, plane := range data {
		for w, rows := range plane {
			if len(rows) != depth {
				return fmt.Errorf("%w: depth %d at (%d, %d), want %d", ErrRagged, len(rows), l, w, depth)
			}
		}
	}
	if depth == 0 {
		return nil
	}
	depth2 := len(data[0][0][0])
	for l, plane := range data {
		for w, rows := range plane {
			for d, row := range rows {
				if len(row) != depth2 {
					return fmt.Errorf("%w: depth2 %d at (%d, %d, %d), want %d", ErrRagged, len(row), l, w, d, depth2)
				}
			}
		}
	}
	return nil
}

func cloneNested(data [][][][]float64) [][][][]float64 {
	clone := make([][][][]float64, len(data))
	for l, plane := range data {
		clone[l] = make([][][]float64, len(plane))
		for w, rows := range plane {
			clone[l][w] = make([][]float64, len(rows))
			for d, row := range rows {
				clone[l][w][d] = slices.Clone(row)
			}
		}
	}
	return clone
}

// Length returns the size of the outermost axis.
func (t *Tensor4) Length() int {
	return len(t.data)
}

// Width returns the size of the second axis.
func (t *Tensor4) Width() int {
	if len(t.data) == 0 {
		return 0
	}
	return len(t.data[0])
}

// Depth returns the size of the third axis.
func (t *Tensor4) Depth() int {
	if t.Width() == 0 {
		return 0
	}
	return len(t.data[0][0])
}

// Depth2 returns the size of the innermost axis.
func (t *Tensor4) Depth2() int {
	if t.Depth() == 0 {
		return 0
	}
	return len(t.data[0][0][0])
}

// Shape returns the ordered axis-name → size mapping.
func (t *Tensor4) Shape() Shape {
	return Shape4(t.Length(), t.Width(), t.Depth(), t.Depth2())
}

// NumElements returns length·width·depth·depth2.
func (t *Tensor4) NumElements() int {
	return t.Length() * t.Width() * t.Depth() * t.Depth2()
}

func (t *Tensor4) checkIndex(length, width, depth, depth2 int) error {
	for _, c := range []struct {
		axis  string
		index int
		size  int
	}{
		{AxisLength, length, t.Length()},
		{AxisWidth, width, t.Width()},
		{AxisDepth, depth, t.Depth()},
		{AxisDepth2, depth2, t.Depth2()},
	} {
		if c.index < 1 || c.index > c.size {
			return &IndexError{Axis: c.axis, Index: c.index, Size: c.size}
		}
	}
	return nil
}

// At returns the value at the given 1-based coordinates. Each
// coordinate must lie in [1, axis size]; otherwise an IndexError is
// returned.
func (t *Tensor4) At(length, width, depth, depth2 int) (float64, error) {
	if err := t.checkIndex(length, width, depth, depth2); err != nil {
		return 0, err
	}
	return t.data[length-1][width-1][depth-1][depth2-1], nil
}

// SetAt stores v at the given 1-based coordinates, with the same
// range contract as At. This is the only mutating operation.
func (t *Tensor4) SetAt(length, width, depth, depth2 int, v float64) error {
	if err := t.checkIndex(length, width, depth, depth2); err != nil {
		return err
	}
	t.data[length-1][width-1][depth-1][depth2-1] = v
	return nil
}

// Data returns an independent deep copy of the nested storage, never
// the live backing slices.
func (t *Tensor4) Data() [][][][]float64 {
	return cloneNested(t.data)
}

// Copy returns a fully independent deep duplicate of the tensor.
func (t *Tensor4) Copy() *Tensor4 {
	return &Tensor4{data: cloneNested(t.data)}
}

// Equal reports structural equality: same shape, then elementwise
// value comparison in nesting order.
func (t *Tensor4) Equal(other *Tensor4) bool {
	if !t.Shape().Equal(other.Shape()) {
		return false
	}
	for l, plane := range t.data {
		for w, rows := range plane {
			for d, row := range rows {
				if !slices.Equal(row, other.data[l][w][d]) {
					return false
				}
			}
		}
	}
	return true
}

// Hash returns an FNV-1a digest of the shape and the value bits in
// nesting order. Equal tensors hash equal; the converse is not
// guaranteed, so Hash must not substitute for Equal.
func (t *Tensor4) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, d := range t.Shape() {
		binary.LittleEndian.PutUint64(buf[:], uint64(d.Size))
		h.Write(buf[:])
	}
	for _, plane := range t.data {
		for _, rows := range plane {
			for _, row := range rows {
				for _, v := range row {
					binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
					h.Write(buf[:])
				}
			}
		}
	}
	return h.Sum64()
}

// String returns a debug rendering of the tensor; the format is not
// stable.
func (t *Tensor4) String() string {
	return fmt.Sprintf("Tensor4%v %v", t.Shape(), t.data)
}
