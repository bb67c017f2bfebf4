package tensor

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Tensor is the capability set shared by every rank: shape
// introspection plus flattening in nesting order. The package-level
// traversal helpers (Reduce, Any, Every, Sum) accept any Tensor, so
// each rank implements only storage and conversion.
type Tensor interface {
	// Shape returns the ordered axis-name → size mapping.
	Shape() Shape
	// NumElements returns the product of all axis sizes.
	NumElements() int
	// ToList returns the values flattened in nesting order,
	// outermost axis varying slowest. The slice is a copy.
	ToList() []float64
}

// Generator produces the value for the cell at the given flat index.
// Indices start at 0 and increment once per cell, visiting cells in
// nesting order (outermost axis slowest).
type Generator func(index int) float64

// Dense is the rank-generic generation result: a flat buffer paired
// with a shape. It exists to be converted into a fixed-rank tensor.
type Dense struct {
	shape Shape
	data  []float64
}

// Generate allocates a Dense of the given shape and fills it with
// gen, invoked once per cell in flat order.
func Generate(shape Shape, gen Generator) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = gen(i)
	}
	return &Dense{shape: shape.Clone(), data: data}, nil
}

// Shape returns the container's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return len(d.data)
}

// At returns the value at the given 0-based flat index.
func (d *Dense) At(i int) float64 {
	return d.data[i]
}

// ToList returns a copy of the flat buffer.
func (d *Dense) ToList() []float64 {
	return slices.Clone(d.data)
}

// Tensor4 converts a rank-4 generation result into a Tensor4,
// rebuilding the nested storage in nesting order.
func (d *Dense) Tensor4() (*Tensor4, error) {
	if d.shape.Rank() != 4 {
		return nil, fmt.Errorf("tensor: cannot convert rank-%d container to Tensor4", d.shape.Rank())
	}
	sizes := d.shape.Sizes()
	length, width, depth, depth2 := sizes[0], sizes[1], sizes[2], sizes[3]

	i := 0
	data := make([][][][]float64, length)
	for l := range data {
		data[l] = make([][][]float64, width)
		for w := range data[l] {
			data[l][w] = make([][]float64, depth)
			for dd := range data[l][w] {
				row := make([]float64, depth2)
				copy(row, d.data[i:i+depth2])
				i += depth2
				data[l][w][dd] = row
			}
		}
	}
	return &Tensor4{data: data}, nil
}

// Reduce flattens t in nesting order and folds f left-to-right over
// the values. Fails with ErrEmptyTensor when t has no elements.
func Reduce(t Tensor, f func(acc, v float64) float64) (float64, error) {
	values := t.ToList()
	if len(values) == 0 {
		return 0, ErrEmptyTensor
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = f(acc, v)
	}
	return acc, nil
}

// Any reports whether at least one element of t satisfies pred.
// False for an empty tensor.
func Any(t Tensor, pred func(v float64) bool) bool {
	for _, v := range t.ToList() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether all elements of t satisfy pred.
// Vacuously true for an empty tensor.
func Every(t Tensor, pred func(v float64) bool) bool {
	for _, v := range t.ToList() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Sum returns the arithmetic sum of all elements of t.
// Zero for an empty tensor.
func Sum(t Tensor) float64 {
	return floats.Sum(t.ToList())
}
