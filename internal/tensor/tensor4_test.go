package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq builds a l×w×d×d2 tensor whose flattened values are 0..n-1.
func seq(t *testing.T, l, w, d, d2 int) *Tensor4 {
	t.Helper()
	out, err := Generate4(l, w, d, d2, func(i int) float64 { return float64(i) })
	require.NoError(t, err)
	return out
}

func TestNewValidatesRectangularity(t *testing.T) {
	_, err := New([][][][]float64{
		{{{1, 2}, {3, 4}}},
		{{{5, 6}}}, // missing a depth row
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRagged)

	_, err = New([][][][]float64{
		{{{1, 2}, {3}}}, // short depth2 row
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRagged)
}

func TestNewTakesOwnership(t *testing.T) {
	data := [][][][]float64{{{{1, 2}}}}
	tns, err := New(data)
	require.NoError(t, err)

	require.NoError(t, tns.SetAt(1, 1, 1, 1, 9))
	assert.Equal(t, 9.0, data[0][0][0][0], "New wraps the caller's storage")
}

func TestFromNestedCopies(t *testing.T) {
	data := [][][][]float64{{{{1, 2}}}}
	tns, err := FromNested(data)
	require.NoError(t, err)

	data[0][0][0][0] = 42
	v, err := tns.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromNested must not alias the caller's storage")
}

func TestShapeConsistency(t *testing.T) {
	tns := seq(t, 2, 3, 4, 5)

	assert.Equal(t, 2, tns.Length())
	assert.Equal(t, 3, tns.Width())
	assert.Equal(t, 4, tns.Depth())
	assert.Equal(t, 5, tns.Depth2())
	assert.Equal(t, 120, tns.NumElements())
	assert.Equal(t, tns.Length()*tns.Width()*tns.Depth()*tns.Depth2(), tns.NumElements())
	assert.True(t, tns.Shape().Equal(Shape4(2, 3, 4, 5)))
}

func TestEmptyTensorShape(t *testing.T) {
	tns := Zeros4(0, 3, 4, 5)

	assert.Equal(t, 0, tns.Length())
	assert.Equal(t, 0, tns.NumElements())
	assert.Empty(t, tns.ToList())
}

func TestAtAndSetAt(t *testing.T) {
	tns := seq(t, 1, 1, 1, 2)

	v, err := tns.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = tns.At(1, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	require.NoError(t, tns.SetAt(1, 1, 1, 2, 7))
	v, err = tns.At(1, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestAtOutOfRange(t *testing.T) {
	tns := seq(t, 2, 3, 4, 5)

	tests := []struct {
		name       string
		l, w, d, e int
		axis       string
	}{
		{"zero length", 0, 1, 1, 1, AxisLength},
		{"length overflow", 3, 1, 1, 1, AxisLength},
		{"zero width", 1, 0, 1, 1, AxisWidth},
		{"width overflow", 1, 4, 1, 1, AxisWidth},
		{"depth overflow", 1, 1, 5, 1, AxisDepth},
		{"depth2 overflow", 1, 1, 1, 6, AxisDepth2},
		{"negative", 1, 1, 1, -1, AxisDepth2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tns.At(tt.l, tt.w, tt.d, tt.e)
			var idxErr *IndexError
			require.ErrorAs(t, err, &idxErr)
			assert.Equal(t, tt.axis, idxErr.Axis)

			err = tns.SetAt(tt.l, tt.w, tt.d, tt.e, 0)
			require.ErrorAs(t, err, &idxErr)
		})
	}
}

func TestDataIsDeepCopy(t *testing.T) {
	tns := seq(t, 1, 1, 2, 2)
	data := tns.Data()
	data[0][0][0][0] = 999

	v, err := tns.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "Data must return an independent copy")
}

func TestCopyIndependence(t *testing.T) {
	a := seq(t, 2, 2, 2, 2)
	c := a.Copy()
	require.True(t, a.Equal(c))

	require.NoError(t, c.SetAt(1, 1, 1, 1, 999))
	v, err := a.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.False(t, a.Equal(c))
}

func TestEqual(t *testing.T) {
	a := seq(t, 2, 3, 1, 2)
	b := seq(t, 2, 3, 1, 2)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	require.NoError(t, b.SetAt(2, 3, 1, 2, -1))
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(seq(t, 2, 3, 2, 1)), "same element count, different shape")
}

func TestHashFollowsEquality(t *testing.T) {
	a := seq(t, 2, 2, 2, 2)
	b := seq(t, 2, 2, 2, 2)
	assert.Equal(t, a.Hash(), b.Hash(), "equal tensors must hash equal")

	require.NoError(t, b.SetAt(1, 1, 1, 1, 123))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestString(t *testing.T) {
	tns := seq(t, 1, 1, 1, 2)
	s := tns.String()
	assert.Contains(t, s, "Tensor4")
	assert.Contains(t, s, "depth2: 2")
}

func TestErrorMessages(t *testing.T) {
	_, err := seq(t, 1, 1, 1, 1).At(2, 1, 1, 1)
	assert.EqualError(t, err, `tensor: index 2 out of range [1, 1] on axis "length"`)

	mismatch := &ShapeMismatchError{Left: Shape4(1, 1, 1, 1), Right: Shape4(2, 1, 1, 1)}
	assert.Contains(t, mismatch.Error(), "shape mismatch")

	unsupported := &UnsupportedOperandError{Op: "/", Operand: "Tensor4"}
	assert.Contains(t, unsupported.Error(), `unsupported operand Tensor4 for "/"`)

	assert.False(t, errors.Is(ErrDivisionByZero, ErrEmptyTensor))
}
