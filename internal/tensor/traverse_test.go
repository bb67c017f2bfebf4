package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func TestMapDoesNotMutateReceiver(t *testing.T) {
	a := seq(t, 2, 2, 1, 2)
	doubled := a.Map(func(v float64) float64 { return 2 * v })

	assert.True(t, doubled.Shape().Equal(a.Shape()))
	for i, v := range a.ToList() {
		assert.Equal(t, 2*v, doubled.ToList()[i])
	}
	assert.Equal(t, 0.0, a.ToList()[0], "receiver must be untouched")
}

func TestReduceSum(t *testing.T) {
	a := seq(t, 2, 3, 2, 2)

	total, err := a.Reduce(func(acc, v float64) float64 { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, floats.Sum(a.ToList()), total)
	assert.Equal(t, Sum(a), total)
}

func TestReduceFoldsLeftToRight(t *testing.T) {
	a := seq(t, 1, 1, 1, 3) // values 0, 1, 2

	got, err := a.Reduce(func(acc, v float64) float64 { return acc*10 + v })
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)
}

func TestReduceEmpty(t *testing.T) {
	_, err := Zeros4(0, 0, 0, 0).Reduce(func(acc, v float64) float64 { return acc + v })
	require.ErrorIs(t, err, ErrEmptyTensor)
}

func TestAnyEvery(t *testing.T) {
	a := seq(t, 2, 1, 1, 3) // values 0..5
	neg := func(v float64) bool { return v < 0 }
	nonNeg := func(v float64) bool { return v >= 0 }

	assert.False(t, a.Any(neg))
	assert.True(t, a.Every(nonNeg))

	require.NoError(t, a.SetAt(2, 1, 1, 3, -1))
	assert.True(t, a.Any(neg))
	assert.False(t, a.Every(nonNeg))
}

func TestAnyEveryEmpty(t *testing.T) {
	empty := Zeros4(0, 1, 1, 1)
	always := func(float64) bool { return true }

	assert.False(t, empty.Any(always))
	assert.True(t, empty.Every(always), "every is vacuously true on an empty tensor")
}
