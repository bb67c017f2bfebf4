package tensor

// Map returns a new tensor of identical shape with every value
// replaced by f(value). The receiver is untouched.
func (t *Tensor4) Map(f func(v float64) float64) *Tensor4 {
	out := t.Copy()
	for _, plane := range out.data {
		for _, rows := range plane {
			for _, row := range rows {
				for i, v := range row {
					row[i] = f(v)
				}
			}
		}
	}
	return out
}

// ToList returns all values flattened in nesting order
// length → width → depth → depth2.
func (t *Tensor4) ToList() []float64 {
	out := make([]float64, 0, t.NumElements())
	for _, plane := range t.data {
		for _, rows := range plane {
			for _, row := range rows {
				out = append(out, row...)
			}
		}
	}
	return out
}

// Reduce folds f left-to-right over the flattened values.
// Fails with ErrEmptyTensor when the tensor has no elements.
func (t *Tensor4) Reduce(f func(acc, v float64) float64) (float64, error) {
	return Reduce(t, f)
}

// Any reports whether at least one element satisfies pred.
func (t *Tensor4) Any(pred func(v float64) bool) bool {
	return Any(t, pred)
}

// Every reports whether all elements satisfy pred.
func (t *Tensor4) Every(pred func(v float64) bool) bool {
	return Every(t, pred)
}
