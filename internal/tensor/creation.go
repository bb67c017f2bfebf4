package tensor

// Zeros4 creates a zero-filled length×width×depth×depth2 tensor.
// Negative sizes panic; a zero size yields an empty tensor.
func Zeros4(length, width, depth, depth2 int) *Tensor4 {
	return Full4(length, width, depth, depth2, 0)
}

// Full4 creates a length×width×depth×depth2 tensor filled with v.
func Full4(length, width, depth, depth2 int, v float64) *Tensor4 {
	t, err := Generate4(length, width, depth, depth2, func(int) float64 { return v })
	if err != nil {
		panic(err) // only reachable with negative sizes
	}
	return t
}
