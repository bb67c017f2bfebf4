package tensor

import "fmt"

// Scalar wraps a single numeric value usable as a right-hand operand
// of Mul and Div.
type Scalar struct {
	value float64
}

// NewScalar wraps v.
func NewScalar(v float64) *Scalar {
	return &Scalar{value: v}
}

// Value returns the wrapped numeric value.
func (s *Scalar) Value() float64 {
	return s.value
}

func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%v)", s.value)
}
