package tensor

// Operand is the closed set of right-hand operand kinds accepted by
// the polymorphic operators: a plain Number, another *Tensor4, or a
// wrapped *Scalar. Operations switch over the concrete kind
// exhaustively; anything else is an UnsupportedOperandError, never a
// silent nil result.
type Operand interface {
	isOperand()
}

// Number is a plain scalar operand.
type Number float64

func (Number) isOperand() {}

func (*Tensor4) isOperand() {}

func (*Scalar) isOperand() {}

// operandKind names an operand for error reporting.
func operandKind(op Operand) string {
	switch op.(type) {
	case Number:
		return "Number"
	case *Tensor4:
		return "Tensor4"
	case *Scalar:
		return "Scalar"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}
