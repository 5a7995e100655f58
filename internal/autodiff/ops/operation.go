// Package ops defines the closed set of scalar operations the autodiff graph
// understands and their local differentiation rules.
//
// Supported operations:
//   - Add: a + b (d/da = 1, d/db = 1)
//   - Mul: a * b (d/da = b, d/db = a)
//   - Pow: a ^ b (d/da = b * a^(b-1); b is a constant exponent)
//   - Exp: e^a (d/da = e^a)
//   - Tanh: tanh(a) (d/da = 1 - tanh²(a))
//
// Negation, subtraction and division are expressed through these five and
// never get a Kind of their own.
package ops

import "fmt"

// Kind tags how a node's value was derived.
type Kind uint8

// Operation kinds. None marks a leaf.
const (
	None Kind = iota
	Add
	Mul
	Pow
	Exp
	Tanh
)

var kindNames = [...]string{
	None: "none",
	Add:  "+",
	Mul:  "*",
	Pow:  "**",
	Exp:  "exp",
	Tanh: "tanh",
}

// String returns the short operator name used in dumps.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns how many operands a node of this kind references.
func (k Kind) Arity() int {
	switch k {
	case None:
		return 0
	case Exp, Tanh:
		return 1
	case Add, Mul, Pow:
		return 2
	default:
		panic(fmt.Sprintf("ops: unknown kind %d", uint8(k)))
	}
}

// Forward evaluates kind over the operand values.
// For unary kinds b is ignored.
func Forward(k Kind, a, b float64) float64 {
	switch k {
	case Add:
		return addForward(a, b)
	case Mul:
		return mulForward(a, b)
	case Pow:
		return powForward(a, b)
	case Exp:
		return expForward(a)
	case Tanh:
		return tanhForward(a)
	default:
		panic(fmt.Sprintf("ops: Forward called with %v", k))
	}
}

// Backward returns the contributions that must be added to the operands'
// gradients, given the operand values and the gradient of the output.
//
// Example for Mul:
//
//	a=2, b=3, outputGrad=1
//	returns: (3, 2)
//
// The second result is always zero for unary kinds and for Pow, whose
// exponent is treated as a constant. Leaves (None) contribute nothing.
func Backward(k Kind, a, b, outputGrad float64) (gradA, gradB float64) {
	switch k {
	case None:
		return 0, 0
	case Add:
		return addBackward(outputGrad)
	case Mul:
		return mulBackward(a, b, outputGrad)
	case Pow:
		return powBackward(a, b, outputGrad), 0
	case Exp:
		return expBackward(a, outputGrad), 0
	case Tanh:
		return tanhBackward(a, outputGrad), 0
	default:
		panic(fmt.Sprintf("ops: Backward called with %v", k))
	}
}
