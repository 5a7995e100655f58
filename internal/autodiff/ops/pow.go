package ops

import "math"

// powForward computes a raised to b.
func powForward(a, b float64) float64 {
	return math.Pow(a, b)
}

// powBackward computes the gradient for the base only:
// d(a^b)/da = b * a^(b-1).
//
// The exponent is a numeric constant by contract and receives no gradient.
// A zero base with an exponent below one yields ±Inf here, which is left to
// propagate.
func powBackward(a, b, outputGrad float64) float64 {
	return b * math.Pow(a, b-1) * outputGrad
}
