package ops

import "math"

// expForward computes e^a.
func expForward(a float64) float64 {
	return math.Exp(a)
}

// expBackward computes the gradient for exp.
// Since d(exp(a))/da = exp(a): grad_input = grad_output * exp(a).
func expBackward(a, outputGrad float64) float64 {
	return math.Exp(a) * outputGrad
}
