package ops

import "math"

// tanhForward computes the hyperbolic tangent of a.
func tanhForward(a float64) float64 {
	return math.Tanh(a)
}

// tanhBackward computes the gradient for tanh.
//
// d(tanh(a))/da = 1 - tanh²(a), so
// grad_input = grad_output * (1 - t²) with t = tanh(a).
func tanhBackward(a, outputGrad float64) float64 {
	t := math.Tanh(a)
	return (1 - t*t) * outputGrad
}
