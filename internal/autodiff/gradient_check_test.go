package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/stretchr/testify/assert"
)

// expr builds a scalar expression from leaf inputs on g.
type expr func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value

// evaluate builds f on a fresh graph and returns the root and its inputs.
func evaluate(f expr, inputs []float64) (autodiff.Value, []autodiff.Value) {
	g := autodiff.NewGraph()
	xs := make([]autodiff.Value, len(inputs))
	for i, v := range inputs {
		xs[i] = g.Leaf(v)
	}
	return f(g, xs), xs
}

// numericalGradient computes ∂f/∂inputs[i] using central differences.
func numericalGradient(f expr, inputs []float64, i int, epsilon float64) float64 {
	shifted := func(delta float64) float64 {
		perturbed := append([]float64(nil), inputs...)
		perturbed[i] += delta
		root, _ := evaluate(f, perturbed)
		return root.Data()
	}
	return (shifted(epsilon) - shifted(-epsilon)) / (2 * epsilon)
}

// TestNumericalGradient compares analytic gradients with finite differences
// for every operation, on negative, fractional and near-zero inputs.
func TestNumericalGradient(t *testing.T) {
	const (
		epsilon   = 1e-5
		tolerance = 1e-4
	)

	tests := []struct {
		name   string
		f      expr
		inputs []float64
	}{
		{
			name:   "Add",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Add(xs[1]) },
			inputs: []float64{-1.5, 0.001},
		},
		{
			name:   "Mul",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Mul(xs[1]) },
			inputs: []float64{-2.5, 0.75},
		},
		{
			name:   "MulSelf",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Mul(xs[0]) },
			inputs: []float64{-0.3},
		},
		{
			name:   "PowSquare",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].PowScalar(2) },
			inputs: []float64{-0.3},
		},
		{
			name:   "PowCube",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].PowScalar(3) },
			inputs: []float64{1.7},
		},
		{
			name:   "PowInverse",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].PowScalar(-1) },
			inputs: []float64{0.1},
		},
		{
			name:   "PowFractional",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].PowScalar(0.5) },
			inputs: []float64{2.25},
		},
		{
			name:   "ExpNegative",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Exp() },
			inputs: []float64{-0.5},
		},
		{
			name:   "Exp",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Exp() },
			inputs: []float64{2.0},
		},
		{
			name:   "TanhNearZero",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Tanh() },
			inputs: []float64{0.001},
		},
		{
			name:   "TanhNegative",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Tanh() },
			inputs: []float64{-1.2},
		},
		{
			name:   "Neg",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Neg() },
			inputs: []float64{0.25},
		},
		{
			name:   "Sub",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Sub(xs[1]) },
			inputs: []float64{0.4, -3.0},
		},
		{
			name:   "Div",
			f:      func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value { return xs[0].Div(xs[1]) },
			inputs: []float64{1.5, -0.4},
		},
		{
			name: "Composite",
			f: func(g *autodiff.Graph, xs []autodiff.Value) autodiff.Value {
				// tanh(a*b + exp(c)) / (a - 3)
				num := xs[0].Mul(xs[1]).Add(xs[2].Exp()).Tanh()
				return num.Div(xs[0].Sub(g.Leaf(3)))
			},
			inputs: []float64{0.5, -1.25, -0.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, xs := evaluate(tt.f, tt.inputs)
			root.Backward()

			for i := range tt.inputs {
				numerical := numericalGradient(tt.f, tt.inputs, i, epsilon)
				assert.InDelta(t, numerical, xs[i].Grad(), tolerance,
					"input %d: autodiff grad %f differs from numerical grad %f", i, xs[i].Grad(), numerical)
			}
		})
	}
}
