// Package nn implements neural network modules on top of the scalar
// autodiff graph.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter: Trainable leaf with a stable name
//   - Neuron: tanh(w·x + b)
//   - Layer: independent neurons sharing one input sequence
//   - MLP: chain of layers
//   - Loss functions: SumSquaredError, MeanSquaredError
//
// Every module builds its nodes on the autodiff.Graph passed to its
// constructor; inputs must live on the same graph.
package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Module is the base interface for all neural network components.
//
// Modules can be composed to build larger networks:
//
//	g := autodiff.NewGraph()
//	rng := nn.NewRand(42)
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, rng)
//	out := model.Forward(nn.Inputs(g, []float64{2, 3, -1}))
type Module interface {
	// Forward computes the module outputs for the given inputs.
	//
	// Panics with *ArityError if the number of inputs does not match
	// the module's input size.
	Forward(inputs []autodiff.Value) []autodiff.Value

	// Parameters returns all trainable parameters of this module in a
	// stable order.
	Parameters() []*Parameter
}

// Inputs creates one leaf per feature on g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	values := make([]autodiff.Value, len(xs))
	for i, x := range xs {
		values[i] = g.Leaf(x)
	}
	return values
}
