package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Neuron computes tanh(Σ w_i * x_i + b).
//
// Weights and bias are initialized from U[-1, 1).
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 3, nn.NewRand(1))
//	out := n.Call(nn.Inputs(g, []float64{2, 3, -1}))
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron with nIn weight leaves and one bias leaf on g.
func NewNeuron(g *autodiff.Graph, nIn int, rng *rand.Rand) *Neuron {
	return newNeuron(g, nIn, rng, "")
}

func newNeuron(g *autodiff.Graph, nIn int, rng *rand.Rand, prefix string) *Neuron {
	if nIn < 0 {
		panic(fmt.Sprintf("nn: NewNeuron: negative input size %d", nIn))
	}

	weights := make([]*Parameter, nIn)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("%sw%d", prefix, i), g.Leaf(Uniform(rng, -1, 1)))
	}
	bias := NewParameter(prefix+"b", g.Leaf(Uniform(rng, -1, 1)))

	return &Neuron{
		weights: weights,
		bias:    bias,
	}
}

// NumInputs returns the number of inputs the neuron expects.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Call computes the neuron output for inputs.
//
// Panics with *ArityError if len(inputs) differs from the number of weights.
func (n *Neuron) Call(inputs []autodiff.Value) autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(&ArityError{Module: "Neuron", Want: len(n.weights), Got: len(inputs)})
	}

	act := n.bias.Value()
	for i, w := range n.weights {
		act = act.Add(w.Value().Mul(inputs[i]))
	}
	return act.Tanh()
}

// Forward implements Module by returning the single output of Call.
func (n *Neuron) Forward(inputs []autodiff.Value) []autodiff.Value {
	return []autodiff.Value{n.Call(inputs)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, len(n.weights)+1)
	copy(params, n.weights)
	params[len(n.weights)] = n.bias
	return params
}
