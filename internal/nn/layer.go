package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// Layer is a set of independent neurons consuming the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nOut neurons, each taking nIn inputs.
func NewLayer(g *autodiff.Graph, nIn, nOut int, rng *rand.Rand) *Layer {
	return newLayer(g, nIn, nOut, rng, "")
}

func newLayer(g *autodiff.Graph, nIn, nOut int, rng *rand.Rand, prefix string) *Layer {
	if nOut <= 0 {
		panic(fmt.Sprintf("nn: NewLayer: output size must be positive, got %d", nOut))
	}

	neurons := make([]*Neuron, nOut)
	for i := range neurons {
		neurons[i] = newNeuron(g, nIn, rng, fmt.Sprintf("%sneuron%d.", prefix, i))
	}
	return &Layer{neurons: neurons}
}

// NumInputs returns the input size of the layer.
func (l *Layer) NumInputs() int {
	return l.neurons[0].NumInputs()
}

// NumOutputs returns the number of neurons.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// Forward returns one output per neuron.
func (l *Layer) Forward(inputs []autodiff.Value) []autodiff.Value {
	if len(inputs) != l.NumInputs() {
		panic(&ArityError{Module: "Layer", Want: l.NumInputs(), Got: len(inputs)})
	}

	outs := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Call(inputs)
	}
	return outs
}

// Parameters returns the parameters of all neurons, neuron by neuron.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
