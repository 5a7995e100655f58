package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// MLP is a multi-layer perceptron: a chain of tanh layers where each
// layer's outputs are the next layer's inputs.
//
// Example:
//
//	// 3 inputs, two hidden layers of 4 neurons, 1 output
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, rng)
type MLP struct {
	layers []*Layer
}

// NewMLP creates layers sized [nIn, sizes[0]], [sizes[0], sizes[1]], ...
func NewMLP(g *autodiff.Graph, nIn int, sizes []int, rng *rand.Rand) *MLP {
	if len(sizes) == 0 {
		panic("nn: NewMLP: at least one layer size is required")
	}

	layers := make([]*Layer, len(sizes))
	in := nIn
	for i, out := range sizes {
		layers[i] = newLayer(g, in, out, rng, fmt.Sprintf("layer%d.", i))
		in = out
	}
	return &MLP{layers: layers}
}

// Layers returns the layers in order.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// Forward threads inputs through every layer and returns the last layer's
// outputs.
func (m *MLP) Forward(inputs []autodiff.Value) []autodiff.Value {
	x := inputs
	for _, l := range m.layers {
		x = l.Forward(x)
	}
	return x
}

// Parameters returns every weight and bias, layer by layer.
func (m *MLP) Parameters() []*Parameter {
	var params []*Parameter
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}
