package nn

import "github.com/born-ml/micrograd/internal/autodiff"

// Parameter represents a trainable leaf in a neural network.
//
// Example:
//
//	w := nn.NewParameter("weight", g.Leaf(0.3))
//
//	// After a backward pass
//	w.SetData(w.Data() - lr*w.Grad())
type Parameter struct {
	name  string         // Parameter name (e.g., "layer0.neuron1.w2")
	value autodiff.Value // Leaf node holding the parameter
}

// NewParameter creates a new trainable parameter from a leaf.
func NewParameter(name string, value autodiff.Value) *Parameter {
	if !value.IsLeaf() {
		panic("nn: parameter " + name + " must be a leaf")
	}
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the leaf node, for use in graph expressions.
func (p *Parameter) Value() autodiff.Value {
	return p.value
}

// Data returns the current parameter value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// SetData overwrites the parameter value.
func (p *Parameter) SetData(data float64) {
	p.value.SetData(data)
}

// Grad returns the gradient accumulated by the last backward passes.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad resets the gradient.
//
// This should be called before each backward pass to avoid accumulating
// gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
