// Package train runs full-batch gradient descent of an MLP on a small
// dataset.
//
// Each iteration zeroes the parameter gradients, builds the loss graph,
// runs the backward pass and applies an SGD step. The graph is truncated
// back to the parameters afterwards, so every iteration's gradients come
// only from that iteration's forward graph.
package train

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
)

// Step reports the outcome of one training iteration.
type Step struct {
	Iteration int
	Loss      float64 // Loss before the parameter update
}

// Trainer owns the graph, the model and the optimizer.
type Trainer struct {
	config    Config
	data      Dataset
	graph     *autodiff.Graph
	model     *nn.MLP
	optimizer *optim.SGD
	mark      int // Graph length once all parameters exist
}

// New builds a model sized for data and an SGD optimizer over its
// parameters.
func New(config Config, data Dataset) (*Trainer, error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	g := autodiff.NewGraph()
	model := nn.NewMLP(g, data.NumFeatures(), config.Sizes, nn.NewRand(config.Seed))

	return &Trainer{
		config:    config,
		data:      data,
		graph:     g,
		model:     model,
		optimizer: optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: config.LR}),
		mark:      g.Len(),
	}, nil
}

// Config returns the effective configuration.
func (t *Trainer) Config() Config {
	return t.config
}

// Model returns the network being trained.
func (t *Trainer) Model() *nn.MLP {
	return t.model
}

// Graph returns the graph holding the model parameters.
func (t *Trainer) Graph() *autodiff.Graph {
	return t.graph
}

// Loss builds the sum-of-squared-errors loss over the whole dataset on the
// trainer's graph. Callers that keep building should call Reset afterwards.
func (t *Trainer) Loss() autodiff.Value {
	preds := make([]autodiff.Value, t.data.NumSamples())
	for i, x := range t.data.Inputs {
		preds[i] = t.model.Forward(nn.Inputs(t.graph, x))[0]
	}
	return nn.SumSquaredError(preds, nn.Inputs(t.graph, t.data.Targets))
}

// Reset drops every node built since the parameters were created.
func (t *Trainer) Reset() {
	t.graph.Truncate(t.mark)
}

// Predict returns the model output for every sample.
func (t *Trainer) Predict() []float64 {
	defer t.Reset()

	preds := make([]float64, t.data.NumSamples())
	for i, x := range t.data.Inputs {
		preds[i] = t.model.Forward(nn.Inputs(t.graph, x))[0].Data()
	}
	return preds
}

// Step runs one iteration: zero-grad, forward, backward, update.
// It returns the loss computed before the update.
func (t *Trainer) Step() float64 {
	defer t.Reset()

	t.optimizer.ZeroGrad()
	loss := t.Loss()
	loss.Backward()
	t.optimizer.Step()

	return loss.Data()
}

// Run performs Config.Iterations steps, calling onStep (if non-nil) after
// each one, and returns the loss history.
func (t *Trainer) Run(onStep func(Step)) []float64 {
	history := make([]float64, 0, t.config.Iterations)
	for k := 0; k < t.config.Iterations; k++ {
		loss := t.Step()
		history = append(history, loss)
		if onStep != nil {
			onStep(Step{Iteration: k, Loss: loss})
		}
	}
	return history
}
