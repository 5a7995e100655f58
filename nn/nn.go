// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Parameter represents a trainable leaf in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and leaf.
func NewParameter(name string, value autodiff.Value) *Parameter {
	return nn.NewParameter(name, value)
}

// Layers

// Neuron computes tanh(Σ w_i * x_i + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nIn inputs.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 3, nn.NewRand(1))
func NewNeuron(g *autodiff.Graph, nIn int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(g, nIn, rng)
}

// Layer is a set of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of nOut neurons with nIn inputs each.
func NewLayer(g *autodiff.Graph, nIn, nOut int, rng *rand.Rand) *Layer {
	return nn.NewLayer(g, nIn, nOut, rng)
}

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates an MLP with nIn inputs and the given layer sizes.
//
// Example:
//
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.NewRand(42))
func NewMLP(g *autodiff.Graph, nIn int, sizes []int, rng *rand.Rand) *MLP {
	return nn.NewMLP(g, nIn, sizes, rng)
}

// Inputs creates one leaf per feature on g.
func Inputs(g *autodiff.Graph, xs []float64) []autodiff.Value {
	return nn.Inputs(g, xs)
}

// Loss functions

// SumSquaredError computes Σ (prediction - target)².
func SumSquaredError(predictions, targets []autodiff.Value) autodiff.Value {
	return nn.SumSquaredError(predictions, targets)
}

// MeanSquaredError computes the mean of (prediction - target)².
func MeanSquaredError(predictions, targets []autodiff.Value) autodiff.Value {
	return nn.MeanSquaredError(predictions, targets)
}

// Initialization

// NewRand returns a deterministic random source for weight initialization.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Uniform draws a value from U[lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return nn.Uniform(rng, lo, hi)
}

// Errors

// ErrArity is wrapped by ArityError.
var ErrArity = nn.ErrArity

// ArityError describes an input count mismatch.
type ArityError = nn.ArityError
