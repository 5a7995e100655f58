// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks on scalar autodiff
// values.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(w·x + b) with U[-1, 1) initialization
//   - Layer: independent neurons over shared inputs
//   - MLP: chain of layers
//   - Loss functions: SumSquaredError, MeanSquaredError
//   - Utilities: Module interface, Parameter, Inputs, NewRand
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/micrograd/autodiff"
//	    "github.com/born-ml/micrograd/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.NewRand(42))
//
//	    // Forward pass
//	    out := model.Forward(nn.Inputs(g, []float64{2, 3, -1}))
//	}
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	for _, param := range model.Parameters() {
//	    fmt.Println(param.Name(), param.Data(), param.Grad())
//	}
//
// The order is layer by layer, neuron by neuron, weights before bias, and
// never changes for a given model.
package nn
