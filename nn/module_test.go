// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/nn"
	"github.com/born-ml/micrograd/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module.
func TestModuleInterface(t *testing.T) {
	g := autodiff.NewGraph()
	rng := nn.NewRand(1)

	modules := map[string]nn.Module{
		"Neuron": nn.NewNeuron(g, 2, rng),
		"Layer":  nn.NewLayer(g, 2, 3, rng),
		"MLP":    nn.NewMLP(g, 2, []int{3, 1}, rng),
	}

	for name, m := range modules {
		t.Run(name, func(t *testing.T) {
			out := m.Forward(nn.Inputs(g, []float64{0.5, -0.5}))
			require.NotEmpty(t, out)
			assert.NotEmpty(t, m.Parameters())
		})
	}
}

// TestPublicTrainingLoop exercises the public API end to end.
func TestPublicTrainingLoop(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 2, []int{3, 1}, nn.NewRand(2))
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
	mark := g.Len()

	x := []float64{1, -2}
	loss := func() autodiff.Value {
		pred := model.Forward(nn.Inputs(g, x))
		return nn.SumSquaredError(pred, nn.Inputs(g, []float64{0.5}))
	}

	var first, last float64
	for step := 0; step < 50; step++ {
		optimizer.ZeroGrad()
		l := loss()
		l.Backward()
		optimizer.Step()
		if step == 0 {
			first = l.Data()
		}
		last = l.Data()
		g.Truncate(mark)
	}

	assert.Less(t, last, first)
	assert.Equal(t, autodiff.OpTanh, model.Forward(nn.Inputs(g, x))[0].Op())
}

// TestArityError tests the re-exported error types.
func TestArityError(t *testing.T) {
	g := autodiff.NewGraph()
	n := nn.NewNeuron(g, 2, nn.NewRand(3))

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, nn.ErrArity))

		var arityErr *nn.ArityError
		require.ErrorAs(t, err, &arityErr)
		assert.Equal(t, 2, arityErr.Want)
	}()
	n.Call(nn.Inputs(g, []float64{1}))
}
