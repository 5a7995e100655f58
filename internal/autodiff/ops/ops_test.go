package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
)

// TestKind_String tests the operator names used in dumps.
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind ops.Kind
		want string
	}{
		{ops.None, "none"},
		{ops.Add, "+"},
		{ops.Mul, "*"},
		{ops.Pow, "**"},
		{ops.Exp, "exp"},
		{ops.Tanh, "tanh"},
		{ops.Kind(42), "Kind(42)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

// TestKind_Arity tests operand counts for every kind.
func TestKind_Arity(t *testing.T) {
	assert.Equal(t, 0, ops.None.Arity())
	assert.Equal(t, 2, ops.Add.Arity())
	assert.Equal(t, 2, ops.Mul.Arity())
	assert.Equal(t, 2, ops.Pow.Arity())
	assert.Equal(t, 1, ops.Exp.Arity())
	assert.Equal(t, 1, ops.Tanh.Arity())
	assert.Panics(t, func() { ops.Kind(99).Arity() })
}

// TestForward tests forward evaluation of every kind.
func TestForward(t *testing.T) {
	tests := []struct {
		name string
		kind ops.Kind
		a, b float64
		want float64
	}{
		{"Add", ops.Add, 2, -3.5, -1.5},
		{"Mul", ops.Mul, -2, 0.5, -1},
		{"PowSquare", ops.Pow, -3, 2, 9},
		{"PowInverse", ops.Pow, 4, -1, 0.25},
		{"Exp", ops.Exp, 1, 0, math.E},
		{"TanhZero", ops.Tanh, 0, 0, 0},
		{"Tanh", ops.Tanh, 0.5, 0, math.Tanh(0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ops.Forward(tt.kind, tt.a, tt.b), 1e-12)
		})
	}

	assert.Panics(t, func() { ops.Forward(ops.None, 1, 1) })
}

// TestBackward tests the local differentiation rules.
func TestBackward(t *testing.T) {
	tests := []struct {
		name         string
		kind         ops.Kind
		a, b, grad   float64
		wantA, wantB float64
	}{
		{"Leaf", ops.None, 5, 0, 1, 0, 0},
		{"Add", ops.Add, 2, 3, 1.5, 1.5, 1.5},
		{"Mul", ops.Mul, 2, 3, 1, 3, 2},
		{"MulScaled", ops.Mul, -4, 0.5, 2, 1, -8},
		{"PowSquare", ops.Pow, 3, 2, 1, 6, 0},
		{"PowInverse", ops.Pow, 2, -1, 1, -0.25, 0},
		{"Exp", ops.Exp, 0, 0, 3, 3, 0},
		{"TanhZero", ops.Tanh, 0, 0, 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotA, gotB := ops.Backward(tt.kind, tt.a, tt.b, tt.grad)
			assert.InDelta(t, tt.wantA, gotA, 1e-12)
			assert.InDelta(t, tt.wantB, gotB, 1e-12)
		})
	}
}

// TestBackward_Tanh tests 1 - tanh² against the closed form.
func TestBackward_Tanh(t *testing.T) {
	x := 0.8813735870195432 // tanh(x) = 1/√2
	gotA, gotB := ops.Backward(ops.Tanh, x, 0, 1)

	assert.InDelta(t, 0.5, gotA, 1e-12)
	assert.Zero(t, gotB)
}

// TestBackward_PowZeroBase tests that a zero base with a negative exponent
// yields an infinite gradient instead of failing.
func TestBackward_PowZeroBase(t *testing.T) {
	assert.True(t, math.IsInf(ops.Forward(ops.Pow, 0, -1), 1))

	gotA, gotB := ops.Backward(ops.Pow, 0, -1, 1)
	assert.True(t, math.IsInf(gotA, -1))
	assert.Zero(t, gotB)
}
