package nn

import (
	"errors"
	"fmt"
)

// ErrArity is returned (wrapped in *ArityError) when a module receives the
// wrong number of inputs.
var ErrArity = errors.New("input arity mismatch")

// ArityError describes an input count mismatch.
type ArityError struct {
	Module string // Module that rejected the inputs (e.g., "Neuron")
	Want   int    // Expected number of inputs
	Got    int    // Number of inputs received
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s.Forward: %v: expected %d inputs, got %d", e.Module, ErrArity, e.Want, e.Got)
}

// Unwrap returns ErrArity.
func (e *ArityError) Unwrap() error {
	return ErrArity
}
