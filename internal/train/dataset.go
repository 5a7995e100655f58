package train

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidConfig = errors.New("invalid training config")
	ErrEmptyDataset  = errors.New("dataset has no samples")
	ErrDatasetShape  = errors.New("dataset shape mismatch")
)

// Dataset is a set of feature vectors with one scalar target each.
type Dataset struct {
	Inputs  [][]float64
	Targets []float64
}

// ToyDataset returns the fixed 4-sample binary regression problem.
func ToyDataset() Dataset {
	return Dataset{
		Inputs: [][]float64{
			{2.0, 3.0, -1.0},
			{3.0, -1.0, 5.0},
			{0.5, 1.0, 1.0},
			{1.0, 1.0, -1.0},
		},
		Targets: []float64{1.0, -1.0, -1.0, 1.0},
	}
}

// NumSamples returns the number of samples.
func (d Dataset) NumSamples() int {
	return len(d.Inputs)
}

// NumFeatures returns the length of each input vector.
func (d Dataset) NumFeatures() int {
	if len(d.Inputs) == 0 {
		return 0
	}
	return len(d.Inputs[0])
}

// Validate checks that the dataset is non-empty and rectangular.
func (d Dataset) Validate() error {
	if len(d.Inputs) == 0 {
		return ErrEmptyDataset
	}
	if len(d.Inputs) != len(d.Targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrDatasetShape, len(d.Inputs), len(d.Targets))
	}
	n := len(d.Inputs[0])
	for i, x := range d.Inputs {
		if len(x) != n {
			return fmt.Errorf("%w: sample %d has %d features, want %d", ErrDatasetShape, i, len(x), n)
		}
	}
	return nil
}
