package train

import "fmt"

// Defaults for the toy regression demo.
const (
	DefaultIterations = 100
	DefaultLR         = 0.1
)

// DefaultSizes is the default layer layout: two hidden layers of 4 neurons
// and a single output.
var DefaultSizes = []int{4, 4, 1}

// Config holds training hyperparameters.
//
// Zero-valued fields are replaced by the defaults in New.
type Config struct {
	Iterations int     // Number of full-batch gradient steps (default: 100)
	LR         float64 // Learning rate (default: 0.1)
	Sizes      []int   // Layer sizes after the input layer (default: [4, 4, 1])
	Seed       int64   // Seed for weight initialization
}

// DefaultConfig returns the demo configuration with the given seed.
func DefaultConfig(seed int64) Config {
	return Config{
		Iterations: DefaultIterations,
		LR:         DefaultLR,
		Sizes:      append([]int(nil), DefaultSizes...),
		Seed:       seed,
	}
}

// withDefaults fills zero values and validates the result.
func (c Config) withDefaults() (Config, error) {
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.LR == 0 {
		c.LR = DefaultLR
	}
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), DefaultSizes...)
	}

	if c.Iterations < 0 {
		return c, fmt.Errorf("%w: negative iteration count %d", ErrInvalidConfig, c.Iterations)
	}
	if c.LR < 0 {
		return c, fmt.Errorf("%w: negative learning rate %v", ErrInvalidConfig, c.LR)
	}
	for i, size := range c.Sizes {
		if size <= 0 {
			return c, fmt.Errorf("%w: layer %d has size %d", ErrInvalidConfig, i, size)
		}
	}
	if last := c.Sizes[len(c.Sizes)-1]; last != 1 {
		return c, fmt.Errorf("%w: output layer must have 1 neuron, got %d", ErrInvalidConfig, last)
	}
	return c, nil
}
