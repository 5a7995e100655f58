package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SumSquaredError computes Σ (prediction - target)².
//
// Each term is built as Pow(Sub(pred, target), 2), so the loss is an
// ordinary graph node and can be differentiated with Backward.
func SumSquaredError(predictions, targets []autodiff.Value) autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: SumSquaredError: %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: SumSquaredError: no predictions")
	}

	loss := predictions[0].Sub(targets[0]).PowScalar(2)
	for i := 1; i < len(predictions); i++ {
		loss = loss.Add(predictions[i].Sub(targets[i]).PowScalar(2))
	}
	return loss
}

// MeanSquaredError computes SumSquaredError divided by the sample count.
func MeanSquaredError(predictions, targets []autodiff.Value) autodiff.Value {
	return SumSquaredError(predictions, targets).MulScalar(1 / float64(len(predictions)))
}
