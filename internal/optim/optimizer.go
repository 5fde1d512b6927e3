// Package optim implements the weight update rules used during training.
//
// An optimizer works on one neuron at a time. It receives the neuron's weight
// vector, the matching momentum vector, the augmented input vector the neuron
// saw during the forward pass ([1, x_1, ..., x_n], the leading 1 feeding the
// bias) and the neuron's error derivative, and updates weights and momentums
// in place.
//
// Example usage:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.9})
//
//	// after the error derivative delta of a neuron is known
//	if err := sgd.Step(weights, momentums, inputs, delta); err != nil {
//	    return err
//	}
package optim

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when weights, momentums and inputs differ in length.
var ErrShapeMismatch = errors.New("optim: weights, momentums and inputs must have equal length")

// Optimizer is the interface for per-neuron update rules.
type Optimizer interface {
	// Step applies one update to weights and momentums.
	//
	// inputs[0] must be 1 so that weights[0] acts as the bias. delta is the
	// partial derivative of the error with respect to the neuron's weighted
	// sum. Nothing is modified when Step returns an error.
	Step(weights, momentums, inputs []float64, delta float64) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

func checkShape(weights, momentums, inputs []float64) error {
	if len(weights) != len(momentums) || len(weights) != len(inputs) {
		return fmt.Errorf("%w: weights=%d momentums=%d inputs=%d",
			ErrShapeMismatch, len(weights), len(momentums), len(inputs))
	}
	return nil
}
