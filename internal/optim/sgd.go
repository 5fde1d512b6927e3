package optim

import (
	"gonum.org/v1/gonum/floats"
)

// SGD implements per-pattern gradient descent with a momentum term.
//
// Update rule, for every weight slot i:
//
//	momentum[i] = lr * inputs[i] * delta + momentumFactor * momentum[i]
//	weight[i]  += momentum[i]
//
// delta is taken as (target - output) * sigmoid', so the update is added to
// the weight rather than subtracted. With inputs[0] = 1 the bias follows the
// same rule: momentum[0] = lr * delta + momentumFactor * momentum[0].
//
// The momentum vector is owned by the caller, one per neuron, and must start
// at zero.
type SGD struct {
	lr       float64
	momentum float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate, eta
	Momentum float64 // Momentum factor, alpha (range: [0, 1))
}

// DefaultSGDConfig returns eta = 0.5, alpha = 0.9.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{LR: 0.5, Momentum: 0.9}
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step applies one momentum update to a neuron's weights.
func (s *SGD) Step(weights, momentums, inputs []float64, delta float64) error {
	if err := checkShape(weights, momentums, inputs); err != nil {
		return err
	}

	// momentums = momentum*momentums + (lr*delta)*inputs
	floats.Scale(s.momentum, momentums)
	floats.AddScaled(momentums, s.lr*delta, inputs)

	floats.Add(weights, momentums)
	return nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// GetMomentum returns the momentum factor.
func (s *SGD) GetMomentum() float64 {
	return s.momentum
}
