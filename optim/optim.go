// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/bpnet/internal/optim"
)

// Optimizer interface defines the common interface for per-neuron update rules.
type Optimizer = optim.Optimizer

// SGD represents gradient descent with a momentum term.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// ErrShapeMismatch is returned by Step when vector lengths differ.
var ErrShapeMismatch = optim.ErrShapeMismatch

// DefaultSGDConfig returns LR 0.5 and Momentum 0.9.
func DefaultSGDConfig() SGDConfig {
	return optim.DefaultSGDConfig()
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
