// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the per-neuron weight update rule used by nn.
//
// # Overview
//
// SGD applies one momentum update to a neuron's weight vector:
//
//	momentum[i] = lr * inputs[i] * delta + momentumFactor * momentum[i]
//	weight[i]  += momentum[i]
//
// inputs[0] is 1, which makes weight[0] the bias.
//
// # Basic Usage
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.5, Momentum: 0.9})
//
//	weights := []float64{0.1, -0.2}
//	momentums := make([]float64, 2)
//	if err := sgd.Step(weights, momentums, []float64{1, 0.7}, delta); err != nil {
//	    log.Fatal(err)
//	}
package optim
