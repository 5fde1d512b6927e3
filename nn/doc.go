// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully connected feedforward network of sigmoid
// neurons trained by backpropagation with momentum.
//
// # Overview
//
// A Network has one input layer, zero or more hidden layers and one output
// layer. Every neuron is connected to all neurons of the previous layer and
// carries a bias. Training presents one pattern at a time and updates every
// weight after each pattern:
//
//	momentum = eta * input * delta + alpha * momentum
//	weight  += momentum
//
// # Basic Usage
//
//	import "github.com/born-ml/bpnet/nn"
//
//	func main() {
//	    src := nn.NewSource(2)
//
//	    net, err := nn.New(2, 1, 1, src, nn.DefaultConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = net.AddHidden(2)
//	    _ = net.Finalize()
//
//	    out := make([]float64, 1)
//	    _ = net.SetInputs([]float64{1, 0})
//	    net.Process()
//	    _ = net.Outputs(out)
//	    e, _ := net.AdjustWeights(out, []float64{1})
//	}
//
// # Topology
//
// New reserves room for a number of hidden layers. AddHidden declares them in
// order and fails with ErrTopologyOverflow once the room is used up. Finalize
// creates the neurons; declaring fewer hidden layers than reserved is fine.
//
// # Reproducibility
//
// There is no package-level random generator. Initial weights come from the
// Source passed to New, so two networks built from equal sources with the
// same topology start from the same weights.
package nn
