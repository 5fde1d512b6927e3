package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SetInputs assigns in to the outputs of the input layer.
func (n *Network) SetInputs(in []float64) error {
	if !n.finalized() {
		return ErrNotFinalized
	}
	if len(in) != n.inputs {
		return fmt.Errorf("%w: %d inputs for %d input neurons", ErrLengthMismatch, len(in), n.inputs)
	}

	for i := range n.layers[0] {
		n.layers[0][i].output = in[i]
	}
	return nil
}

// Process runs the forward pass from layer 1 through the output layer.
//
// Every neuron computes sigmoid(bias + sum(w_i * x_i)) over the outputs of
// the previous layer. Process only writes neuron outputs.
func (n *Network) Process() {
	for l := 1; l < len(n.layers); l++ {
		prev := n.acts[l-1]
		for i := range n.layers[l-1] {
			prev[i+1] = n.layers[l-1][i].output
		}

		for i := range n.layers[l] {
			nr := &n.layers[l][i]
			nr.output = Sigmoid(floats.Dot(nr.weights, prev))
		}
	}
}

// Outputs copies the outputs of the output layer into dst.
//
// dst must have exactly OutputSize elements; it is left untouched otherwise.
func (n *Network) Outputs(dst []float64) error {
	if !n.finalized() {
		return ErrNotFinalized
	}
	if len(dst) != n.outputs {
		return fmt.Errorf("%w: buffer of %d for %d output neurons", ErrLengthMismatch, len(dst), n.outputs)
	}

	out := n.layers[len(n.layers)-1]
	for i := range out {
		dst[i] = out[i].output
	}
	return nil
}
