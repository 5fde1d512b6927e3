package nn

import "fmt"

// AdjustWeights backpropagates the error of one pattern and updates every
// weight. It returns the pattern's error, 0.5 * sum((target - output)^2).
//
// outputs are the values read with Outputs after the last Process call and
// targets the expected values; both must have OutputSize elements. The
// network is left unchanged when an error is returned.
//
// The pass runs in three phases:
//  1. output neurons: delta = (target - output) * output * (1 - output)
//  2. from the output layer down to layer 2, each neuron j of the layer
//     below gets delta_j = sum(delta_k * w_kj) * out_j * (1 - out_j)
//  3. from layer 1 up, every neuron updates its weights with its own delta
//     through the momentum rule
func (n *Network) AdjustWeights(outputs, targets []float64) (float64, error) {
	if !n.finalized() {
		return 0, ErrNotFinalized
	}
	if len(outputs) != len(targets) {
		return 0, fmt.Errorf("%w: %d outputs, %d targets", ErrLengthMismatch, len(outputs), len(targets))
	}
	if len(outputs) != n.outputs {
		return 0, fmt.Errorf("%w: %d outputs for %d output neurons", ErrLengthMismatch, len(outputs), n.outputs)
	}

	out := len(n.layers) - 1

	n.totalError = 0
	for k := range n.layers[out] {
		diff := targets[k] - outputs[k]
		n.layers[out][k].pdError = diff * sigmoidPrime(outputs[k])
		n.totalError += 0.5 * diff * diff
	}

	for l := out; l > 1; l-- {
		cur, prev := n.layers[l], n.layers[l-1]
		for j := range prev {
			sum := 0.0
			for k := range cur {
				sum += cur[k].pdError * cur[k].weights[j+1]
			}
			prev[j].pdError = sum * sigmoidPrime(prev[j].output)
		}
	}

	for l := 1; l <= out; l++ {
		x := n.acts[l-1]
		for i := range n.layers[l] {
			nr := &n.layers[l][i]
			if err := n.opt.Step(nr.weights, nr.momentums, x, nr.pdError); err != nil {
				// Shapes are fixed by Finalize.
				panic(fmt.Sprintf("nn: layer %d neuron %d: %v", l, i, err))
			}
		}
	}

	return n.totalError, nil
}
