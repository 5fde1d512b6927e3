package nn

import "github.com/born-ml/bpnet/internal/rng"

// inputLayer marks a neuron that reads from no layer.
const inputLayer = -1

// Neuron is a single sigmoid unit.
//
// A neuron does not reference its upstream neurons directly. It records the
// index of the layer it reads from and is fully connected to it, so
// weights[i+1] multiplies the output of neuron i of that layer. weights[0]
// is the bias.
//
// Input-layer neurons still carry a single bias slot. It is never used: their
// outputs are assigned by SetInputs and Process skips layer 0.
type Neuron struct {
	source    int
	weights   []float64
	momentums []float64
	output    float64
	pdError   float64
}

// NewNeuron creates a neuron reading fanIn outputs from layer source.
//
// Pass source = -1 and fanIn = 0 for an input neuron. The fanIn+1 weights are
// drawn from src in order, shifted into [-0.5, 0.5). Momentums, output and
// error derivative start at zero.
func NewNeuron(source, fanIn int, src rng.Source) Neuron {
	if fanIn < 0 {
		fanIn = 0
	}
	count := fanIn + 1
	return Neuron{
		source:    source,
		weights:   uniformWeights(src, count),
		momentums: make([]float64, count),
	}
}

// Source returns the index of the layer the neuron reads from, or -1 for an
// input neuron.
func (n *Neuron) Source() int { return n.source }

// FanIn returns the number of upstream neurons.
func (n *Neuron) FanIn() int { return len(n.weights) - 1 }

// Output returns the activation computed by the last forward pass.
func (n *Neuron) Output() float64 { return n.output }

// PDError returns the error derivative computed by the last backward pass.
func (n *Neuron) PDError() float64 { return n.pdError }

// Weights returns a copy of the weight vector, bias first.
func (n *Neuron) Weights() []float64 {
	return append([]float64(nil), n.weights...)
}

// Momentums returns a copy of the momentum vector, bias first.
func (n *Neuron) Momentums() []float64 {
	return append([]float64(nil), n.momentums...)
}

// points is the number of graphic points the neuron contributes.
func (n *Neuron) points() int { return len(n.weights) }
