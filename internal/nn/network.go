package nn

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/bpnet/internal/optim"
	"github.com/born-ml/bpnet/internal/rng"
)

// Config holds the hyperparameters of a Network.
type Config struct {
	LearningRate float64      // eta; zero selects 0.5
	Momentum     float64      // alpha, range [0, 1)
	Logger       *slog.Logger // nil discards debug output
}

// DefaultConfig returns eta = 0.5, alpha = 0.9.
func DefaultConfig() Config {
	sgd := optim.DefaultSGDConfig()
	return Config{
		LearningRate: sgd.LR,
		Momentum:     sgd.Momentum,
	}
}

// Network is a fully connected feedforward network of sigmoid neurons.
//
// A network is built in three steps: New reserves the input layer, the
// output layer and room for a number of hidden layers; AddHidden declares the
// hidden layers in order; Finalize instantiates every neuron. After that each
// pattern presentation is SetInputs, Process, Outputs, AdjustWeights.
//
// Declaring fewer hidden layers than reserved is allowed. The output layer
// then follows the last declared hidden layer directly.
//
// A Network is not safe for concurrent use.
type Network struct {
	inputs    int
	outputs   int
	hiddenCap int
	hidden    []int

	src      rng.Source
	opt      optim.Optimizer
	momentum float64
	log      *slog.Logger

	layers [][]Neuron
	// acts[l] is [1, output of every neuron in layer l]; the leading 1
	// feeds the bias of layer l+1.
	acts [][]float64

	totalError float64
	points     int
}

// New creates a network with the given input and output sizes and room for
// hiddenLayers hidden layers.
//
// No neurons exist until Finalize. src supplies the initial weights.
func New(inputs, hiddenLayers, outputs int, src rng.Source, cfg Config) (*Network, error) {
	if inputs < 1 || outputs < 1 || hiddenLayers < 0 {
		return nil, fmt.Errorf("%w: inputs=%d hidden layers=%d outputs=%d",
			ErrInvalidSize, inputs, hiddenLayers, outputs)
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultConfig().LearningRate
	}
	if cfg.LearningRate < 0 || cfg.Momentum < 0 || cfg.Momentum >= 1 {
		return nil, fmt.Errorf("%w: learning rate=%g momentum=%g",
			ErrInvalidConfig, cfg.LearningRate, cfg.Momentum)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	n := &Network{
		inputs:    inputs,
		outputs:   outputs,
		hiddenCap: hiddenLayers,
		src:       src,
		opt:       optim.NewSGD(optim.SGDConfig{LR: cfg.LearningRate, Momentum: cfg.Momentum}),
		momentum:  cfg.Momentum,
		log:       log,
	}

	n.log.Debug("network created",
		"inputs", inputs,
		"hidden_layers", hiddenLayers,
		"outputs", outputs,
		"learning_rate", cfg.LearningRate,
		"momentum", cfg.Momentum)

	return n, nil
}

// AddHidden declares the next hidden layer with the given number of neurons.
//
// The first call declares layer 1, the second layer 2 and so on. It returns
// ErrTopologyOverflow once the reserved hidden capacity is used up.
func (n *Network) AddHidden(neurons int) error {
	if n.finalized() {
		return ErrFinalized
	}
	if neurons < 1 {
		return fmt.Errorf("%w: hidden layer with %d neurons", ErrInvalidSize, neurons)
	}

	next := len(n.hidden) + 1
	if next >= n.MaxLayers()-1 {
		return fmt.Errorf("%w: layer %d collides with output layer %d",
			ErrTopologyOverflow, next, n.MaxLayers()-1)
	}

	n.hidden = append(n.hidden, neurons)
	n.log.Debug("hidden layer added", "layer", next, "neurons", neurons)
	return nil
}

// Finalize creates every neuron and wires each layer to the one before it.
//
// Neurons are created layer by layer, in order, so the initial weights
// depend only on the topology and on the values produced by the source.
func (n *Network) Finalize() error {
	if n.finalized() {
		return ErrFinalized
	}

	sizes := n.topology()
	layers := make([][]Neuron, len(sizes))
	acts := make([][]float64, len(sizes)-1)
	points := 0

	for l, size := range sizes {
		source, fanIn := inputLayer, 0
		if l > 0 {
			source, fanIn = l-1, sizes[l-1]
		}

		layer := make([]Neuron, size)
		for i := range layer {
			layer[i] = NewNeuron(source, fanIn, n.src)
			points += layer[i].points()
		}
		layers[l] = layer

		if l < len(acts) {
			acts[l] = make([]float64, size+1)
			acts[l][0] = 1
		}

		n.log.Debug("layer created", "layer", l, "neurons", size, "fan_in", fanIn)
	}

	n.layers = layers
	n.acts = acts
	n.points = points + n.outputs + 2

	n.log.Debug("network finalized",
		"layers", len(layers),
		"output_layer", n.OutputLayerIndex(),
		"points", n.points)
	return nil
}

// topology returns the neuron count of every layer of the final network.
func (n *Network) topology() []int {
	sizes := make([]int, 0, len(n.hidden)+2)
	sizes = append(sizes, n.inputs)
	sizes = append(sizes, n.hidden...)
	return append(sizes, n.outputs)
}

func (n *Network) finalized() bool {
	return n.layers != nil
}

// MaxLayers returns the number of reserved layer slots: input, output and
// every reserved hidden layer.
func (n *Network) MaxLayers() int {
	return n.hiddenCap + 2
}

// OutputLayerIndex returns the index of the output layer.
//
// Before Finalize this is the reserved slot MaxLayers()-1. Afterwards it is
// LastHidden()+1.
func (n *Network) OutputLayerIndex() int {
	if n.finalized() {
		return len(n.layers) - 1
	}
	return n.MaxLayers() - 1
}

// LastHidden returns the index of the last declared hidden layer, 0 if none.
func (n *Network) LastHidden() int {
	return len(n.hidden)
}

// LayerCount returns the number of layers up to and including the output layer.
func (n *Network) LayerCount() int {
	return n.OutputLayerIndex() + 1
}

// LayerSize returns the neuron count of layer l, or 0 for a reserved slot
// that holds no layer.
func (n *Network) LayerSize(l int) int {
	switch {
	case n.finalized():
		if l < 0 || l >= len(n.layers) {
			return 0
		}
		return len(n.layers[l])
	case l == 0:
		return n.inputs
	case l >= 1 && l <= len(n.hidden):
		return n.hidden[l-1]
	case l == n.MaxLayers()-1:
		return n.outputs
	}
	return 0
}

// Neuron returns neuron i of layer l. It panics if the network is not
// finalized or the indices are out of range.
func (n *Network) Neuron(l, i int) *Neuron {
	if !n.finalized() {
		panic("nn: Neuron called before Finalize")
	}
	return &n.layers[l][i]
}

// InputSize returns the number of input neurons.
func (n *Network) InputSize() int { return n.inputs }

// OutputSize returns the number of output neurons.
func (n *Network) OutputSize() int { return n.outputs }

// LearningRate returns eta.
func (n *Network) LearningRate() float64 { return n.opt.GetLR() }

// MomentumFactor returns alpha.
func (n *Network) MomentumFactor() float64 { return n.momentum }

// TotalError returns the error computed by the last AdjustWeights call.
func (n *Network) TotalError() float64 { return n.totalError }

// Points returns the number of graphic points needed to draw the network:
// one per weight, one per output neuron, plus two. It is 0 before Finalize.
func (n *Network) Points() int { return n.points }
