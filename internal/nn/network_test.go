package nn

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/born-ml/bpnet/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNetwork(t *testing.T, inputs, hiddenCap, outputs int, hidden ...int) *Network {
	t.Helper()

	n, err := New(inputs, hiddenCap, outputs, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)
	for _, h := range hidden {
		require.NoError(t, n.AddHidden(h))
	}
	require.NoError(t, n.Finalize())
	return n
}

func TestNew_Defaults(t *testing.T) {
	n, err := New(2, 1, 1, rng.NewSource(1), Config{Momentum: 0.9})
	require.NoError(t, err)

	assert.Equal(t, 3, n.MaxLayers())
	assert.Equal(t, 2, n.OutputLayerIndex())
	assert.Equal(t, 0, n.LastHidden())
	assert.Equal(t, 0.5, n.LearningRate())
	assert.Equal(t, 0.9, n.MomentumFactor())
	assert.Equal(t, 0, n.Points())
	assert.Equal(t, 2, n.InputSize())
	assert.Equal(t, 1, n.OutputSize())
}

func TestNew_ConfiguredRates(t *testing.T) {
	n, err := New(2, 1, 1, rng.NewSource(1), Config{LearningRate: 0.25, Momentum: 0.3})
	require.NoError(t, err)
	assert.Equal(t, 0.25, n.LearningRate())
	assert.Equal(t, 0.3, n.MomentumFactor())

	n, err = New(2, 1, 1, rng.NewSource(1), Config{LearningRate: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 0.1, n.LearningRate())
	assert.Zero(t, n.MomentumFactor())
}

func TestNew_Invalid(t *testing.T) {
	src := rng.NewSource(1)

	_, err := New(0, 1, 1, src, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(2, -1, 1, src, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(2, 1, 0, src, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New(2, 1, 1, nil, DefaultConfig())
	require.ErrorIs(t, err, ErrNilSource)

	_, err = New(2, 1, 1, src, Config{LearningRate: -1})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(2, 1, 1, src, Config{LearningRate: 0.5, Momentum: 1})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAddHidden_Overflow(t *testing.T) {
	n, err := New(2, 2, 1, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, n.AddHidden(3))
	assert.Equal(t, 1, n.LastHidden())
	require.NoError(t, n.AddHidden(4))
	assert.Equal(t, 2, n.LastHidden())

	err = n.AddHidden(5)
	require.ErrorIs(t, err, ErrTopologyOverflow)
	assert.Equal(t, 2, n.LastHidden(), "failed call must not declare a layer")
}

func TestAddHidden_NoCapacity(t *testing.T) {
	n, err := New(2, 0, 1, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)

	require.ErrorIs(t, n.AddHidden(2), ErrTopologyOverflow)
}

func TestAddHidden_Invalid(t *testing.T) {
	n, err := New(2, 1, 1, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)

	require.ErrorIs(t, n.AddHidden(0), ErrInvalidSize)
	assert.Equal(t, 0, n.LastHidden())
}

func TestLifecycleErrors(t *testing.T) {
	n, err := New(2, 1, 1, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)

	require.ErrorIs(t, n.SetInputs([]float64{0, 0}), ErrNotFinalized)
	require.ErrorIs(t, n.Outputs(make([]float64, 1)), ErrNotFinalized)
	_, err = n.AdjustWeights([]float64{0}, []float64{0})
	require.ErrorIs(t, err, ErrNotFinalized)
	assert.Panics(t, func() { n.Neuron(0, 0) })

	require.NoError(t, n.Finalize())
	require.ErrorIs(t, n.Finalize(), ErrFinalized)
	require.ErrorIs(t, n.AddHidden(2), ErrFinalized)
}

func TestFinalize_FullCapacity(t *testing.T) {
	n := newTestNetwork(t, 2, 2, 1, 3, 4)

	assert.Equal(t, 4, n.LayerCount())
	assert.Equal(t, 3, n.OutputLayerIndex())
	assert.Equal(t, []int{2, 3, 4, 1}, layerSizes(n))
}

func TestFinalize_Compacts(t *testing.T) {
	n, err := New(2, 3, 1, rng.NewSource(1), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, n.AddHidden(5))

	// Before finalize the output layer sits in the last reserved slot.
	assert.Equal(t, 4, n.OutputLayerIndex())
	assert.Equal(t, 1, n.LayerSize(4))
	assert.Equal(t, 0, n.LayerSize(2))

	require.NoError(t, n.Finalize())

	assert.Equal(t, 2, n.OutputLayerIndex())
	assert.Equal(t, n.LastHidden()+1, n.OutputLayerIndex())
	assert.Equal(t, []int{2, 5, 1}, layerSizes(n))
	assert.Equal(t, 0, n.LayerSize(4))
}

func TestFinalize_NoHidden(t *testing.T) {
	n := newTestNetwork(t, 3, 2, 2)

	assert.Equal(t, 1, n.OutputLayerIndex())
	assert.Equal(t, []int{3, 2}, layerSizes(n))
	assert.Equal(t, 0, n.Neuron(1, 0).Source())
	assert.Equal(t, 3, n.Neuron(1, 1).FanIn())
}

func TestFinalize_Wiring(t *testing.T) {
	n := newTestNetwork(t, 4, 3, 2, 6, 3, 5)

	sizes := layerSizes(n)
	for l, size := range sizes {
		for i := 0; i < size; i++ {
			nr := n.Neuron(l, i)
			if l == 0 {
				assert.Equal(t, -1, nr.Source())
				assert.Len(t, nr.weights, 1)
				continue
			}
			assert.Equal(t, l-1, nr.Source())
			assert.Len(t, nr.weights, sizes[l-1]+1, "layer %d neuron %d", l, i)
			assert.Len(t, nr.momentums, sizes[l-1]+1)
		}
	}
}

func TestFinalize_WeightOrder(t *testing.T) {
	// 1 input, 1 hidden, 1 output: the input neuron draws one value, the
	// hidden and output neurons two each.
	src := rng.NewSequence(0.5, 0.6, 0.7, 0.8, 0.9)
	n, err := New(1, 1, 1, src, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, n.AddHidden(1))
	require.NoError(t, n.Finalize())

	assert.InDeltaSlice(t, []float64{0}, n.Neuron(0, 0).Weights(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.1, 0.2}, n.Neuron(1, 0).Weights(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.3, 0.4}, n.Neuron(2, 0).Weights(), 1e-12)
	assert.Equal(t, 1, src.Wraps())
}

func TestPoints(t *testing.T) {
	// weights: 2*1 + 2*3 + 1*3 = 11; plus 1 output neuron plus 2.
	n := newTestNetwork(t, 2, 1, 1, 2)
	assert.Equal(t, 14, n.Points())
}

func TestSameSourceSameWeights(t *testing.T) {
	build := func() *Network {
		n, err := New(3, 2, 2, rng.NewSource(77), DefaultConfig())
		require.NoError(t, err)
		require.NoError(t, n.AddHidden(4))
		require.NoError(t, n.AddHidden(3))
		require.NoError(t, n.Finalize())
		return n
	}

	a, b := build(), build()
	for l, size := range layerSizes(a) {
		for i := 0; i < size; i++ {
			assert.Equal(t, a.Neuron(l, i).Weights(), b.Neuron(l, i).Weights())
		}
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := DefaultConfig()
	cfg.Logger = log
	n, err := New(2, 1, 1, rng.NewSource(1), cfg)
	require.NoError(t, err)
	require.NoError(t, n.AddHidden(2))
	require.NoError(t, n.Finalize())

	out := buf.String()
	assert.Contains(t, out, "network created")
	assert.Contains(t, out, "hidden layer added")
	assert.Contains(t, out, "network finalized")
	assert.Contains(t, out, "points=14")
}

func layerSizes(n *Network) []int {
	sizes := make([]int, n.LayerCount())
	for l := range sizes {
		sizes[l] = n.LayerSize(l)
	}
	return sizes
}
