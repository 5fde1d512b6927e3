// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/bpnet/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPublicAPI runs one presentation through the exported surface.
func TestPublicAPI(t *testing.T) {
	net, err := nn.New(2, 1, 1, nn.NewSource(1), nn.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, net.AddHidden(2))
	require.ErrorIs(t, net.AddHidden(2), nn.ErrTopologyOverflow)
	require.NoError(t, net.Finalize())

	require.NoError(t, net.SetInputs([]float64{1, 0}))
	net.Process()

	out := make([]float64, 1)
	require.NoError(t, net.Outputs(out))
	require.ErrorIs(t, net.Outputs(make([]float64, 2)), nn.ErrLengthMismatch)

	e, err := net.AdjustWeights(out, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5*(1-out[0])*(1-out[0]), e, 1e-15)
}

// TestShuffle verifies the exported shuffle covers every index.
func TestShuffle(t *testing.T) {
	perm := make([]int, 4)
	nn.Shuffle(nn.NewSequence(0.9, 0.1, 0.5, 0.2), perm)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, perm)
}

func TestSigmoid(t *testing.T) {
	assert.InDelta(t, 0.5, nn.Sigmoid(0), 1e-15)
}
