// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/bpnet/internal/nn"
	"github.com/born-ml/bpnet/internal/rng"
)

// Network is a fully connected feedforward network of sigmoid neurons.
type Network = nn.Network

// Neuron is a single sigmoid unit of a Network.
type Neuron = nn.Neuron

// Config holds the learning rate, momentum factor and logger of a Network.
type Config = nn.Config

// DefaultConfig returns learning rate 0.5 and momentum factor 0.9.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// New creates a network with room for hiddenLayers hidden layers.
//
// Example:
//
//	net, err := nn.New(2, 1, 1, nn.NewSource(2), nn.DefaultConfig())
func New(inputs, hiddenLayers, outputs int, src Source, cfg Config) (*Network, error) {
	return nn.New(inputs, hiddenLayers, outputs, src, cfg)
}

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 {
	return nn.Sigmoid(x)
}

// Random sources

// Source produces pseudo-random values in [0, 1).
type Source = rng.Source

// NewSource creates a seeded PCG-backed Source.
func NewSource(seed uint64) Source {
	return rng.NewSource(seed)
}

// NewSequence creates a Source that replays values in a loop.
func NewSequence(values ...float64) Source {
	return rng.NewSequence(values...)
}

// Shuffle fills perm with a permutation of 0..len(perm)-1 drawn from src.
func Shuffle(src Source, perm []int) {
	rng.Shuffle(src, perm)
}

// Errors

// Errors returned by Network methods.
var (
	ErrTopologyOverflow = nn.ErrTopologyOverflow
	ErrLengthMismatch   = nn.ErrLengthMismatch
	ErrInvalidSize      = nn.ErrInvalidSize
	ErrInvalidConfig    = nn.ErrInvalidConfig
	ErrNilSource        = nn.ErrNilSource
	ErrFinalized        = nn.ErrFinalized
	ErrNotFinalized     = nn.ErrNotFinalized
)
