// Package dataset holds training patterns and the loaders that produce them.
package dataset

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptySet  = errors.New("pattern set is empty")
	ErrRaggedSet = errors.New("patterns differ in dimension")
)

// Pattern is one training example.
type Pattern struct {
	Inputs  []float64
	Targets []float64
}

// Set is an ordered list of patterns sharing the same dimensions.
type Set []Pattern

// XOR returns the four exclusive-or patterns.
func XOR() Set {
	return Set{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
}

// Dims returns the input and target sizes shared by every pattern.
func (s Set) Dims() (inputs, targets int, err error) {
	if len(s) == 0 {
		return 0, 0, ErrEmptySet
	}

	inputs, targets = len(s[0].Inputs), len(s[0].Targets)
	for i, p := range s[1:] {
		if len(p.Inputs) != inputs || len(p.Targets) != targets {
			return 0, 0, fmt.Errorf("%w: pattern %d has %d inputs and %d targets, pattern 0 has %d and %d",
				ErrRaggedSet, i+1, len(p.Inputs), len(p.Targets), inputs, targets)
		}
	}
	return inputs, targets, nil
}
