// Package rng provides the random sources used for weight initialization and
// pattern shuffling.
//
// Nothing in this module reads a process-wide generator. Every consumer takes
// a Source explicitly, so a run is reproducible whenever its Source is.
package rng

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source produces pseudo-random values in [0, 1).
//
// *math/rand/v2.Rand satisfies Source, as do Uniform and Sequence.
type Source interface {
	Float64() float64
}

// Uniform is a seeded Source drawing from U[0, 1) over a PCG generator.
type Uniform struct {
	dist distuv.Uniform
}

// NewSource creates a Uniform source seeded with seed.
//
// Two sources created with the same seed produce identical sequences.
func NewSource(seed uint64) *Uniform {
	return &Uniform{
		dist: distuv.Uniform{
			Min: 0,
			Max: 1,
			Src: rand.NewPCG(seed, seed),
		},
	}
}

// Float64 returns the next value in [0, 1).
func (u *Uniform) Float64() float64 {
	return u.dist.Rand()
}

// Shuffle fills perm with 0..len(perm)-1 and permutes it in place.
//
// Each position p is swapped with p + floor(r*(n-p)), r drawn from src, so
// the permutation consumes exactly len(perm) values.
func Shuffle(src Source, perm []int) {
	for p := range perm {
		perm[p] = p
	}

	n := len(perm)
	for p := 0; p < n; p++ {
		rp := p + int(src.Float64()*float64(n-p))
		if rp >= n {
			rp = n - 1
		}
		perm[p], perm[rp] = perm[rp], perm[p]
	}
}
