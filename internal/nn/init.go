package nn

import "github.com/born-ml/bpnet/internal/rng"

// initRange is the half-width of the initial weight interval.
const initRange = 0.5

// uniformWeights returns count values in [-0.5, 0.5), drawn in order from src.
func uniformWeights(src rng.Source, count int) []float64 {
	w := make([]float64, count)
	for i := range w {
		w[i] = src.Float64() - initRange
	}
	return w
}
