package nn

import "math"

// Sigmoid returns 1 / (1 + exp(-x)).
//
// The result lies in (0, 1) for every finite x that does not saturate
// float64, and the function is pure, so a forward pass over unchanged weights
// and inputs is repeatable.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// sigmoidPrime returns the derivative of Sigmoid expressed through its output.
func sigmoidPrime(out float64) float64 {
	return out * (1 - out)
}
