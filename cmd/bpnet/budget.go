package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errInvalidBudget = errors.New("invalid param1")

// maxEpochs bounds an explicit epoch count; larger values are rejected.
const maxEpochs = 1<<53 - 1

// budget is the stop condition of a run.
type budget struct {
	epochs    int
	threshold float64
}

// parseBudget interprets param1.
//
// A value in (0, 1) is an error threshold with an unlimited epoch count. A
// value >= 1, or exactly 0, is an epoch count (the fraction is dropped) with
// no threshold. Negative values and counts above 2^53-1 are rejected.
func parseBudget(s string) (budget, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return budget{}, fmt.Errorf("%w: %q is not a number", errInvalidBudget, s)
	}

	switch {
	case v < 0:
		return budget{}, fmt.Errorf("%w: %.2f < 0.0, aborting", errInvalidBudget, v)
	case v > 0 && v < 1:
		return budget{epochs: math.MaxInt, threshold: v}, nil
	}

	count := math.Floor(v)
	if count > maxEpochs {
		return budget{}, fmt.Errorf("%w: %.2f > %d, aborting", errInvalidBudget, count, int64(maxEpochs))
	}
	return budget{epochs: epochCount(count, math.MaxInt)}, nil
}

// epochCount converts a whole, non-negative count to int, clamping at limit
// where int is narrower than the 2^53 bound.
func epochCount(count float64, limit int) int {
	if count >= float64(limit) {
		return limit
	}
	return int(count)
}

// parseHidden parses a comma-separated list of hidden layer sizes. An empty
// string means no hidden layer.
func parseHidden(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid hidden layer size %q", p)
		}
		sizes[i] = n
	}
	return sizes, nil
}
