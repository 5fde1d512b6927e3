package rng

// debugValues is the fixed table used to reproduce traces by hand.
var debugValues = []float64{
	0.840188,
	0.394383,
	0.783099,
	0.798440,
	0.911647,
	0.197551,
	0.335223,
	0.768230,
	0.277775,
	0.553970,
	0.477397,
	0.628871,
	0.364784,
	0.513401,
	0.952230,
	0.916195,
	0.635712,
}

// Sequence is a Source that replays a fixed list of values, wrapping around
// to the first value after the last one.
type Sequence struct {
	values []float64
	next   int
	wraps  int
}

// NewSequence creates a Sequence over values.
//
// The slice is copied. NewSequence panics if values is empty or holds a
// value outside [0, 1).
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		panic("rng: NewSequence needs at least one value")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("rng: sequence values must be in [0, 1)")
		}
	}
	return &Sequence{values: append([]float64(nil), values...)}
}

// DebugSequence returns a Sequence over the built-in 17-value debug table.
func DebugSequence() *Sequence {
	return NewSequence(debugValues...)
}

// Float64 returns the next value of the sequence.
func (s *Sequence) Float64() float64 {
	v := s.values[s.next]
	s.next++
	if s.next >= len(s.values) {
		s.next = 0
		s.wraps++
	}
	return v
}

// Wraps reports how many times the sequence has wrapped around.
func (s *Sequence) Wraps() int {
	return s.wraps
}
