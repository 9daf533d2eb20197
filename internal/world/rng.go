package world

import "math/rand"

// Rand is the random source the world draws from.
type Rand interface {
	Float64() float64
}

// NewRand returns a math/rand source seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays a fixed list of values, cycling when exhausted.
// Tests use it to pin generated layouts and combat rolls.
type SequenceRand struct {
	values []float64
	next   int
}

// NewSequenceRand creates a SequenceRand over values.
func NewSequenceRand(values ...float64) *SequenceRand {
	return &SequenceRand{values: values}
}

// Float64 returns the next value in the sequence, or 0 for an empty one.
func (s *SequenceRand) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
