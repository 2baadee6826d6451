// Package prng implements the minimal-standard multiplicative congruential
// generator that drives every random draw in the simulation.
//
// A Stream is created per call site and never shared. Independent streams are
// derived from an entity id with StreamFor, so two generators asking for the
// same (id, multiplier) pair always see the same numbers.
package prng

import "fmt"

const (
	// Modulus is 2^31-1.
	Modulus int64 = 2147483647
	factor  int64 = 16807
)

// Stream yields a reproducible sequence of uniform draws in [0, 1).
type Stream struct {
	state int64
}

// New returns a stream for seed. The seed must be positive and not a multiple
// of Modulus; anything else is a programmer error and panics.
func New(seed int64) *Stream {
	state := seed % Modulus
	if state <= 0 {
		panic(fmt.Sprintf("prng: invalid seed %d", seed))
	}
	return &Stream{state: state}
}

// Next advances the stream and returns (state-1)/(2^31-2).
func (s *Stream) Next() float64 {
	s.state = (s.state * factor) % Modulus
	return float64(s.state-1) / float64(Modulus-1)
}

// KeySeed sums the code points of key.
func KeySeed(key string) int64 {
	var sum int64
	for _, r := range key {
		sum += int64(r)
	}
	return sum
}

// StreamFor derives the stream for key at a call-site specific multiplier.
func StreamFor(key string, multiplier int64) *Stream {
	return New(KeySeed(key) * multiplier)
}
