package guard

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// CustomHashMix derives the next value of a seed stream from the current
// value and the stream's seed.
//
// It is a pure function of its arguments: the same (current, seed) pair
// always yields the same result. Iterating it from current == seed does not
// revisit a value within the first 100 steps.
func CustomHashMix(current, seed uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], current)
	binary.LittleEndian.PutUint64(buf[8:], seed)
	return xxhash.Sum64(buf[:])
}

// HashMix mixes an arbitrary list of numbers into one. Order matters, and
// HashMix(current, seed) == CustomHashMix(current, seed).
func HashMix(values ...uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:]) // never fails
	}
	return d.Sum64()
}

// SeedStream is a reproducible sequence of seeds. It is a plain value owned
// by the caller; copying it forks the sequence.
type SeedStream struct {
	seed    uint64
	current uint64
}

// NewSeedStream starts a stream at seed.
func NewSeedStream(seed uint64) SeedStream {
	return SeedStream{seed: seed, current: seed}
}

// Next advances the stream and returns the new value.
func (s *SeedStream) Next() uint64 {
	s.current = CustomHashMix(s.current, s.seed)
	return s.current
}

// Current returns the last value produced (the seed before the first Next).
func (s *SeedStream) Current() uint64 {
	return s.current
}

// Seed returns the seed the stream was started with.
func (s *SeedStream) Seed() uint64 {
	return s.seed
}
