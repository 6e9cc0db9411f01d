package manager

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandSource is the default RandomSource, backed by a PCG generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource seeds a generator; seed 0 picks one from the clock.
func NewRandSource(seed uint64) *RandSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt returns a value in [0,n). n must be positive.
func (s *RandSource) UniformInt(n int) int {
	return s.rng.Intn(n)
}
