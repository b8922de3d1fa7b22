package analytics

import (
	"math/rand/v2"
	"sync"
	"time"
)

// NoiseSource supplies uniform draws in [0, 1) for the stochastic terms.
type NoiseSource interface {
	Float64() float64
}

// LockedSource is a seeded NoiseSource safe for concurrent use
type LockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewNoiseSource returns a PCG-backed source. Seed 0 seeds from the clock.
func NewNoiseSource(seed uint64) *LockedSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns the next draw in [0, 1)
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// FixedNoise always returns the same draw. Values outside [0, 1) are not checked.
type FixedNoise float64

// Float64 returns the fixed draw
func (f FixedNoise) Float64() float64 { return float64(f) }
