package analytics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoiseSource_SeededSequence(t *testing.T) {
	a := NewNoiseSource(99)
	b := NewNoiseSource(99)
	for i := 0; i < 20; i++ {
		va, vb := a.Float64(), b.Float64()
		assert.Equal(t, va, vb)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestLockedSource_ConcurrentUse(t *testing.T) {
	src := NewNoiseSource(5)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = src.Float64()
			}
		}()
	}
	wg.Wait()
}

func TestFixedNoise(t *testing.T) {
	assert.Equal(t, 0.25, FixedNoise(0.25).Float64())
}
