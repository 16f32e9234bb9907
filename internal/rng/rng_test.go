package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for range 100 {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(17), b.IntN(17))
	}
}

func TestRand_IntNBounds(t *testing.T) {
	r := New(7)
	for range 1000 {
		v := r.IntN(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Equal(t, 0, r.IntN(0))
}

func TestScripted_ReplaysAndCycles(t *testing.T) {
	s := NewScripted(0.1, 0.5, 0.9)

	assert.InDelta(t, 0.1, s.Float64(), 1e-9)
	assert.InDelta(t, 0.5, s.Float64(), 1e-9)
	assert.InDelta(t, 0.9, s.Float64(), 1e-9)
	assert.InDelta(t, 0.1, s.Float64(), 1e-9)
	assert.Equal(t, 4, s.Consumed())
}

func TestScripted_IntN(t *testing.T) {
	s := NewScripted(0, 0.5, 0.999)
	assert.Equal(t, 0, s.IntN(10))
	assert.Equal(t, 5, s.IntN(10))
	assert.Equal(t, 9, s.IntN(10))
}

func TestScripted_ClampsOutOfRange(t *testing.T) {
	s := NewScripted(-1, 2)
	assert.Equal(t, 0.0, s.Float64())
	assert.Less(t, s.Float64(), 1.0)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		src    Source
		lo, hi int
		want   int
	}{
		{"lowest roll", NewScripted(0), 20, 30, 20},
		{"highest roll", NewScripted(0.999), 20, 30, 29},
		{"empty range", NewScripted(0.5), 4, 4, 4},
		{"inverted range", NewScripted(0.5), 8, 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Range(tt.src, tt.lo, tt.hi))
		})
	}
}

func TestChance(t *testing.T) {
	assert.True(t, Chance(NewScripted(0.29), 0.3))
	assert.False(t, Chance(NewScripted(0.3), 0.3))
	assert.False(t, Chance(NewScripted(0), 0))
}

func TestLocked_ConcurrentUse(t *testing.T) {
	l := NewLocked(New(1))
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				v := l.Float64()
				if v < 0 || v >= 1 {
					t.Errorf("Float64() = %v out of range", v)
				}
				_ = l.IntN(3)
			}
		}()
	}
	wg.Wait()
}
