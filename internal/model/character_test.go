package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
)

func TestClampDamage(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{MaxDamage, MaxDamage},
		{MaxDamage + 1, MaxDamage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampDamage(tt.in), "ClampDamage(%d)", tt.in)
	}
}

func TestClampHealth(t *testing.T) {
	assert.Equal(t, 0, ClampHealth(-10, 100))
	assert.Equal(t, 50, ClampHealth(50, 100))
	assert.Equal(t, 100, ClampHealth(150, 100))
	assert.Equal(t, 0, ClampHealth(5, -1))
}

func TestCharacter_HealthStaysInBounds(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})

	amounts := []int{-50, 0, 30, 1_000_000_000, 7}
	for _, a := range amounts {
		c.Heal(a)
		assert.GreaterOrEqual(t, c.CurrentHP(), 0)
		assert.LessOrEqual(t, c.CurrentHP(), c.MaxHP())

		c.TakeDamage(a)
		assert.GreaterOrEqual(t, c.CurrentHP(), 0)
		assert.LessOrEqual(t, c.CurrentHP(), c.MaxHP())
	}
}

func TestCharacter_TakeDamage(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})

	assert.Equal(t, 30, c.TakeDamage(30))
	assert.Equal(t, 70, c.CurrentHP())

	assert.Equal(t, 0, c.TakeDamage(-5), "negative damage must not heal")
	assert.Equal(t, 70, c.CurrentHP())

	assert.Equal(t, 70, c.TakeDamage(500), "reports only health actually lost")
	assert.True(t, c.IsDead())
	assert.Equal(t, 0, c.CurrentHP())
}

func TestCharacter_HealDoesNotRevive(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})
	c.TakeDamage(100)
	require.True(t, c.IsDead())

	assert.Equal(t, 0, c.Heal(50))
	assert.True(t, c.IsDead())

	c.RestoreFullHealth()
	assert.True(t, c.IsDead())
}

func TestCharacter_HealCapsAtMax(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})
	c.TakeDamage(10)

	assert.Equal(t, 10, c.Heal(25))
	assert.Equal(t, 100, c.CurrentHP())
}

func TestCharacter_SetMaxHPTrimsCurrent(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})
	c.SetMaxHP(40)
	assert.Equal(t, 40, c.CurrentHP())

	c.SetMaxHP(0)
	assert.Equal(t, 1, c.MaxHP())
	assert.Equal(t, 1, c.CurrentHP())
}

func TestCharacter_HPPercentage(t *testing.T) {
	c := NewCharacter("Dummy", 1, 200, BaseStats{})
	c.TakeDamage(150)
	assert.InDelta(t, 0.25, c.HPPercentage(), 1e-9)
}

func TestCharacter_CanAct(t *testing.T) {
	c := NewCharacter("Dummy", 1, 100, BaseStats{})
	assert.True(t, c.CanAct())

	effect.Apply(c, effect.Stun)
	assert.False(t, c.CanAct())

	effect.Remove(c, effect.Stun)
	effect.Apply(c, effect.Freeze)
	assert.False(t, c.CanAct())

	effect.Remove(c, effect.Freeze)
	c.TakeDamage(100)
	assert.False(t, c.CanAct())
}

func TestCharacter_ImplementsHolder(t *testing.T) {
	var _ effect.Holder = NewCharacter("Dummy", 1, 10, BaseStats{})
	var _ Combatant = NewCharacter("Dummy", 1, 10, BaseStats{})
}
