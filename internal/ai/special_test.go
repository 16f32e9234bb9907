package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

func newMonster(behavior data.Behavior, mtype data.MonsterType, chance float64) *model.Monster {
	return model.NewMonster(model.MonsterSpec{
		Name:                "Test Monster",
		Level:               5,
		Type:                mtype,
		Behavior:            behavior,
		MaxHP:               100,
		SpecialAttackChance: chance,
		Abilities: []data.SpecialAbility{
			{Name: "Bite", Multiplier: 1.5, Effects: []effect.Kind{effect.Poison}},
			{Name: "Roar", Multiplier: 1.2},
		},
	})
}

func TestSpecialAttackChance(t *testing.T) {
	tests := []struct {
		name     string
		behavior data.Behavior
		mtype    data.MonsterType
		damage   int
		turns    int
		want     float64
	}{
		{"defensive base", data.BehaviorDefensive, data.MonsterBasic, 0, 0, 0.2},
		{"aggressive", data.BehaviorAggressive, data.MonsterBasic, 0, 0, 0.3},
		{"cunning healthy", data.BehaviorCunning, data.MonsterBasic, 50, 0, 0.2},
		{"cunning wounded", data.BehaviorCunning, data.MonsterBasic, 75, 0, 0.5},
		{"boss early", data.BehaviorDefensive, data.MonsterBoss, 0, 3, 0.2},
		{"boss late", data.BehaviorDefensive, data.MonsterBoss, 0, 4, 0.4},
		{"elite late gets no boss bonus", data.BehaviorDefensive, data.MonsterElite, 0, 10, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMonster(tt.behavior, tt.mtype, 0.2)
			m.TakeDamage(tt.damage)
			for range tt.turns {
				m.NextTurn()
			}
			assert.InDelta(t, tt.want, SpecialAttackChance(m), 1e-9)
		})
	}
}

func TestUseSpecialAttack_SuccessSetsCooldown(t *testing.T) {
	m := newMonster(data.BehaviorDefensive, data.MonsterBasic, 0.5)

	ability, ok := UseSpecialAttack(m, rng.NewScripted(0.1, 0.9))

	require.True(t, ok)
	assert.Equal(t, "Roar", ability.Name)
	assert.Equal(t, model.SpecialCooldownTurns, m.SpecialCooldown())
}

func TestUseSpecialAttack_CooldownDecrements(t *testing.T) {
	m := newMonster(data.BehaviorAggressive, data.MonsterBasic, 1.0)
	m.SetSpecialCooldown(model.SpecialCooldownTurns)
	src := rng.NewScripted(0)

	for want := model.SpecialCooldownTurns - 1; want >= 0; want-- {
		_, ok := UseSpecialAttack(m, src)
		assert.False(t, ok)
		assert.Equal(t, want, m.SpecialCooldown())
	}
	assert.Zero(t, src.Consumed(), "cooldown turns do not roll")

	_, ok := UseSpecialAttack(m, src)
	assert.True(t, ok)
}

func TestUseSpecialAttack_FailedRoll(t *testing.T) {
	m := newMonster(data.BehaviorDefensive, data.MonsterBasic, 0.2)

	_, ok := UseSpecialAttack(m, rng.NewScripted(0.5))

	assert.False(t, ok)
	assert.Zero(t, m.SpecialCooldown())
}

func TestUseSpecialAttack_NoAbilities(t *testing.T) {
	m := model.NewMonster(model.MonsterSpec{Name: "Slime", Level: 1, MaxHP: 10, SpecialAttackChance: 1})
	_, ok := UseSpecialAttack(m, rng.NewScripted(0))
	assert.False(t, ok)
}
