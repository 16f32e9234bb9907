// Package ai decides monster actions.
package ai

import (
	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

// Special attack chance adjustments.
const (
	AggressiveBonus      = 0.1
	CunningBonus         = 0.3
	CunningHealthTrigger = 0.3
	BossBonus            = 0.2
	BossTurnTrigger      = 3
)

// SpecialAttackChance returns the current chance for m to use a special
// attack, ignoring cooldown.
func SpecialAttackChance(m *model.Monster) float64 {
	chance := m.SpecialAttackChance()
	switch m.Behavior() {
	case data.BehaviorAggressive:
		chance += AggressiveBonus
	case data.BehaviorCunning:
		if m.HPPercentage() < CunningHealthTrigger {
			chance += CunningBonus
		}
	case data.BehaviorDefensive:
	}
	if m.IsBoss() && m.TurnsInCombat() > BossTurnTrigger {
		chance += BossBonus
	}
	return chance
}

// UseSpecialAttack is the per-turn special attack gate.
//
// An active cooldown is decremented and the gate stays closed. Otherwise the
// monster rolls against SpecialAttackChance; on success the cooldown is set to
// model.SpecialCooldownTurns and one of its abilities is returned.
func UseSpecialAttack(m *model.Monster, src rng.Source) (data.SpecialAbility, bool) {
	if cd := m.SpecialCooldown(); cd > 0 {
		m.SetSpecialCooldown(cd - 1)
		return data.SpecialAbility{}, false
	}
	abilities := m.Abilities()
	if len(abilities) == 0 {
		return data.SpecialAbility{}, false
	}
	if !rng.Chance(src, SpecialAttackChance(m)) {
		return data.SpecialAbility{}, false
	}

	m.SetSpecialCooldown(model.SpecialCooldownTurns)
	return abilities[src.IntN(len(abilities))], true
}
