package model

import "github.com/udisondev/dungeoncrawl/internal/data"

// SpecialCooldownTurns is the cooldown set after a monster uses a special attack.
const SpecialCooldownTurns = 3

// MonsterSpec carries the level-scaled values a factory resolved for a new monster.
type MonsterSpec struct {
	Name     string
	Level    int
	Type     data.MonsterType
	Family   data.Family
	Behavior data.Behavior

	MaxHP int
	Stats BaseStats

	SpecialAttackChance float64
	Abilities           []data.SpecialAbility
	ExperienceReward    int64
}

// Monster is a combatant created fresh per encounter and discarded after.
type Monster struct {
	*Character

	mtype    data.MonsterType
	family   data.Family
	behavior data.Behavior

	abilities           []data.SpecialAbility
	specialAttackChance float64
	specialCooldown     int
	turnsInCombat       int

	experienceReward int64
}

// NewMonster creates a monster at full health.
func NewMonster(spec MonsterSpec) *Monster {
	abilities := make([]data.SpecialAbility, len(spec.Abilities))
	copy(abilities, spec.Abilities)

	return &Monster{
		Character:           NewCharacter(spec.Name, spec.Level, spec.MaxHP, spec.Stats),
		mtype:               spec.Type,
		family:              spec.Family,
		behavior:            spec.Behavior,
		abilities:           abilities,
		specialAttackChance: spec.SpecialAttackChance,
		experienceReward:    max(spec.ExperienceReward, 0),
	}
}

func (m *Monster) Type() data.MonsterType { return m.mtype }

func (m *Monster) Family() data.Family { return m.family }

func (m *Monster) Behavior() data.Behavior { return m.behavior }

// IsBoss reports whether the monster is a boss.
func (m *Monster) IsBoss() bool { return m.mtype == data.MonsterBoss }

// Abilities returns the monster's special abilities.
func (m *Monster) Abilities() []data.SpecialAbility { return m.abilities }

func (m *Monster) SpecialAttackChance() float64 { return m.specialAttackChance }

func (m *Monster) SpecialCooldown() int { return m.specialCooldown }

// SetSpecialCooldown sets the special-attack cooldown (minimum 0).
func (m *Monster) SetSpecialCooldown(turns int) { m.specialCooldown = max(turns, 0) }

func (m *Monster) TurnsInCombat() int { return m.turnsInCombat }

// NextTurn increments the turns-in-combat counter.
func (m *Monster) NextTurn() { m.turnsInCombat++ }

func (m *Monster) ExperienceReward() int64 { return m.experienceReward }
