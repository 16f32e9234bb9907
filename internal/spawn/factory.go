// Package spawn creates level-scaled monsters for encounters.
package spawn

import (
	"log/slog"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

// Rarity rolls for non-boss monsters.
const (
	EliteChance         = 0.15
	LegendaryChance     = 0.02
	LegendaryMinLevel   = 15
	eliteHealthFactor   = 1.5
	eliteAttackFactor   = 1.25
	legendHealthFactor  = 2.5
	legendAttackFactor  = 1.5
	legendDefenseFactor = 1.5
)

// Factory builds monsters from the archetype tables.
type Factory struct {
	rng    rng.Source
	logger *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the factory logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory creates a factory drawing from src.
func NewFactory(src rng.Source, opts ...Option) *Factory {
	f := &Factory{
		rng:    src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateMonsterForLevel returns a fresh monster scaled to level.
//
// Every 10th level yields the band's boss. Other levels pick a regular
// archetype from the band and roll its rarity: LEGENDARY (2%, level 15+),
// ELITE (15%) or BASIC. Levels below 1 are treated as 1.
func (f *Factory) CreateMonsterForLevel(level int) *model.Monster {
	level = max(level, 1)

	var (
		arch  data.Archetype
		mtype data.MonsterType
	)
	if data.IsBossLevel(level) {
		arch = data.BossArchetype(level)
		mtype = data.MonsterBoss
	} else {
		pool := data.RegularArchetypes(level)
		arch = pool[f.rng.IntN(len(pool))]
		mtype = f.rollType(level)
	}

	m := model.NewMonster(buildSpec(arch, level, mtype))
	f.logger.Debug("monster spawned",
		"monster", m.Name(),
		"level", level,
		"type", mtype.String(),
		"hp", m.MaxHP())
	return m
}

func (f *Factory) rollType(level int) data.MonsterType {
	roll := f.rng.Float64()
	legendaryCut := 0.0
	if level >= LegendaryMinLevel {
		legendaryCut = LegendaryChance
	}
	switch {
	case roll < legendaryCut:
		return data.MonsterLegendary
	case roll < legendaryCut+EliteChance:
		return data.MonsterElite
	default:
		return data.MonsterBasic
	}
}

func buildSpec(arch data.Archetype, level int, mtype data.MonsterType) model.MonsterSpec {
	hp := arch.BaseHealth + arch.HealthPerLevel*level
	attack := arch.BaseAttack + arch.AttackPerLevel*level
	defense := arch.BaseDefense + arch.DefensePerLevel*level
	name := arch.Name

	switch mtype {
	case data.MonsterElite:
		hp = int(float64(hp) * eliteHealthFactor)
		attack = int(float64(attack) * eliteAttackFactor)
		name = "Elite " + name
	case data.MonsterLegendary:
		hp = int(float64(hp) * legendHealthFactor)
		attack = int(float64(attack) * legendAttackFactor)
		defense = int(float64(defense) * legendDefenseFactor)
		name = "Legendary " + name
	case data.MonsterBasic, data.MonsterBoss:
	}

	return model.MonsterSpec{
		Name:     name,
		Level:    level,
		Type:     mtype,
		Family:   arch.Family,
		Behavior: arch.Behavior,
		MaxHP:    hp,
		Stats: model.BaseStats{
			Attack:         attack,
			Defense:        defense,
			Magic:          arch.BaseMagic,
			Agility:        arch.BaseAgility,
			Accuracy:       arch.Accuracy,
			CriticalChance: arch.CriticalChance,
		},
		SpecialAttackChance: arch.SpecialAttackChance,
		Abilities:           arch.Abilities,
		ExperienceReward:    data.ExperienceReward(level, mtype),
	}
}
