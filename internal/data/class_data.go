package data

import (
	"fmt"
	"strings"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
)

// Class is a playable character class.
type Class int8

const (
	ClassWarrior Class = iota
	ClassMage
	ClassRogue
	ClassCleric

	classCount
)

// Classes lists every playable class.
var Classes = [...]Class{ClassWarrior, ClassMage, ClassRogue, ClassCleric}

// String returns the class display name.
func (c Class) String() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassMage:
		return "Mage"
	case ClassRogue:
		return "Rogue"
	case ClassCleric:
		return "Cleric"
	default:
		return fmt.Sprintf("Class(%d)", int8(c))
	}
}

// Valid reports whether c is a known class.
func (c Class) Valid() bool {
	return c >= 0 && c < classCount
}

// ParseClass resolves a case-insensitive class name.
func ParseClass(name string) (Class, error) {
	for _, c := range Classes {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown class %q", name)
}

// StatRange is a half-open roll range [Min, Max).
type StatRange struct {
	Min, Max int
}

// LevelUpRanges holds the per-level stat roll for one class.
type LevelUpRanges struct {
	Health  StatRange
	Mana    StatRange
	Attack  StatRange
	Defense StatRange
	Magic   StatRange
	Agility StatRange
	Luck    StatRange
}

// ClassTemplate holds the level-1 stats and scaling rules of a class.
type ClassTemplate struct {
	Class Class

	// Level-1 base stats.
	BaseHealth  int
	BaseMana    int
	BaseAttack  int
	BaseDefense int
	BaseMagic   int
	BaseAgility int
	BaseLuck    int

	// Per-level scaling on top of base stats, applied as floor((level-1) * rate).
	AttackRate  float64
	DefenseRate float64
	MagicRate   float64

	// Threshold bonus: past ThresholdLevel the class gains level/ThresholdDivisor
	// on ThresholdStat. Zero divisor disables it.
	ThresholdStat    effect.Stat
	ThresholdLevel   int
	ThresholdDivisor int

	CriticalChance float64
	BlockChance    float64
	DodgeBonus     float64

	LevelUp LevelUpRanges

	// SPECIAL_ABILITY parameters.
	SpecialName       string
	SpecialMultiplier float64
	SpecialUsesMagic  bool
	SpecialEffect     effect.Kind
	SpecialOnSelf     bool
}

var classTemplates = [classCount]ClassTemplate{
	ClassWarrior: {
		Class:      ClassWarrior,
		BaseHealth: 120, BaseMana: 30,
		BaseAttack: 15, BaseDefense: 10, BaseMagic: 3, BaseAgility: 8, BaseLuck: 5,
		AttackRate: 1.0, DefenseRate: 0.5, MagicRate: 0,
		ThresholdStat: effect.StatAttack, ThresholdLevel: 5, ThresholdDivisor: 3,
		CriticalChance: 0.15, BlockChance: 0.25, DodgeBonus: 0,
		LevelUp: LevelUpRanges{
			Health:  StatRange{20, 30},
			Mana:    StatRange{3, 6},
			Attack:  StatRange{3, 6},
			Defense: StatRange{2, 4},
			Magic:   StatRange{0, 2},
			Agility: StatRange{1, 3},
			Luck:    StatRange{0, 2},
		},
		SpecialName: "Shield Bash", SpecialMultiplier: 2.0, SpecialEffect: effect.Stun,
	},
	ClassMage: {
		Class:      ClassMage,
		BaseHealth: 80, BaseMana: 100,
		BaseAttack: 6, BaseDefense: 5, BaseMagic: 18, BaseAgility: 10, BaseLuck: 6,
		AttackRate: 0.25, DefenseRate: 0.25, MagicRate: 1.0,
		CriticalChance: 0.15, BlockChance: 0.05, DodgeBonus: 0,
		LevelUp: LevelUpRanges{
			Health:  StatRange{10, 16},
			Mana:    StatRange{10, 16},
			Attack:  StatRange{1, 3},
			Defense: StatRange{1, 2},
			Magic:   StatRange{4, 8},
			Agility: StatRange{1, 3},
			Luck:    StatRange{1, 3},
		},
		SpecialName: "Fireball", SpecialMultiplier: 2.5, SpecialUsesMagic: true, SpecialEffect: effect.Burn,
	},
	ClassRogue: {
		Class:      ClassRogue,
		BaseHealth: 95, BaseMana: 50,
		BaseAttack: 12, BaseDefense: 7, BaseMagic: 5, BaseAgility: 16, BaseLuck: 12,
		AttackRate: 0.75, DefenseRate: 0.25, MagicRate: 0.1,
		ThresholdStat: effect.StatAttack, ThresholdLevel: 8, ThresholdDivisor: 4,
		CriticalChance: 0.25, BlockChance: 0.10, DodgeBonus: 0.10,
		LevelUp: LevelUpRanges{
			Health:  StatRange{14, 20},
			Mana:    StatRange{5, 8},
			Attack:  StatRange{2, 5},
			Defense: StatRange{1, 3},
			Magic:   StatRange{1, 2},
			Agility: StatRange{3, 5},
			Luck:    StatRange{2, 4},
		},
		SpecialName: "Envenomed Strike", SpecialMultiplier: 1.8, SpecialEffect: effect.Poison,
	},
	ClassCleric: {
		Class:      ClassCleric,
		BaseHealth: 100, BaseMana: 80,
		BaseAttack: 9, BaseDefense: 9, BaseMagic: 12, BaseAgility: 8, BaseLuck: 8,
		AttackRate: 0.5, DefenseRate: 0.5, MagicRate: 0.5,
		ThresholdStat: effect.StatDefense, ThresholdLevel: 5, ThresholdDivisor: 4,
		CriticalChance: 0.15, BlockChance: 0.15, DodgeBonus: 0,
		LevelUp: LevelUpRanges{
			Health:  StatRange{16, 24},
			Mana:    StatRange{8, 12},
			Attack:  StatRange{1, 4},
			Defense: StatRange{2, 4},
			Magic:   StatRange{3, 6},
			Agility: StatRange{1, 2},
			Luck:    StatRange{1, 3},
		},
		SpecialName: "Holy Smite", SpecialMultiplier: 1.5, SpecialUsesMagic: true,
		SpecialEffect: effect.Blessed, SpecialOnSelf: true,
	},
}

// GetClassTemplate returns the template for c, or nil for unknown classes.
func GetClassTemplate(c Class) *ClassTemplate {
	if !c.Valid() {
		return nil
	}
	return &classTemplates[c]
}

// ThresholdBonus returns the class-threshold bonus on stat at level.
func (t *ClassTemplate) ThresholdBonus(stat effect.Stat, level int) int {
	if t.ThresholdDivisor <= 0 || t.ThresholdStat != stat || level <= t.ThresholdLevel {
		return 0
	}
	return level / t.ThresholdDivisor
}
