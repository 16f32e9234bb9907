package data

import (
	"fmt"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
)

// MonsterType is the rarity tier of a monster.
type MonsterType int8

const (
	MonsterBasic MonsterType = iota
	MonsterElite
	MonsterBoss
	MonsterLegendary
)

func (t MonsterType) String() string {
	switch t {
	case MonsterBasic:
		return "BASIC"
	case MonsterElite:
		return "ELITE"
	case MonsterBoss:
		return "BOSS"
	case MonsterLegendary:
		return "LEGENDARY"
	default:
		return fmt.Sprintf("MonsterType(%d)", int8(t))
	}
}

// Family is the monster taxonomy used for flavor and AI.
type Family int8

const (
	FamilyBeast Family = iota
	FamilyHumanoid
	FamilyUndead
	FamilyDemon
	FamilyDragon
	FamilyElemental
	FamilyConstruct
)

func (f Family) String() string {
	switch f {
	case FamilyBeast:
		return "Beast"
	case FamilyHumanoid:
		return "Humanoid"
	case FamilyUndead:
		return "Undead"
	case FamilyDemon:
		return "Demon"
	case FamilyDragon:
		return "Dragon"
	case FamilyElemental:
		return "Elemental"
	case FamilyConstruct:
		return "Construct"
	default:
		return fmt.Sprintf("Family(%d)", int8(f))
	}
}

// Behavior tags monster AI temperament.
type Behavior int8

const (
	BehaviorAggressive Behavior = iota
	BehaviorDefensive
	BehaviorCunning
)

func (b Behavior) String() string {
	switch b {
	case BehaviorAggressive:
		return "aggressive"
	case BehaviorDefensive:
		return "defensive"
	case BehaviorCunning:
		return "cunning"
	default:
		return fmt.Sprintf("Behavior(%d)", int8(b))
	}
}

// SpecialAbility is a monster special attack: damage multiplier plus effects on the target.
type SpecialAbility struct {
	Name       string
	Multiplier float64
	Effects    []effect.Kind
}

// Archetype is a monster template scaled by level at spawn time.
type Archetype struct {
	Name     string
	Family   Family
	Behavior Behavior

	BaseHealth, HealthPerLevel   int
	BaseAttack, AttackPerLevel   int
	BaseDefense, DefensePerLevel int
	BaseMagic                    int
	BaseAgility                  int

	Accuracy            float64
	CriticalChance      float64
	SpecialAttackChance float64
	Abilities           []SpecialAbility
}

// Level bands. Band i covers levels bandFloor[i]..bandFloor[i+1]-1; the last band is open.
var bandFloor = [...]int{1, 11, 21, 31}

// BandForLevel returns the archetype band index for level.
func BandForLevel(level int) int {
	band := 0
	for i, floor := range bandFloor {
		if level >= floor {
			band = i
		}
	}
	return band
}

var regularArchetypes = [len(bandFloor)][]Archetype{
	{ // 1-10
		{
			Name: "Goblin", Family: FamilyHumanoid, Behavior: BehaviorCunning,
			BaseHealth: 30, HealthPerLevel: 8, BaseAttack: 6, AttackPerLevel: 2, BaseDefense: 2, DefensePerLevel: 1,
			BaseAgility: 12, Accuracy: 0.80, CriticalChance: 0.05, SpecialAttackChance: 0.15,
			Abilities: []SpecialAbility{{Name: "Dirty Trick", Multiplier: 1.3, Effects: []effect.Kind{effect.Stun}}},
		},
		{
			Name: "Giant Rat", Family: FamilyBeast, Behavior: BehaviorAggressive,
			BaseHealth: 24, HealthPerLevel: 6, BaseAttack: 5, AttackPerLevel: 2, BaseDefense: 1, DefensePerLevel: 1,
			BaseAgility: 14, Accuracy: 0.85, CriticalChance: 0.05, SpecialAttackChance: 0.10,
			Abilities: []SpecialAbility{{Name: "Plague Bite", Multiplier: 1.2, Effects: []effect.Kind{effect.Poison}}},
		},
		{
			Name: "Skeleton", Family: FamilyUndead, Behavior: BehaviorDefensive,
			BaseHealth: 35, HealthPerLevel: 8, BaseAttack: 7, AttackPerLevel: 2, BaseDefense: 3, DefensePerLevel: 1,
			BaseAgility: 6, Accuracy: 0.75, CriticalChance: 0.05, SpecialAttackChance: 0.10,
			Abilities: []SpecialAbility{{Name: "Bone Crush", Multiplier: 1.5}},
		},
	},
	{ // 11-20
		{
			Name: "Orc Warrior", Family: FamilyHumanoid, Behavior: BehaviorAggressive,
			BaseHealth: 60, HealthPerLevel: 10, BaseAttack: 12, AttackPerLevel: 2, BaseDefense: 6, DefensePerLevel: 1,
			BaseAgility: 8, Accuracy: 0.80, CriticalChance: 0.08, SpecialAttackChance: 0.15,
			Abilities: []SpecialAbility{{Name: "Berserk Cleave", Multiplier: 1.6, Effects: []effect.Kind{effect.Rage}}},
		},
		{
			Name: "Dire Wolf", Family: FamilyBeast, Behavior: BehaviorAggressive,
			BaseHealth: 50, HealthPerLevel: 9, BaseAttack: 13, AttackPerLevel: 2, BaseDefense: 4, DefensePerLevel: 1,
			BaseAgility: 16, Accuracy: 0.85, CriticalChance: 0.10, SpecialAttackChance: 0.15,
			Abilities: []SpecialAbility{{Name: "Savage Maul", Multiplier: 1.5}},
		},
		{
			Name: "Ghoul", Family: FamilyUndead, Behavior: BehaviorCunning,
			BaseHealth: 55, HealthPerLevel: 9, BaseAttack: 11, AttackPerLevel: 2, BaseDefense: 5, DefensePerLevel: 1,
			BaseAgility: 10, Accuracy: 0.80, CriticalChance: 0.08, SpecialAttackChance: 0.20,
			Abilities: []SpecialAbility{{Name: "Paralytic Claw", Multiplier: 1.3, Effects: []effect.Kind{effect.Freeze, effect.Poison}}},
		},
	},
	{ // 21-30
		{
			Name: "Troll", Family: FamilyHumanoid, Behavior: BehaviorDefensive,
			BaseHealth: 110, HealthPerLevel: 12, BaseAttack: 18, AttackPerLevel: 3, BaseDefense: 10, DefensePerLevel: 1,
			BaseAgility: 6, Accuracy: 0.75, CriticalChance: 0.08, SpecialAttackChance: 0.15,
			Abilities: []SpecialAbility{{Name: "Boulder Toss", Multiplier: 1.8, Effects: []effect.Kind{effect.Stun}}},
		},
		{
			Name: "Wraith", Family: FamilyUndead, Behavior: BehaviorCunning,
			BaseHealth: 80, HealthPerLevel: 10, BaseAttack: 16, AttackPerLevel: 3, BaseDefense: 8, DefensePerLevel: 1,
			BaseMagic: 12, BaseAgility: 14, Accuracy: 0.85, CriticalChance: 0.10, SpecialAttackChance: 0.20,
			Abilities: []SpecialAbility{{Name: "Soul Drain", Multiplier: 1.5, Effects: []effect.Kind{effect.Cursed}}},
		},
		{
			Name: "Fire Elemental", Family: FamilyElemental, Behavior: BehaviorAggressive,
			BaseHealth: 90, HealthPerLevel: 10, BaseAttack: 17, AttackPerLevel: 3, BaseDefense: 9, DefensePerLevel: 1,
			BaseMagic: 15, BaseAgility: 10, Accuracy: 0.80, CriticalChance: 0.10, SpecialAttackChance: 0.15,
			Abilities: []SpecialAbility{{Name: "Immolate", Multiplier: 1.6, Effects: []effect.Kind{effect.Burn}}},
		},
	},
	{ // 31+
		{
			Name: "Demon", Family: FamilyDemon, Behavior: BehaviorAggressive,
			BaseHealth: 160, HealthPerLevel: 14, BaseAttack: 24, AttackPerLevel: 3, BaseDefense: 14, DefensePerLevel: 2,
			BaseMagic: 18, BaseAgility: 12, Accuracy: 0.85, CriticalChance: 0.12, SpecialAttackChance: 0.20,
			Abilities: []SpecialAbility{{Name: "Hellfire", Multiplier: 1.8, Effects: []effect.Kind{effect.Burn, effect.Cursed}}},
		},
		{
			Name: "Stone Golem", Family: FamilyConstruct, Behavior: BehaviorDefensive,
			BaseHealth: 200, HealthPerLevel: 16, BaseAttack: 20, AttackPerLevel: 3, BaseDefense: 20, DefensePerLevel: 2,
			BaseAgility: 4, Accuracy: 0.75, CriticalChance: 0.05, SpecialAttackChance: 0.10,
			Abilities: []SpecialAbility{{Name: "Earthshatter", Multiplier: 2.0, Effects: []effect.Kind{effect.Stun}}},
		},
		{
			Name: "Wyvern", Family: FamilyDragon, Behavior: BehaviorCunning,
			BaseHealth: 150, HealthPerLevel: 14, BaseAttack: 25, AttackPerLevel: 3, BaseDefense: 12, DefensePerLevel: 2,
			BaseAgility: 18, Accuracy: 0.85, CriticalChance: 0.12, SpecialAttackChance: 0.20,
			Abilities: []SpecialAbility{{Name: "Venom Tail", Multiplier: 1.7, Effects: []effect.Kind{effect.Poison}}},
		},
	},
}

var bossArchetypes = [len(bandFloor)]Archetype{
	{
		Name: "Goblin King", Family: FamilyHumanoid, Behavior: BehaviorCunning,
		BaseHealth: 120, HealthPerLevel: 25, BaseAttack: 14, AttackPerLevel: 4, BaseDefense: 6, DefensePerLevel: 2,
		BaseAgility: 10, Accuracy: 0.85, CriticalChance: 0.10, SpecialAttackChance: 0.20,
		Abilities: []SpecialAbility{
			{Name: "Royal Decree", Multiplier: 1.5, Effects: []effect.Kind{effect.Cursed}},
			{Name: "Crown Smash", Multiplier: 2.0, Effects: []effect.Kind{effect.Stun}},
		},
	},
	{
		Name: "Orc Warlord", Family: FamilyHumanoid, Behavior: BehaviorAggressive,
		BaseHealth: 200, HealthPerLevel: 30, BaseAttack: 20, AttackPerLevel: 5, BaseDefense: 10, DefensePerLevel: 2,
		BaseAgility: 10, Accuracy: 0.85, CriticalChance: 0.12, SpecialAttackChance: 0.20,
		Abilities: []SpecialAbility{
			{Name: "War Cry", Multiplier: 1.4, Effects: []effect.Kind{effect.Stun}},
			{Name: "Execution", Multiplier: 2.2},
		},
	},
	{
		Name: "Lich Lord", Family: FamilyUndead, Behavior: BehaviorCunning,
		BaseHealth: 260, HealthPerLevel: 32, BaseAttack: 24, AttackPerLevel: 5, BaseDefense: 14, DefensePerLevel: 2,
		BaseMagic: 30, BaseAgility: 12, Accuracy: 0.90, CriticalChance: 0.12, SpecialAttackChance: 0.25,
		Abilities: []SpecialAbility{
			{Name: "Death Coil", Multiplier: 1.8, Effects: []effect.Kind{effect.Cursed, effect.Poison}},
			{Name: "Frost Nova", Multiplier: 1.5, Effects: []effect.Kind{effect.Freeze}},
		},
	},
	{
		Name: "Ancient Dragon", Family: FamilyDragon, Behavior: BehaviorAggressive,
		BaseHealth: 400, HealthPerLevel: 40, BaseAttack: 32, AttackPerLevel: 6, BaseDefense: 20, DefensePerLevel: 3,
		BaseMagic: 40, BaseAgility: 14, Accuracy: 0.90, CriticalChance: 0.15, SpecialAttackChance: 0.25,
		Abilities: []SpecialAbility{
			{Name: "Dragon Breath", Multiplier: 2.5, Effects: []effect.Kind{effect.Burn}},
			{Name: "Tail Sweep", Multiplier: 1.8, Effects: []effect.Kind{effect.Stun}},
		},
	},
}

// RegularArchetypes returns the non-boss archetypes for level's band.
func RegularArchetypes(level int) []Archetype {
	return regularArchetypes[BandForLevel(level)]
}

// BossArchetype returns the boss archetype for level's band.
func BossArchetype(level int) Archetype {
	return bossArchetypes[BandForLevel(level)]
}

// IsBossLevel reports whether level spawns a boss (every 10th level).
func IsBossLevel(level int) bool {
	return level > 0 && level%10 == 0
}

// ExperienceReward returns the experience granted for defeating a monster.
func ExperienceReward(level int, t MonsterType) int64 {
	base := int64(level) * 15
	switch t {
	case MonsterElite:
		return base * 2
	case MonsterBoss:
		return base * 5
	case MonsterLegendary:
		return base * 4
	default:
		return base
	}
}
