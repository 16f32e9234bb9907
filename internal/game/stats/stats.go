// Package stats computes effective combat values for combatants.
//
// Every function is a pure read of current state: base stats, level, equipped
// items and the status ledger. Nothing is cached, so removing an effect or an
// item changes the result on the next call.
package stats

import (
	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// Probability tuning.
const (
	BaseAccuracy           = 0.85
	AccuracyPerAgility     = 0.002
	HasteAccuracyBonus     = 0.15
	CursedAccuracyMalus    = 0.20
	ShieldAccuracyMalus    = 0.25
	RageCriticalBonus      = 0.20
	DodgePerAgility        = 0.001
	HasteDodgeBonus        = 0.10
	DefaultMonsterAccuracy = 0.75
)

// AttackPower returns effective attack, floored at 1.
//
// Players: base + floor((level-1) * class rate) + equipment + status modifiers
// + class threshold bonus. Monsters: base + status modifiers.
func AttackPower(c model.Combatant) int {
	return max(effective(c, effect.StatAttack), 1)
}

// DefensePower returns effective defense, floored at 0.
func DefensePower(c model.Combatant) int {
	return max(effective(c, effect.StatDefense), 0)
}

// MagicPower returns effective magic, floored at 0.
func MagicPower(c model.Combatant) int {
	return max(effective(c, effect.StatMagic), 0)
}

// Agility returns effective agility, floored at 0.
func Agility(c model.Combatant) int {
	return max(effective(c, effect.StatAgility), 0)
}

func effective(c model.Combatant, stat effect.Stat) int {
	ch := c.Base()
	s := ch.Stats()

	var v int
	switch stat {
	case effect.StatAttack:
		v = s.Attack
	case effect.StatDefense:
		v = s.Defense
	case effect.StatMagic:
		v = s.Magic
	case effect.StatAgility:
		v = s.Agility
	}
	v += effect.Modifiers(ch.Ledger())[stat]

	p, ok := c.(*model.Player)
	if !ok {
		return v
	}

	tmpl := data.GetClassTemplate(p.Class())
	if tmpl != nil {
		v += levelScaling(tmpl, stat, p.Level())
		v += tmpl.ThresholdBonus(stat, p.Level())
	}

	bonus := p.Inventory().EquipmentBonus()
	switch stat {
	case effect.StatAttack:
		v += bonus.Attack
	case effect.StatDefense:
		v += bonus.Defense
	case effect.StatMagic:
		v += bonus.Magic
	case effect.StatAgility:
		v += bonus.Agility
	}
	return v
}

func levelScaling(tmpl *data.ClassTemplate, stat effect.Stat, level int) int {
	var rate float64
	switch stat {
	case effect.StatAttack:
		rate = tmpl.AttackRate
	case effect.StatDefense:
		rate = tmpl.DefenseRate
	case effect.StatMagic:
		rate = tmpl.MagicRate
	default:
		return 0
	}
	if level <= 1 || rate <= 0 {
		return 0
	}
	return int(float64(level-1) * rate)
}

// Accuracy returns the attacker's chance to land a hit on defender, in [0, 1].
//
// Players use 0.85 + agility*0.002; monsters use their accuracy stat, or
// DefaultMonsterAccuracy when the stat is unset (zero or negative). Haste on
// the attacker adds 0.15, Cursed on the attacker subtracts 0.20 and Shield on
// the defender subtracts 0.25.
func Accuracy(attacker, defender model.Combatant) float64 {
	var acc float64
	switch a := attacker.(type) {
	case *model.Monster:
		acc = a.Stats().Accuracy
		if acc <= 0 {
			acc = DefaultMonsterAccuracy
		}
	default:
		acc = BaseAccuracy + float64(Agility(attacker))*AccuracyPerAgility
	}

	l := attacker.Base().Ledger()
	if l.Has(effect.Haste) {
		acc += HasteAccuracyBonus
	}
	if l.Has(effect.Cursed) {
		acc -= CursedAccuracyMalus
	}
	if defender != nil && defender.Base().Ledger().Has(effect.Shield) {
		acc -= ShieldAccuracyMalus
	}
	return clamp01(acc)
}

// CriticalChance returns the critical hit chance in [0, 1]: class or monster
// base, Rage bonus and equipment bonus.
func CriticalChance(c model.Combatant) float64 {
	ch := c.Base()
	crit := ch.Stats().CriticalChance
	if ch.Ledger().Has(effect.Rage) {
		crit += RageCriticalBonus
	}
	if p, ok := c.(*model.Player); ok {
		crit += p.Inventory().EquipmentBonus().CriticalChance
	}
	return clamp01(crit)
}

// BlockChance returns the chance to halve an incoming hit, in [0, 1].
func BlockChance(c model.Combatant) float64 {
	block := c.Base().Stats().BlockChance
	if p, ok := c.(*model.Player); ok {
		block += p.Inventory().EquipmentBonus().BlockChance
	}
	return clamp01(block)
}

// DodgeChance returns agility*0.001 plus class and Haste bonuses, in [0, 1].
// A frozen combatant cannot dodge.
func DodgeChance(c model.Combatant) float64 {
	l := c.Base().Ledger()
	if l.Has(effect.Freeze) {
		return 0
	}
	dodge := float64(Agility(c)) * DodgePerAgility
	if p, ok := c.(*model.Player); ok {
		if tmpl := data.GetClassTemplate(p.Class()); tmpl != nil {
			dodge += tmpl.DodgeBonus
		}
	}
	if l.Has(effect.Haste) {
		dodge += HasteDodgeBonus
	}
	return clamp01(dodge)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
