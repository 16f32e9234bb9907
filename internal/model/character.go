package model

import (
	"github.com/google/uuid"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
)

// BaseStats are the stored (non-derived) combat stats of a combatant.
// Effective values are computed by the stats package at query time.
type BaseStats struct {
	Attack  int
	Defense int
	Magic   int
	Agility int
	Luck    int

	// Accuracy is the monster hit chance. Zero means unset and resolves to
	// stats.DefaultMonsterAccuracy; players derive accuracy from agility instead.
	Accuracy       float64
	CriticalChance float64
	BlockChance    float64
}

// Combatant is a Player or a Monster.
type Combatant interface {
	Base() *Character
}

// Character is the state shared by players and monsters: identity, health,
// base stats and the status ledger.
//
// Invariant: 0 <= currentHP <= maxHP. currentHP == 0 means dead (terminal).
type Character struct {
	id    uuid.UUID
	name  string
	level int

	currentHP int
	maxHP     int

	stats  BaseStats
	ledger *effect.Ledger
}

// NewCharacter creates a character at full health.
func NewCharacter(name string, level, maxHP int, stats BaseStats) *Character {
	if level < 1 {
		level = 1
	}
	if maxHP < 1 {
		maxHP = 1
	}
	return &Character{
		id:        uuid.New(),
		name:      name,
		level:     level,
		currentHP: maxHP,
		maxHP:     maxHP,
		stats:     stats,
		ledger:    effect.NewLedger(),
	}
}

// Base implements Combatant.
func (c *Character) Base() *Character { return c }

func (c *Character) ID() uuid.UUID { return c.id }

func (c *Character) Name() string { return c.name }

func (c *Character) Level() int { return c.level }

// SetLevel sets the level (minimum 1).
func (c *Character) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	c.level = level
}

func (c *Character) CurrentHP() int { return c.currentHP }

func (c *Character) MaxHP() int { return c.maxHP }

// SetCurrentHP sets health, clamped to [0, maxHP].
func (c *Character) SetCurrentHP(hp int) {
	c.currentHP = ClampHealth(hp, c.maxHP)
}

// SetMaxHP sets max health (minimum 1) and trims current health if needed.
func (c *Character) SetMaxHP(maxHP int) {
	if maxHP < 1 {
		maxHP = 1
	}
	c.maxHP = maxHP
	c.currentHP = ClampHealth(c.currentHP, c.maxHP)
}

// TakeDamage removes up to amount health and returns what was actually lost.
func (c *Character) TakeDamage(amount int) int {
	amount = ClampDamage(amount)
	before := ClampHealth(c.currentHP, c.maxHP)
	c.currentHP = ClampHealth(before-amount, c.maxHP)
	return before - c.currentHP
}

// Heal restores up to amount health and returns what was actually restored.
// Dead characters cannot be healed.
func (c *Character) Heal(amount int) int {
	if c.IsDead() {
		return 0
	}
	amount = ClampDamage(amount)
	before := ClampHealth(c.currentHP, c.maxHP)
	c.currentHP = ClampHealth(before+amount, c.maxHP)
	return c.currentHP - before
}

// RestoreFullHealth sets health to max. No-op on dead characters.
func (c *Character) RestoreFullHealth() {
	if c.IsDead() {
		return
	}
	c.currentHP = c.maxHP
}

func (c *Character) IsDead() bool { return c.currentHP <= 0 }

func (c *Character) IsAlive() bool { return !c.IsDead() }

// HPPercentage returns current/max health in [0.0, 1.0].
func (c *Character) HPPercentage() float64 {
	if c.maxHP == 0 {
		return 0
	}
	return float64(c.currentHP) / float64(c.maxHP)
}

// Stats returns a copy of the base stats.
func (c *Character) Stats() BaseStats { return c.stats }

// SetStats replaces the base stats.
func (c *Character) SetStats(s BaseStats) { c.stats = s }

// Ledger returns the status effect ledger.
func (c *Character) Ledger() *effect.Ledger { return c.ledger }

// HasEffect reports whether effect k is active.
func (c *Character) HasEffect(k effect.Kind) bool { return c.ledger.Has(k) }

// CanAct reports whether the character may take its turn (alive, not stunned or frozen).
func (c *Character) CanAct() bool {
	return c.IsAlive() && !c.ledger.Has(effect.Stun) && !c.ledger.Has(effect.Freeze)
}
