package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/udisondev/dungeoncrawl/internal/data"
)

// Player is the user-controlled combatant.
// Adds class, mana, experience, inventory and run counters to Character.
type Player struct {
	*Character

	class data.Class

	experience int64
	expToNext  int64

	currentMana int
	maxMana     int

	inventory *Inventory

	roomsExplored    int
	monstersDefeated int
	dungeonLevel     int

	// Set by a defensive stance; halves the next incoming monster hit.
	guarding bool
}

// NewPlayer creates a level 1 player seeded from the class template.
func NewPlayer(name string, class data.Class, inventoryCapacity int) (*Player, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters, got %q: %w", name, ErrInvalidName)
	}
	tmpl := data.GetClassTemplate(class)
	if tmpl == nil {
		return nil, fmt.Errorf("class %d: %w", class, ErrUnknownClass)
	}

	stats := BaseStats{
		Attack:         tmpl.BaseAttack,
		Defense:        tmpl.BaseDefense,
		Magic:          tmpl.BaseMagic,
		Agility:        tmpl.BaseAgility,
		Luck:           tmpl.BaseLuck,
		CriticalChance: tmpl.CriticalChance,
		BlockChance:    tmpl.BlockChance,
	}

	return &Player{
		Character:    NewCharacter(name, 1, tmpl.BaseHealth, stats),
		class:        class,
		expToNext:    data.ExperienceToNextLevel(1),
		currentMana:  tmpl.BaseMana,
		maxMana:      tmpl.BaseMana,
		inventory:    NewInventory(inventoryCapacity),
		dungeonLevel: 1,
	}, nil
}

func (p *Player) Class() data.Class { return p.class }

func (p *Player) Experience() int64 { return p.experience }

// SetExperience sets accumulated experience (minimum 0). Does not level up.
func (p *Player) SetExperience(exp int64) {
	p.experience = max(exp, 0)
}

// ExperienceToNextLevel returns the experience needed for the next level.
func (p *Player) ExperienceToNextLevel() int64 { return p.expToNext }

func (p *Player) SetExperienceToNextLevel(v int64) {
	p.expToNext = max(v, 1)
}

func (p *Player) Mana() int { return p.currentMana }

func (p *Player) MaxMana() int { return p.maxMana }

// SetMana sets current mana, clamped to [0, maxMana].
func (p *Player) SetMana(mana int) {
	p.currentMana = min(max(mana, 0), p.maxMana)
}

// SetMaxMana sets max mana (minimum 0) and trims current mana if needed.
func (p *Player) SetMaxMana(maxMana int) {
	p.maxMana = max(maxMana, 0)
	p.currentMana = min(p.currentMana, p.maxMana)
}

// SpendMana deducts cost if affordable.
func (p *Player) SpendMana(cost int) bool {
	if cost < 0 || p.currentMana < cost {
		return false
	}
	p.currentMana -= cost
	return true
}

// RestoreMana adds up to amount mana and returns what was restored.
func (p *Player) RestoreMana(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.currentMana
	p.SetMana(before + amount)
	return p.currentMana - before
}

func (p *Player) Inventory() *Inventory { return p.inventory }

// Equip moves an inventory item into slot s.
func (p *Player) Equip(itemID uuid.UUID, s Slot) error {
	return p.inventory.Equip(itemID, s)
}

// Unequip moves the item in slot s back to the inventory.
func (p *Player) Unequip(s Slot) (*Item, error) {
	return p.inventory.Unequip(s)
}

// EquippedWeapon returns the equipped weapon, or nil.
func (p *Player) EquippedWeapon() *Item { return p.inventory.Equipped(SlotWeapon) }

func (p *Player) RoomsExplored() int { return p.roomsExplored }

func (p *Player) SetRoomsExplored(n int) { p.roomsExplored = max(n, 0) }

// ExploreRoom increments the explored room counter.
func (p *Player) ExploreRoom() { p.roomsExplored++ }

func (p *Player) MonstersDefeated() int { return p.monstersDefeated }

func (p *Player) SetMonstersDefeated(n int) { p.monstersDefeated = max(n, 0) }

// RecordKill increments the defeated monster counter.
func (p *Player) RecordKill() { p.monstersDefeated++ }

func (p *Player) DungeonLevel() int { return p.dungeonLevel }

func (p *Player) SetDungeonLevel(level int) { p.dungeonLevel = max(level, 1) }

func (p *Player) Guarding() bool { return p.guarding }

func (p *Player) SetGuarding(v bool) { p.guarding = v }

// ConsumeGuard clears the guard flag and reports whether it was set.
func (p *Player) ConsumeGuard() bool {
	g := p.guarding
	p.guarding = false
	return g
}
