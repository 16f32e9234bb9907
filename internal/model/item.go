package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ItemKind classifies items by what they do.
type ItemKind int8

const (
	ItemWeapon ItemKind = iota
	ItemArmor
	ItemAccessory
	ItemConsumable
)

func (k ItemKind) String() string {
	switch k {
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	case ItemAccessory:
		return "accessory"
	case ItemConsumable:
		return "consumable"
	default:
		return fmt.Sprintf("ItemKind(%d)", int8(k))
	}
}

// Slot is an equipment slot.
type Slot int8

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotAccessory
	SlotCount
)

func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	case SlotAccessory:
		return "accessory"
	default:
		return fmt.Sprintf("Slot(%d)", int8(s))
	}
}

// Valid reports whether s is a real equipment slot.
func (s Slot) Valid() bool { return s >= 0 && s < SlotCount }

// ItemBonus holds the stat contributions of an equipped item.
type ItemBonus struct {
	Attack  int
	Defense int
	Magic   int
	Agility int

	CriticalChance float64
	BlockChance    float64
}

// Item is a single item instance.
type Item struct {
	id         uuid.UUID
	templateID string
	name       string
	kind       ItemKind
	bonus      ItemBonus
}

// NewItem creates an item instance from template data.
func NewItem(templateID, name string, kind ItemKind, bonus ItemBonus) *Item {
	return &Item{
		id:         uuid.New(),
		templateID: templateID,
		name:       name,
		kind:       kind,
		bonus:      bonus,
	}
}

func (i *Item) ID() uuid.UUID { return i.id }

// TemplateID identifies the item definition (e.g. "health_potion").
func (i *Item) TemplateID() string { return i.templateID }

func (i *Item) Name() string { return i.name }

func (i *Item) Kind() ItemKind { return i.kind }

func (i *Item) Bonus() ItemBonus { return i.bonus }

// Slot returns the equipment slot for the item; false for consumables.
func (i *Item) Slot() (Slot, bool) {
	switch i.kind {
	case ItemWeapon:
		return SlotWeapon, true
	case ItemArmor:
		return SlotArmor, true
	case ItemAccessory:
		return SlotAccessory, true
	default:
		return 0, false
	}
}

// IsConsumable reports whether the item is used up on use.
func (i *Item) IsConsumable() bool { return i.kind == ItemConsumable }

func (i *Item) String() string {
	return fmt.Sprintf("%s (%s)", i.name, i.kind)
}
