package model

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultInventoryCapacity is the bag size for new players.
const DefaultInventoryCapacity = 20

// Inventory holds a player's carried items (bag) and equipped items (paperdoll).
//
// Invariant: an item is in at most one of bag or paperdoll, and only in the
// paperdoll slot matching its kind.
type Inventory struct {
	capacity  int
	bag       []*Item
	paperdoll [SlotCount]*Item
}

// NewInventory creates an empty inventory. capacity <= 0 uses the default.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return &Inventory{
		capacity: capacity,
		bag:      make([]*Item, 0, capacity),
	}
}

func (inv *Inventory) Capacity() int { return inv.capacity }

// Count returns the number of unequipped items.
func (inv *Inventory) Count() int { return len(inv.bag) }

// IsFull reports whether the bag has no room.
func (inv *Inventory) IsFull() bool { return len(inv.bag) >= inv.capacity }

// Items returns a copy of the bag contents in insertion order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.bag))
	copy(out, inv.bag)
	return out
}

// Add puts an item into the bag.
func (inv *Inventory) Add(item *Item) error {
	if item == nil {
		return fmt.Errorf("adding item: %w", ErrItemNotFound)
	}
	if inv.IsFull() {
		return fmt.Errorf("adding %s: %w", item.Name(), ErrInventoryFull)
	}
	inv.bag = append(inv.bag, item)
	return nil
}

// Find returns the bag item with the given id, or nil.
func (inv *Inventory) Find(id uuid.UUID) *Item {
	if i := inv.indexOf(id); i >= 0 {
		return inv.bag[i]
	}
	return nil
}

// FindByTemplate returns the first bag item with the given template id, or nil.
func (inv *Inventory) FindByTemplate(templateID string) *Item {
	for _, it := range inv.bag {
		if it.TemplateID() == templateID {
			return it
		}
	}
	return nil
}

// Remove takes an item out of the bag.
func (inv *Inventory) Remove(id uuid.UUID) (*Item, error) {
	i := inv.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("removing item %s: %w", id, ErrItemNotFound)
	}
	item := inv.bag[i]
	inv.bag = append(inv.bag[:i], inv.bag[i+1:]...)
	return item, nil
}

// Equipped returns the item in slot s, or nil.
func (inv *Inventory) Equipped(s Slot) *Item {
	if !s.Valid() {
		return nil
	}
	return inv.paperdoll[s]
}

// EquippedItems returns all equipped items in slot order.
func (inv *Inventory) EquippedItems() []*Item {
	out := make([]*Item, 0, SlotCount)
	for _, it := range inv.paperdoll {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Equip moves a bag item into slot s. Any item already in the slot goes back
// to the bag in its place.
func (inv *Inventory) Equip(id uuid.UUID, s Slot) error {
	i := inv.indexOf(id)
	if i < 0 {
		return fmt.Errorf("equipping item %s: %w", id, ErrItemNotFound)
	}
	item := inv.bag[i]
	want, ok := item.Slot()
	if !s.Valid() || !ok || want != s {
		return &InvalidEquipSlotError{Item: item.Name(), Kind: item.Kind(), Slot: s}
	}

	prev := inv.paperdoll[s]
	inv.paperdoll[s] = item
	if prev != nil {
		inv.bag[i] = prev
	} else {
		inv.bag = append(inv.bag[:i], inv.bag[i+1:]...)
	}
	return nil
}

// Unequip moves the item in slot s back to the bag.
func (inv *Inventory) Unequip(s Slot) (*Item, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unequipping %s: %w", s, ErrInvalidEquipSlot)
	}
	item := inv.paperdoll[s]
	if item == nil {
		return nil, fmt.Errorf("unequipping %s: %w", s, ErrSlotEmpty)
	}
	if inv.IsFull() {
		return nil, fmt.Errorf("unequipping %s: %w", item.Name(), ErrInventoryFull)
	}
	inv.paperdoll[s] = nil
	inv.bag = append(inv.bag, item)
	return item, nil
}

// EquipmentBonus sums the bonuses of all equipped items.
func (inv *Inventory) EquipmentBonus() ItemBonus {
	var b ItemBonus
	for _, it := range inv.paperdoll {
		if it == nil {
			continue
		}
		ib := it.Bonus()
		b.Attack += ib.Attack
		b.Defense += ib.Defense
		b.Magic += ib.Magic
		b.Agility += ib.Agility
		b.CriticalChance += ib.CriticalChance
		b.BlockChance += ib.BlockChance
	}
	return b
}

func (inv *Inventory) indexOf(id uuid.UUID) int {
	for i, it := range inv.bag {
		if it.ID() == id {
			return i
		}
	}
	return -1
}
