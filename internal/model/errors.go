package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEquipSlot = errors.New("invalid equip slot")
	ErrInventoryFull    = errors.New("inventory full")
	ErrItemNotFound     = errors.New("item not found")
	ErrSlotEmpty        = errors.New("equipment slot empty")
	ErrInvalidName      = errors.New("invalid combatant name")
	ErrUnknownClass     = errors.New("unknown class")
)

// InvalidEquipSlotError reports an attempt to equip an item into a slot
// that does not accept its kind. Matches ErrInvalidEquipSlot via errors.Is.
type InvalidEquipSlotError struct {
	Item string
	Kind ItemKind
	Slot Slot
}

func (e *InvalidEquipSlotError) Error() string {
	return fmt.Sprintf("cannot equip %s %q in %s slot", e.Kind, e.Item, e.Slot)
}

func (e *InvalidEquipSlotError) Is(target error) bool {
	return target == ErrInvalidEquipSlot
}
