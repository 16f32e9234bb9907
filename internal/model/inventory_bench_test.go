package model

import "testing"

// --- helpers ---

func benchWeapon() *Item {
	return NewItem("bench_sword", "Bench Sword", ItemWeapon, ItemBonus{Attack: 5})
}

func benchFullInventory(b *testing.B) *Inventory {
	b.Helper()
	inv := NewInventory(DefaultInventoryCapacity)
	for range DefaultInventoryCapacity {
		if err := inv.Add(benchWeapon()); err != nil {
			b.Fatal(err)
		}
	}
	return inv
}

// --- Inventory benchmarks ---

// BenchmarkInventory_Find looks up the last item of a full bag.
func BenchmarkInventory_Find(b *testing.B) {
	inv := benchFullInventory(b)
	last := inv.Items()[inv.Count()-1].ID()

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = inv.Find(last)
	}
}

// BenchmarkInventory_EquipSwap swaps two weapons in and out of the weapon slot.
func BenchmarkInventory_EquipSwap(b *testing.B) {
	inv := NewInventory(DefaultInventoryCapacity)
	a, c := benchWeapon(), benchWeapon()
	_ = inv.Add(a)
	_ = inv.Add(c)

	b.ReportAllocs()
	b.ResetTimer()
	for i := range b.N {
		id := a.ID()
		if i%2 == 1 {
			id = c.ID()
		}
		if err := inv.Equip(id, SlotWeapon); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInventory_EquipmentBonus(b *testing.B) {
	inv := NewInventory(DefaultInventoryCapacity)
	for _, it := range []*Item{
		benchWeapon(),
		NewItem("bench_mail", "Bench Mail", ItemArmor, ItemBonus{Defense: 7}),
		NewItem("bench_ring", "Bench Ring", ItemAccessory, ItemBonus{CriticalChance: 0.05}),
	} {
		_ = inv.Add(it)
		s, _ := it.Slot()
		_ = inv.Equip(it.ID(), s)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = inv.EquipmentBonus()
	}
}
