package sim

import (
	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/combat"
	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
	"github.com/udisondev/dungeoncrawl/internal/game/itemhandler"
)

// PotionThreshold is the health fraction below which the player drinks a potion.
const PotionThreshold = 0.35

// takeTurn plays one round with a fixed greedy policy: heal when low,
// spend mana on the class special, then fall back to the class staple attack.
func takeTurn(enc *encounter.Encounter, cfg combat.Config) (encounter.TurnReport, error) {
	p := enc.Player()

	if p.HPPercentage() < PotionThreshold {
		if potion := p.Inventory().FindByTemplate(itemhandler.HealthPotion); potion != nil {
			return enc.UseItem(potion.ID())
		}
	}
	return enc.PlayerTurn(chooseAttack(enc, cfg))
}

func chooseAttack(enc *encounter.Encounter, cfg combat.Config) combat.AttackType {
	p := enc.Player()
	if p.Mana() >= cfg.SpecialManaCost {
		return combat.AttackSpecial
	}
	switch p.Class() {
	case data.ClassMage, data.ClassCleric:
		if p.Mana() >= cfg.MagicManaCost {
			return combat.AttackMagic
		}
	case data.ClassWarrior:
		return combat.AttackHeavy
	case data.ClassRogue:
		return combat.AttackQuick
	}
	return combat.AttackNormal
}
