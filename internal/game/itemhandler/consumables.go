package itemhandler

import (
	"fmt"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// healHandler restores health. Unusable when dead or at full health.
type healHandler struct {
	amount int
}

func (h *healHandler) UseItem(player *model.Player, item *model.Item) *UseResult {
	if player.IsDead() || player.CurrentHP() >= player.MaxHP() {
		return nil
	}
	healed := player.Heal(h.amount)
	return &UseResult{
		Consume: true,
		Healed:  healed,
		Message: fmt.Sprintf("%s drinks a %s and recovers %d health", player.Name(), item.Name(), healed),
	}
}

// manaHandler restores mana. Unusable when dead or at full mana.
type manaHandler struct {
	amount int
}

func (h *manaHandler) UseItem(player *model.Player, item *model.Item) *UseResult {
	if player.IsDead() || player.Mana() >= player.MaxMana() {
		return nil
	}
	restored := player.RestoreMana(h.amount)
	return &UseResult{
		Consume:      true,
		ManaRestored: restored,
		Message:      fmt.Sprintf("%s drinks a %s and recovers %d mana", player.Name(), item.Name(), restored),
	}
}

// cureHandler removes the listed effects. Unusable if none are active.
type cureHandler struct {
	kinds []effect.Kind
}

func (h *cureHandler) UseItem(player *model.Player, item *model.Item) *UseResult {
	if player.IsDead() {
		return nil
	}
	var removed []effect.Kind
	for _, k := range h.kinds {
		if effect.Remove(player, k) {
			removed = append(removed, k)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	return &UseResult{
		Consume:        true,
		EffectsRemoved: removed,
		Message:        fmt.Sprintf("%s uses %s and is cured of %v", player.Name(), item.Name(), removed),
	}
}

// effectHandler grants a status effect.
type effectHandler struct {
	kind effect.Kind
}

func (h *effectHandler) UseItem(player *model.Player, item *model.Item) *UseResult {
	if player.IsDead() {
		return nil
	}
	effect.Apply(player, h.kind)
	return &UseResult{
		Consume:        true,
		EffectsApplied: []effect.Kind{h.kind},
		Message:        fmt.Sprintf("%s uses %s and gains %s", player.Name(), item.Name(), h.kind),
	}
}
