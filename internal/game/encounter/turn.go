package encounter

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/udisondev/dungeoncrawl/internal/game/combat"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/game/itemhandler"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

// PlayerTurn plays one round: the player attacks with at, the monster
// answers if it survives, and each combatant's ledger ticks after its own
// action. Stunned or frozen combatants lose their action; a player who
// loses it ticks after the monster's attack instead.
func (e *Encounter) PlayerTurn(at combat.AttackType) (TurnReport, error) {
	return e.round(func(r *TurnReport) {
		out := e.combat.ResolveAttack(e.player, e.monster, at)
		r.PlayerAction = &out
	})
}

// UseItem spends the player's action on a consumable, then the monster acts.
// A failed use returns an error and does not consume the turn.
func (e *Encounter) UseItem(itemID uuid.UUID) (TurnReport, error) {
	if e.Over() {
		return TurnReport{State: e.state}, ErrEncounterOver
	}
	var used *itemhandler.UseResult
	if e.player.CanAct() {
		res, err := e.items.Use(e.player, itemID)
		if err != nil {
			return TurnReport{Turn: e.turn, State: e.state}, fmt.Errorf("encounter item use: %w", err)
		}
		used = res
	}
	return e.round(func(r *TurnReport) {
		r.ItemUsed = used
	})
}

// Flee tries to escape. Boss fights cannot be fled. A failed attempt costs
// the player's action and the monster attacks.
func (e *Encounter) Flee() (TurnReport, error) {
	if e.Over() {
		return TurnReport{State: e.state}, ErrEncounterOver
	}
	if e.monster.IsBoss() {
		return TurnReport{Turn: e.turn, State: e.state}, fmt.Errorf("fleeing %s: %w", e.monster.Name(), ErrCannotFlee)
	}
	return e.round(func(r *TurnReport) {
		if rng.Chance(e.rng, e.fleeChance) {
			r.Fled = true
		}
	})
}

func (e *Encounter) round(playerAction func(*TurnReport)) (TurnReport, error) {
	if e.Over() {
		return TurnReport{State: e.state}, ErrEncounterOver
	}
	e.turn++
	r := TurnReport{Turn: e.turn}

	// A stance only covers the monster's answer in the round it was taken.
	e.player.SetGuarding(false)

	// An immobilized player's ledger ticks after the monster's slot, so
	// Stun or Freeze still holds during the attack it leaves them open to.
	immobilized := !e.player.CanAct()
	if immobilized {
		r.PlayerSkipped = skipReason(e.player.Character)
	} else {
		playerAction(&r)
		r.PlayerEffects = effect.Tick(e.player)
	}
	monsterFell := e.monster.IsDead()

	// Dying to one's own status effects ends the fight even after a successful escape.
	if r.Fled && e.player.IsDead() {
		r.Fled = false
	}
	if r.Fled {
		e.state = StateFled
		e.logger.Info("player fled",
			"encounter", e.id,
			"player", e.player.Name(),
			"monster", e.monster.Name(),
			"turn", e.turn)
		r.State = e.state
		return r, nil
	}

	if !monsterFell && e.player.IsAlive() {
		e.monster.NextTurn()
		if e.monster.CanAct() {
			out := e.combat.ResolveAttack(e.monster, e.player, combat.AttackNormal)
			r.MonsterAction = &out
		} else {
			r.MonsterSkipped = skipReason(e.monster.Character)
		}
	}
	if immobilized {
		r.PlayerEffects = effect.Tick(e.player)
	}
	if !monsterFell {
		r.MonsterEffects = effect.Tick(e.monster)
	}

	e.settle(&r, monsterFell)
	r.State = e.state
	return r, nil
}

// settle moves the encounter to a terminal state and hands out rewards.
// A monster slain by the player's action is a victory even if the player
// then falls to a status effect.
func (e *Encounter) settle(r *TurnReport, monsterFell bool) {
	switch {
	case !monsterFell && e.player.IsDead():
		e.state = StateDefeat
		e.logger.Info("player defeated",
			"encounter", e.id,
			"player", e.player.Name(),
			"monster", e.monster.Name(),
			"turn", e.turn)
		e.sink.OnPlayerDefeated(e.player, e.monster)

	case e.monster.IsDead():
		e.state = StateVictory
		e.player.RecordKill()
		r.Experience = e.monster.ExperienceReward()
		res := e.progression.GrantExperience(e.player, r.Experience)
		e.logger.Info("monster defeated",
			"encounter", e.id,
			"player", e.player.Name(),
			"monster", e.monster.Name(),
			"turn", e.turn,
			"exp", r.Experience)
		e.sink.OnMonsterDefeated(e.player, e.monster)
		if res.LeveledUp {
			r.LevelUp = &res
			e.sink.OnLevelUp(e.player, res)
		}
	}
}

func skipReason(c *model.Character) string {
	switch {
	case c.HasEffect(effect.Stun):
		return fmt.Sprintf("%s is stunned", c.Name())
	case c.HasEffect(effect.Freeze):
		return fmt.Sprintf("%s is frozen", c.Name())
	default:
		return fmt.Sprintf("%s cannot act", c.Name())
	}
}
