package combat

import (
	"fmt"

	"github.com/udisondev/dungeoncrawl/internal/ai"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/game/stats"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// MonsterAttacksPlayer resolves one monster turn against the player.
//
// Roll order: special-attack gate, accuracy, player dodge, critical, variance,
// block. A block or a player guard halves the final damage and reports
// BLOCKED; both together quarter it.
func (e *Engine) MonsterAttacksPlayer(m *model.Monster, p *model.Player) Outcome {
	out := Outcome{Attacker: m.Name(), Defender: p.Name(), AttackType: AttackNormal}
	if o, done := precheck(m.Character, p.Character, out); done {
		return o
	}

	multiplier := 1.0
	var onTarget []effect.Kind
	if ability, ok := ai.UseSpecialAttack(m, e.rng); ok {
		out.AttackType = AttackSpecial
		out.Ability = ability.Name
		multiplier = ability.Multiplier
		onTarget = ability.Effects
	}

	if e.rng.Float64() > stats.Accuracy(m, p) {
		return e.miss(out, fmt.Sprintf("%s misses %s", m.Name(), p.Name()))
	}
	if e.rng.Float64() < stats.DodgeChance(p) {
		return e.miss(out, fmt.Sprintf("%s dodges %s's attack", p.Name(), m.Name()))
	}
	out.Critical = e.rng.Float64() < stats.CriticalChance(m)

	base := float64(stats.AttackPower(m)) * multiplier
	if out.Critical {
		base *= CriticalMultiplier
	}
	dmg := e.finalDamage(base, stats.DefensePower(p))

	result := ResultHit
	if e.rng.Float64() < stats.BlockChance(p) {
		dmg = halve(dmg)
		result = ResultBlocked
	}
	if p.ConsumeGuard() {
		dmg = halve(dmg)
		result = ResultBlocked
	}

	e.apply(p.Character, &out, dmg, result)
	out.EffectsApplied = applyEffects(p, onTarget...)
	out.Description = describeHit(out)
	e.log(out)
	return out
}
