package combat

import (
	"fmt"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/game/stats"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// PlayerAttacksMonster resolves one player action against a monster.
//
// Roll order: accuracy, critical, then type-specific procs, then variance.
// DEFENSIVE_STANCE consumes no rolls. MAGIC and SPECIAL_ABILITY spend mana and
// fall back to NORMAL when the player cannot pay.
func (e *Engine) PlayerAttacksMonster(p *model.Player, m *model.Monster, at AttackType) Outcome {
	at = at.Normalize()
	out := Outcome{Attacker: p.Name(), Defender: m.Name(), AttackType: at}
	if o, done := precheck(p.Character, m.Character, out); done {
		return o
	}

	// A stance lasts until the player's next action.
	p.SetGuarding(false)
	if at == AttackDefensive {
		p.SetGuarding(true)
		out.Result = ResultBlocked
		out.Description = fmt.Sprintf("%s takes a defensive stance", p.Name())
		e.log(out)
		return out
	}

	var fallback string
	if cost := e.manaCost(at); cost > 0 && !p.SpendMana(cost) {
		fallback = fmt.Sprintf("%s lacks mana for %s (%d/%d); ", p.Name(), at.label(), p.Mana(), cost)
		at = AttackNormal
		out.AttackType = at
	}

	if e.rng.Float64() > stats.Accuracy(p, m) {
		return e.miss(out, fallback+fmt.Sprintf("%s misses %s", p.Name(), m.Name()))
	}
	out.Critical = e.rng.Float64() < stats.CriticalChance(p)

	var (
		base     float64
		onTarget []effect.Kind
		onSelf   []effect.Kind
	)
	switch at {
	case AttackHeavy:
		base = float64(stats.AttackPower(p)) * HeavyMultiplier
		if e.rng.Float64() < HeavyStunChance {
			onTarget = append(onTarget, effect.Stun)
		}
	case AttackQuick:
		base = float64(stats.AttackPower(p)) * QuickMultiplier
	case AttackMagic:
		base = float64(stats.MagicPower(p)) * MagicMultiplier
		if e.rng.Float64() < MagicEffectChance {
			onTarget = append(onTarget, effect.Elemental[e.rng.IntN(len(effect.Elemental))])
		}
	case AttackSpecial:
		tmpl := data.GetClassTemplate(p.Class())
		base, onTarget, onSelf = classSpecial(p, tmpl)
		out.Ability = tmpl.SpecialName
	case AttackNormal, AttackDefensive:
		base = float64(stats.AttackPower(p))
	}
	if out.Critical {
		base *= CriticalMultiplier
	}

	dmg := e.finalDamage(base, stats.DefensePower(m))
	e.apply(m.Character, &out, dmg, ResultHit)
	out.EffectsApplied = applyEffects(m, onTarget...)
	out.SelfEffects = applyEffects(p, onSelf...)
	out.Description = fallback + describeHit(out)
	e.log(out)
	return out
}

func (e *Engine) manaCost(at AttackType) int {
	switch at {
	case AttackMagic:
		return e.cfg.MagicManaCost
	case AttackSpecial:
		return e.cfg.SpecialManaCost
	default:
		return 0
	}
}

// classSpecial returns the base damage and guaranteed effects of the
// player's class ability.
func classSpecial(p *model.Player, tmpl *data.ClassTemplate) (float64, []effect.Kind, []effect.Kind) {
	power := stats.AttackPower(p)
	if tmpl.SpecialUsesMagic {
		power = stats.MagicPower(p)
	}
	base := float64(power) * tmpl.SpecialMultiplier
	if tmpl.SpecialOnSelf {
		return base, nil, []effect.Kind{tmpl.SpecialEffect}
	}
	return base, []effect.Kind{tmpl.SpecialEffect}, nil
}
