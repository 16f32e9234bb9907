package combat

import (
	"fmt"
	"strings"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// Damage multipliers and proc chances per attack type.
const (
	CriticalMultiplier = 2.0
	HeavyMultiplier    = 1.5
	HeavyStunChance    = 0.30
	QuickMultiplier    = 0.8
	MagicMultiplier    = 1.3
	MagicEffectChance  = 0.40
	BlockDivisor       = 2
)

// variance returns a multiplier in [1-v, 1+v).
func (e *Engine) variance() float64 {
	v := e.cfg.DamageVariance
	return 1 - v + e.rng.Float64()*2*v
}

// finalDamage applies variance and subtracts defense. A landed hit always
// deals at least 1. The raw value is capped before the int conversion, which
// is undefined for out-of-range floats.
func (e *Engine) finalDamage(base float64, defense int) int {
	raw := min(base*e.variance(), float64(model.MaxDamage)+float64(max(defense, 0)))
	dmg := int(raw) - defense
	return model.ClampDamage(max(dmg, 1))
}

// halve is used by blocks and guards; a landed hit still deals at least 1.
func halve(dmg int) int {
	return max(dmg/BlockDivisor, 1)
}

// applyEffects adds kinds to h and returns those that landed.
func applyEffects(h effect.Holder, kinds ...effect.Kind) []effect.Kind {
	var landed []effect.Kind
	for _, k := range kinds {
		if h.IsDead() {
			break
		}
		effect.Apply(h, k)
		if h.Ledger().Has(k) {
			landed = append(landed, k)
		}
	}
	return landed
}

func describeHit(out Outcome) string {
	var b strings.Builder
	switch {
	case out.Ability != "":
		fmt.Fprintf(&b, "%s uses %s on %s", out.Attacker, out.Ability, out.Defender)
	case out.AttackType != AttackNormal:
		fmt.Fprintf(&b, "%s lands a %s attack on %s", out.Attacker, out.AttackType.label(), out.Defender)
	default:
		fmt.Fprintf(&b, "%s hits %s", out.Attacker, out.Defender)
	}
	fmt.Fprintf(&b, " for %d damage", out.Damage)
	if out.Critical {
		b.WriteString(" (critical)")
	}
	if out.Result == ResultBlocked {
		b.WriteString(", partially blocked")
	}
	for _, k := range out.EffectsApplied {
		fmt.Fprintf(&b, "; %s is afflicted by %s", out.Defender, k)
	}
	for _, k := range out.SelfEffects {
		fmt.Fprintf(&b, "; %s gains %s", out.Attacker, k)
	}
	if out.TargetDefeated {
		fmt.Fprintf(&b, "; %s is defeated", out.Defender)
	}
	return b.String()
}
