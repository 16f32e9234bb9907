// Package combat resolves attack actions between combatants.
//
// The engine holds only its RNG, balance config and logger. Combatants are
// passed in on every call and mutated in place; the returned Outcome describes
// what happened. Callers forward outcomes to quest, achievement or UI layers.
package combat

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/dungeoncrawl/internal/game/stats"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

// Config holds combat balance constants.
type Config struct {
	// DamageVariance is the +/- fraction applied to every hit (0.15 = +/-15%).
	DamageVariance  float64
	MagicManaCost   int
	SpecialManaCost int
}

// DefaultConfig returns the standard balance values.
func DefaultConfig() Config {
	return Config{
		DamageVariance:  0.15,
		MagicManaCost:   10,
		SpecialManaCost: 20,
	}
}

// Engine resolves attacks.
type Engine struct {
	rng    rng.Source
	cfg    Config
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the balance config.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		if cfg.DamageVariance < 0 || cfg.DamageVariance >= 1 {
			cfg.DamageVariance = DefaultConfig().DamageVariance
		}
		cfg.MagicManaCost = max(cfg.MagicManaCost, 0)
		cfg.SpecialManaCost = max(cfg.SpecialManaCost, 0)
		e.cfg = cfg
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine drawing every roll from src.
func NewEngine(src rng.Source, opts ...Option) *Engine {
	e := &Engine{
		rng:    src,
		cfg:    DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's balance config.
func (e *Engine) Config() Config { return e.cfg }

// ResolveAttack dispatches on the combatant pair. Player vs monster and
// monster vs player use their dedicated rules; any other pairing resolves as
// a plain NORMAL attack. Unknown attack types resolve as NORMAL.
func (e *Engine) ResolveAttack(attacker, defender model.Combatant, at AttackType) Outcome {
	at = at.Normalize()

	var out Outcome
	switch a := attacker.(type) {
	case *model.Player:
		if m, ok := defender.(*model.Monster); ok {
			out = e.PlayerAttacksMonster(a, m, at)
		} else {
			out = e.resolveGeneric(attacker, defender)
		}
	case *model.Monster:
		if p, ok := defender.(*model.Player); ok {
			out = e.MonsterAttacksPlayer(a, p)
		} else {
			out = e.resolveGeneric(attacker, defender)
		}
	default:
		out = e.resolveGeneric(attacker, defender)
	}
	return out
}

// resolveGeneric is a NORMAL attack without class or monster rules.
func (e *Engine) resolveGeneric(attacker, defender model.Combatant) Outcome {
	atk, def := attacker.Base(), defender.Base()
	out := Outcome{Attacker: atk.Name(), Defender: def.Name(), AttackType: AttackNormal}
	if o, done := precheck(atk, def, out); done {
		return o
	}

	if e.rng.Float64() > stats.Accuracy(attacker, defender) {
		return e.miss(out, fmt.Sprintf("%s misses %s", atk.Name(), def.Name()))
	}

	base := float64(stats.AttackPower(attacker))
	out.Critical = e.rng.Float64() < stats.CriticalChance(attacker)
	if out.Critical {
		base *= CriticalMultiplier
	}
	dmg := e.finalDamage(base, stats.DefensePower(defender))
	e.apply(def, &out, dmg, ResultHit)
	out.Description = describeHit(out)
	e.log(out)
	return out
}

// precheck short-circuits attacks involving dead combatants.
func precheck(atk, def *model.Character, out Outcome) (Outcome, bool) {
	switch {
	case atk.IsDead():
		out.Result = ResultMiss
		out.Description = fmt.Sprintf("%s is defeated and cannot attack", atk.Name())
		return out, true
	case def.IsDead():
		out.Result = ResultMiss
		out.TargetDefeated = true
		out.Description = fmt.Sprintf("%s is already defeated", def.Name())
		return out, true
	}
	return out, false
}

func (e *Engine) miss(out Outcome, desc string) Outcome {
	out.Result = ResultMiss
	out.Damage = 0
	out.Description = desc
	e.log(out)
	return out
}

// apply writes damage to the defender and fills the result fields.
func (e *Engine) apply(def *model.Character, out *Outcome, dmg int, result ResultKind) {
	dmg = model.ClampDamage(dmg)
	def.TakeDamage(dmg)
	out.Damage = dmg
	out.Result = result
	if result == ResultHit && out.Critical {
		out.Result = ResultCriticalHit
	}
	out.TargetDefeated = def.IsDead()
}

func (e *Engine) log(out Outcome) {
	e.logger.Debug("attack resolved",
		"attacker", out.Attacker,
		"defender", out.Defender,
		"type", out.AttackType.String(),
		"result", out.Result.String(),
		"damage", out.Damage,
		"defeated", out.TargetDefeated)
}
