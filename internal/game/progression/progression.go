// Package progression handles experience intake, level-ups and restoring
// saved player state.
package progression

import (
	"log/slog"
	"math"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

// StatGains is the outcome of one level-up stat roll.
type StatGains struct {
	Health  int
	Mana    int
	Attack  int
	Defense int
	Magic   int
	Agility int
	Luck    int
}

// LevelUpResult reports what a GrantExperience call did.
type LevelUpResult struct {
	LeveledUp bool
	OldLevel  int
	NewLevel  int
	// One entry per level gained, in order.
	Gains []StatGains
}

// Levels returns the number of levels gained.
func (r LevelUpResult) Levels() int { return r.NewLevel - r.OldLevel }

// Engine grants experience and rolls level-up stats.
type Engine struct {
	rng    rng.Source
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates a progression engine rolling stats from src.
func NewEngine(src rng.Source, opts ...Option) *Engine {
	e := &Engine{
		rng:    src,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GrantExperience adds amount experience to p and performs every level-up it
// pays for, one at a time: each level consumes its own threshold, grows the
// threshold by 1.2x and applies one class stat roll. Health and mana are
// restored to the new maximum. Negative amounts count as 0.
func (e *Engine) GrantExperience(p *model.Player, amount int64) LevelUpResult {
	res := LevelUpResult{OldLevel: p.Level(), NewLevel: p.Level()}
	if amount < 0 {
		amount = 0
	}
	exp := p.Experience()
	if amount > math.MaxInt64-exp {
		exp = math.MaxInt64
	} else {
		exp += amount
	}
	p.SetExperience(exp)

	tmpl := data.GetClassTemplate(p.Class())
	if tmpl == nil {
		return res
	}

	for p.Level() < data.MaxPlayerLevel && p.Experience() >= p.ExperienceToNextLevel() {
		threshold := p.ExperienceToNextLevel()
		p.SetExperience(p.Experience() - threshold)
		p.SetLevel(p.Level() + 1)
		p.SetExperienceToNextLevel(data.NextThreshold(threshold))

		gains := e.rollGains(&tmpl.LevelUp)
		applyGains(p, gains)
		res.Gains = append(res.Gains, gains)
	}

	res.NewLevel = p.Level()
	res.LeveledUp = res.NewLevel > res.OldLevel
	if res.LeveledUp {
		e.logger.Info("player leveled up",
			"player", p.Name(),
			"class", p.Class().String(),
			"oldLevel", res.OldLevel,
			"newLevel", res.NewLevel,
			"exp", p.Experience(),
			"nextLevelExp", p.ExperienceToNextLevel())
	}
	return res
}

func (e *Engine) rollGains(r *data.LevelUpRanges) StatGains {
	return StatGains{
		Health:  rng.Range(e.rng, r.Health.Min, r.Health.Max),
		Mana:    rng.Range(e.rng, r.Mana.Min, r.Mana.Max),
		Attack:  rng.Range(e.rng, r.Attack.Min, r.Attack.Max),
		Defense: rng.Range(e.rng, r.Defense.Min, r.Defense.Max),
		Magic:   rng.Range(e.rng, r.Magic.Min, r.Magic.Max),
		Agility: rng.Range(e.rng, r.Agility.Min, r.Agility.Max),
		Luck:    rng.Range(e.rng, r.Luck.Min, r.Luck.Max),
	}
}

func applyGains(p *model.Player, g StatGains) {
	s := p.Stats()
	s.Attack += g.Attack
	s.Defense += g.Defense
	s.Magic += g.Magic
	s.Agility += g.Agility
	s.Luck += g.Luck
	p.SetStats(s)

	p.SetMaxHP(p.MaxHP() + g.Health)
	p.SetMaxMana(p.MaxMana() + g.Mana)
	p.RestoreFullHealth()
	p.SetMana(p.MaxMana())
}
