// Package encounter runs one player-versus-monster fight turn by turn.
//
// It is the caller layer around the combat, effect and progression engines:
// it decides who acts, ticks status effects, grants rewards and forwards
// results to an optional Sink. The engines never see the Sink.
package encounter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/udisondev/dungeoncrawl/internal/game/combat"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/game/itemhandler"
	"github.com/udisondev/dungeoncrawl/internal/game/progression"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

var (
	ErrEncounterOver = errors.New("encounter is over")
	ErrCannotFlee    = errors.New("cannot flee from this encounter")
)

// DefaultFleeChance is the flee success chance when none is configured.
const DefaultFleeChance = 0.5

// State is the encounter lifecycle state. Everything but Active is terminal.
type State int8

const (
	StateActive State = iota
	StateVictory
	StateDefeat
	StateFled
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateFled:
		return "fled"
	default:
		return fmt.Sprintf("State(%d)", int8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	for st := StateActive; st <= StateFled; st++ {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown encounter state %q", text)
}

// Sink receives encounter events, e.g. quest or achievement tracking.
type Sink interface {
	OnLevelUp(p *model.Player, res progression.LevelUpResult)
	OnMonsterDefeated(p *model.Player, m *model.Monster)
	OnPlayerDefeated(p *model.Player, m *model.Monster)
}

// NopSink ignores every event.
type NopSink struct{}

func (NopSink) OnLevelUp(*model.Player, progression.LevelUpResult) {}
func (NopSink) OnMonsterDefeated(*model.Player, *model.Monster) {}
func (NopSink) OnPlayerDefeated(*model.Player, *model.Monster) {}

// TurnReport describes one round.
type TurnReport struct {
	Turn int `json:"turn"`

	PlayerAction   *combat.Outcome        `json:"player_action,omitempty"`
	ItemUsed       *itemhandler.UseResult `json:"item_used,omitempty"`
	PlayerSkipped  string                 `json:"player_skipped,omitempty"`
	MonsterAction  *combat.Outcome        `json:"monster_action,omitempty"`
	MonsterSkipped string                 `json:"monster_skipped,omitempty"`

	PlayerEffects  []effect.Message `json:"player_effects,omitempty"`
	MonsterEffects []effect.Message `json:"monster_effects,omitempty"`

	Fled       bool                       `json:"fled,omitempty"`
	Experience int64                      `json:"experience,omitempty"`
	LevelUp    *progression.LevelUpResult `json:"level_up,omitempty"`
	State      State                      `json:"state"`
}

// Encounter is one fight. Not safe for concurrent use.
type Encounter struct {
	id      uuid.UUID
	player  *model.Player
	monster *model.Monster

	rng         rng.Source
	combat      *combat.Engine
	progression *progression.Engine
	items       *itemhandler.Registry
	sink        Sink
	logger      *slog.Logger

	fleeChance float64
	state      State
	turn       int
}

// Option configures an Encounter.
type Option func(*Encounter)

// WithSink sets the event sink.
func WithSink(s Sink) Option {
	return func(e *Encounter) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithCombatConfig sets combat balance values.
func WithCombatConfig(cfg combat.Config) Option {
	return func(e *Encounter) {
		e.combat = combat.NewEngine(e.rng, combat.WithConfig(cfg), combat.WithLogger(e.logger))
	}
}

// WithFleeChance sets the flee success chance.
func WithFleeChance(p float64) Option {
	return func(e *Encounter) {
		e.fleeChance = min(max(p, 0), 1)
	}
}

// WithItems sets the consumable registry.
func WithItems(r *itemhandler.Registry) Option {
	return func(e *Encounter) {
		if r != nil {
			e.items = r
		}
	}
}

// WithLogger sets the logger used by the encounter and its engines.
func WithLogger(l *slog.Logger) Option {
	return func(e *Encounter) {
		if l == nil {
			return
		}
		e.logger = l
		e.combat = combat.NewEngine(e.rng, combat.WithConfig(e.combat.Config()), combat.WithLogger(l))
		e.progression = progression.NewEngine(e.rng, progression.WithLogger(l))
	}
}

// New starts an encounter between p and m. Every roll comes from src.
func New(p *model.Player, m *model.Monster, src rng.Source, opts ...Option) *Encounter {
	logger := slog.Default()
	e := &Encounter{
		id:          uuid.New(),
		player:      p,
		monster:     m,
		rng:         src,
		combat:      combat.NewEngine(src, combat.WithLogger(logger)),
		progression: progression.NewEngine(src, progression.WithLogger(logger)),
		sink:        NopSink{},
		logger:      logger,
		fleeChance:  DefaultFleeChance,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.items == nil {
		e.items = itemhandler.NewRegistry(e.logger)
	}
	return e
}

func (e *Encounter) ID() uuid.UUID { return e.id }

func (e *Encounter) Player() *model.Player { return e.player }

func (e *Encounter) Monster() *model.Monster { return e.monster }

func (e *Encounter) State() State { return e.state }

// Turn returns the number of rounds played.
func (e *Encounter) Turn() int { return e.turn }

// Over reports whether the encounter reached a terminal state.
func (e *Encounter) Over() bool { return e.state != StateActive }
