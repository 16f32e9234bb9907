// Package sim runs batches of seeded encounters to measure class balance.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/combat"
	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
	"github.com/udisondev/dungeoncrawl/internal/game/itemhandler"
	"github.com/udisondev/dungeoncrawl/internal/game/progression"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
	"github.com/udisondev/dungeoncrawl/internal/spawn"
)

// Config describes one simulation run.
type Config struct {
	Seed int64
	// Encounters per class and level.
	Encounters int
	Workers    int
	MaxTurns   int
	Levels     []int
	Classes    []data.Class

	Combat            combat.Config
	FleeChance        float64
	InventoryCapacity int
	// Health potions carried into every fight.
	Potions int

	Logger *slog.Logger
}

// DefaultConfig returns a small run over every class.
func DefaultConfig() Config {
	return Config{
		Seed:              1,
		Encounters:        100,
		Workers:           4,
		MaxTurns:          100,
		Levels:            []int{1, 5, 10},
		Classes:           data.Classes[:],
		Combat:            combat.DefaultConfig(),
		FleeChance:        encounter.DefaultFleeChance,
		InventoryCapacity: model.DefaultInventoryCapacity,
		Potions:           2,
	}
}

// Result is the outcome of one simulated fight.
type Result struct {
	Class       data.Class
	Level       int
	Monster     string
	State       encounter.State
	TimedOut    bool
	Turns       int
	DamageDealt int
	DamageTaken int
}

// Won reports whether the player won.
func (r Result) Won() bool { return r.State == encounter.StateVictory }

type task struct {
	class data.Class
	level int
	seed  int64
}

// Run plays every class × level × encounter combination across a bounded
// worker pool. Results are deterministic for a given config.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if cfg.Encounters < 1 || cfg.Workers < 1 || cfg.MaxTurns < 1 {
		return Report{}, errors.New("encounters, workers and max turns must be positive")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	items := itemhandler.NewRegistry(cfg.Logger)

	var tasks []task
	for _, c := range cfg.Classes {
		if !c.Valid() {
			return Report{}, fmt.Errorf("class %d: %w", c, model.ErrUnknownClass)
		}
		for _, lvl := range cfg.Levels {
			for range cfg.Encounters {
				tasks = append(tasks, task{class: c, level: lvl, seed: cfg.Seed + int64(len(tasks))})
			}
		}
	}

	start := time.Now()
	results := make([]Result, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, t := range tasks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, _, err := fight(cfg, items, t, nil)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("simulation: %w", err)
	}

	report := aggregate(results)
	report.Elapsed = time.Since(start)
	cfg.Logger.Info("simulation finished",
		"encounters", len(results),
		"workers", cfg.Workers,
		"elapsed", report.Elapsed)
	return report, nil
}

// Fight plays a single seeded encounter and passes every turn to onTurn.
// It returns the finished encounter so callers can persist the player.
func Fight(cfg Config, class data.Class, level int, seed int64, onTurn func(*encounter.Encounter, encounter.TurnReport)) (Result, *encounter.Encounter, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxTurns < 1 {
		cfg.MaxTurns = DefaultConfig().MaxTurns
	}
	return fight(cfg, itemhandler.NewRegistry(cfg.Logger), task{class: class, level: level, seed: seed}, onTurn)
}

func fight(cfg Config, items *itemhandler.Registry, t task, onTurn func(*encounter.Encounter, encounter.TurnReport)) (Result, *encounter.Encounter, error) {
	src := rng.New(t.seed)

	p, err := newPlayer(cfg, src, t.class, t.level)
	if err != nil {
		return Result{}, nil, err
	}
	m := spawn.NewFactory(src, spawn.WithLogger(cfg.Logger)).CreateMonsterForLevel(t.level)

	enc := encounter.New(p, m, src,
		encounter.WithLogger(cfg.Logger),
		encounter.WithCombatConfig(cfg.Combat),
		encounter.WithFleeChance(cfg.FleeChance),
		encounter.WithItems(items),
	)

	res := Result{Class: t.class, Level: t.level, Monster: m.Name()}
	for !enc.Over() && enc.Turn() < cfg.MaxTurns {
		report, err := takeTurn(enc, cfg.Combat)
		if err != nil {
			return Result{}, nil, fmt.Errorf("%s level %d turn %d: %w", t.class, t.level, enc.Turn(), err)
		}
		if report.PlayerAction != nil {
			res.DamageDealt += report.PlayerAction.Damage
		}
		if report.MonsterAction != nil {
			res.DamageTaken += report.MonsterAction.Damage
		}
		if onTurn != nil {
			onTurn(enc, report)
		}
	}

	res.State = enc.State()
	res.Turns = enc.Turn()
	res.TimedOut = !enc.Over()
	return res, enc, nil
}

// newPlayer builds a player of class at level, rolling every level-up from src.
func newPlayer(cfg Config, src rng.Source, class data.Class, level int) (*model.Player, error) {
	capacity := cfg.InventoryCapacity
	if capacity < 1 {
		capacity = model.DefaultInventoryCapacity
	}
	p, err := model.NewPlayer("Sim "+class.String(), class, capacity)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	prog := progression.NewEngine(src, progression.WithLogger(cfg.Logger))
	for p.Level() < min(level, data.MaxPlayerLevel) {
		if !prog.GrantExperience(p, p.ExperienceToNextLevel()-p.Experience()).LeveledUp {
			break
		}
	}
	p.SetDungeonLevel(level)

	for range cfg.Potions {
		if err := p.Inventory().Add(itemhandler.NewConsumable(itemhandler.HealthPotion)); err != nil {
			break
		}
	}
	return p, nil
}
