package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/dungeoncrawl/internal/config"
	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/db"
	"github.com/udisondev/dungeoncrawl/internal/game/combat"
	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
	"github.com/udisondev/dungeoncrawl/internal/journal"
	"github.com/udisondev/dungeoncrawl/internal/logger"
	"github.com/udisondev/dungeoncrawl/internal/sim"
	"github.com/udisondev/dungeoncrawl/internal/snapshot"
)

const ConfigPath = "config/dungeonsim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("DUNGEON_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := logger.Setup(cfg)
	log.Info("dungeonsim starting", "config", cfgPath, "seed", cfg.Seed, "log_level", cfg.LogLevel)

	simCfg, err := simConfig(cfg, log)
	if err != nil {
		return err
	}

	var snapshots *db.SnapshotRepository
	if cfg.Database.Enabled {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		snapshots = db.NewSnapshotRepository(database.Pool())
		log.Info("database connected")
	}

	var jrnl *journal.Journal
	if cfg.Redis.Enabled {
		rdb, err := journal.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("closing redis", "err", err)
			}
		}()
		jrnl = journal.New(rdb, cfg.Redis.JournalTTL, cfg.Redis.MaxEntries, log)
		log.Info("journal connected")
	}

	var report sim.Report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := sim.Run(gctx, simCfg)
		if err != nil {
			return err
		}
		report = r
		return nil
	})
	if jrnl != nil || snapshots != nil {
		g.Go(func() error {
			return runSamples(gctx, simCfg, cfg.Simulation.JournalSamples, jrnl, snapshots)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(renderReport(report))
	return nil
}

func simConfig(cfg config.Config, log *slog.Logger) (sim.Config, error) {
	classes := make([]data.Class, 0, len(cfg.Simulation.Classes))
	for _, name := range cfg.Simulation.Classes {
		c, err := data.ParseClass(name)
		if err != nil {
			return sim.Config{}, fmt.Errorf("simulation classes: %w", err)
		}
		classes = append(classes, c)
	}

	// Encounter Info lines flood the output at simulation scale.
	simLog := log
	if logger.ParseLevel(cfg.LogLevel) > slog.LevelDebug {
		simLog = logger.New(os.Stderr, quieter(cfg))
	}

	return sim.Config{
		Seed:       cfg.Seed,
		Encounters: cfg.Simulation.Encounters,
		Workers:    cfg.Simulation.Workers,
		MaxTurns:   cfg.Simulation.MaxTurns,
		Levels:     cfg.Simulation.Levels,
		Classes:    classes,
		Combat: combat.Config{
			DamageVariance:  cfg.Balance.DamageVariance,
			MagicManaCost:   cfg.Balance.MagicManaCost,
			SpecialManaCost: cfg.Balance.SpecialManaCost,
		},
		FleeChance:        cfg.Balance.FleeChance,
		InventoryCapacity: cfg.Balance.InventoryCapacity,
		Potions:           sim.DefaultConfig().Potions,
		Logger:            simLog,
	}, nil
}

func quieter(cfg config.Config) config.Config {
	cfg.LogLevel = "warn"
	return cfg
}

// runSamples replays a few fights per class, journaling every turn and
// saving the survivor's snapshot.
func runSamples(ctx context.Context, cfg sim.Config, perClass int, jrnl *journal.Journal, snapshots *db.SnapshotRepository) error {
	level := cfg.Levels[0]
	for ci, class := range cfg.Classes {
		for i := range perClass {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := cfg.Seed - int64(ci*perClass+i) - 1

			var recordErr error
			res, enc, err := sim.Fight(cfg, class, level, seed, func(enc *encounter.Encounter, r encounter.TurnReport) {
				if jrnl == nil || recordErr != nil {
					return
				}
				recordErr = jrnl.Record(ctx, enc.ID(), r)
			})
			if err != nil {
				return fmt.Errorf("sample fight: %w", err)
			}
			if recordErr != nil {
				return fmt.Errorf("journaling sample: %w", recordErr)
			}

			if snapshots != nil && res.Won() {
				p := enc.Player()
				if err := snapshots.Save(ctx, p.ID(), snapshot.Capture(p)); err != nil {
					return fmt.Errorf("saving sample snapshot: %w", err)
				}
			}
			slog.Info("sample fight",
				"encounter", enc.ID(),
				"class", class,
				"monster", res.Monster,
				"state", res.State,
				"turns", res.Turns)
		}
	}
	return nil
}

