package sim

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Encounters = 5
	cfg.Levels = []int{1, 10}
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return cfg
}

func TestRun_Shape(t *testing.T) {
	cfg := quietConfig()

	report, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, report.Rows, len(data.Classes)*len(cfg.Levels))
	assert.Equal(t, len(data.Classes)*len(cfg.Levels)*cfg.Encounters, report.Encounters())
	assert.Equal(t, data.ClassWarrior, report.Rows[0].Class)
	assert.Equal(t, 1, report.Rows[0].Level)
	assert.Equal(t, 10, report.Rows[1].Level)

	for _, row := range report.Rows {
		assert.Equal(t, cfg.Encounters, row.Wins+row.Defeats+row.Fled+row.TimedOut, "%s level %d", row.Class, row.Level)
		assert.Zero(t, row.Fled, "the policy never flees")
		assert.GreaterOrEqual(t, row.WinRate(), 0.0)
		assert.LessOrEqual(t, row.WinRate(), 1.0)
		assert.Positive(t, row.AvgTurns())
	}
}

func TestRun_Deterministic(t *testing.T) {
	cfg := quietConfig()
	cfg.Workers = 1
	first, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	second, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)

	cfg.Seed = 999
	third, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, third.Rows, len(first.Rows))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, quietConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Classes = []data.Class{data.Class(42)}
	_, err := Run(context.Background(), cfg)
	assert.ErrorIs(t, err, model.ErrUnknownClass)

	cfg = quietConfig()
	cfg.Workers = 0
	_, err = Run(context.Background(), cfg)
	assert.Error(t, err)
}

func TestFight_ReportsEveryTurn(t *testing.T) {
	cfg := quietConfig()
	var turns []int

	res, enc, err := Fight(cfg, data.ClassMage, 5, 7, func(_ *encounter.Encounter, r encounter.TurnReport) {
		turns = append(turns, r.Turn)
	})
	require.NoError(t, err)

	require.Len(t, turns, res.Turns)
	for i, turn := range turns {
		assert.Equal(t, i+1, turn)
	}
	assert.Equal(t, enc.State(), res.State)
	assert.GreaterOrEqual(t, enc.Player().Level(), 5)
	assert.Equal(t, 5, enc.Player().DungeonLevel())
	if !res.TimedOut {
		assert.True(t, enc.Over())
	}
}

func TestNewPlayer_LevelsAndPotions(t *testing.T) {
	cfg := quietConfig()
	cfg.Potions = 3

	_, enc, err := Fight(cfg, data.ClassWarrior, 12, 3, nil)
	require.NoError(t, err)

	p := enc.Player()
	assert.GreaterOrEqual(t, p.Level(), 12)
	assert.LessOrEqual(t, p.Inventory().Count(), 3, "potions drunk during the fight are gone")
}

func TestReport_ByClass(t *testing.T) {
	report := aggregate([]Result{
		{Class: data.ClassRogue, Level: 5, State: encounter.StateVictory, Turns: 4, DamageDealt: 80},
		{Class: data.ClassWarrior, Level: 1, State: encounter.StateDefeat, Turns: 6, DamageTaken: 120},
		{Class: data.ClassWarrior, Level: 1, State: encounter.StateVictory, Turns: 2, DamageDealt: 60},
		{Class: data.ClassWarrior, Level: 10, TimedOut: true, Turns: 100},
	})

	require.Len(t, report.Rows, 3)
	assert.Equal(t, data.ClassWarrior, report.Rows[0].Class)
	assert.Equal(t, 1, report.Rows[0].Level)
	assert.InDelta(t, 0.5, report.Rows[0].WinRate(), 1e-9)
	assert.InDelta(t, 4.0, report.Rows[0].AvgTurns(), 1e-9)
	assert.InDelta(t, 30.0, report.Rows[0].AvgDamageDealt(), 1e-9)
	assert.InDelta(t, 60.0, report.Rows[0].AvgDamageTaken(), 1e-9)
	assert.Equal(t, 1, report.Rows[1].TimedOut)

	byClass := report.ByClass()
	require.Len(t, byClass, 2)
	assert.Equal(t, data.ClassWarrior, byClass[0].Class)
	assert.Equal(t, 3, byClass[0].Encounters)
	assert.Equal(t, 1, byClass[0].Wins)
	assert.Equal(t, 1, byClass[1].Wins)
	assert.Zero(t, Row{}.WinRate())
}
