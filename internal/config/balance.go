package config

import (
	"errors"
	"fmt"
)

// Balance holds tunable combat and inventory parameters.
type Balance struct {
	DamageVariance    float64 `yaml:"damage_variance" env:"DAMAGE_VARIANCE"`
	MagicManaCost     int     `yaml:"magic_mana_cost" env:"MAGIC_MANA_COST"`
	SpecialManaCost   int     `yaml:"special_mana_cost" env:"SPECIAL_MANA_COST"`
	InventoryCapacity int     `yaml:"inventory_capacity" env:"INVENTORY_CAPACITY"`
	FleeChance        float64 `yaml:"flee_chance" env:"FLEE_CHANCE"`
}

// DefaultBalance returns the stock tuning: ±15% variance, 10/20 mana costs,
// 20 inventory slots and a coin-flip flee.
func DefaultBalance() Balance {
	return Balance{
		DamageVariance:    0.15,
		MagicManaCost:     10,
		SpecialManaCost:   20,
		InventoryCapacity: 20,
		FleeChance:        0.5,
	}
}

func (b Balance) Validate() error {
	if b.DamageVariance < 0 || b.DamageVariance >= 1 {
		return fmt.Errorf("damage_variance must be in [0,1), got %v", b.DamageVariance)
	}
	if b.MagicManaCost < 0 || b.SpecialManaCost < 0 {
		return errors.New("mana costs must not be negative")
	}
	if b.InventoryCapacity < 1 {
		return fmt.Errorf("inventory_capacity must be positive, got %d", b.InventoryCapacity)
	}
	if b.FleeChance < 0 || b.FleeChance > 1 {
		return fmt.Errorf("flee_chance must be in [0,1], got %v", b.FleeChance)
	}
	return nil
}

// Simulation configures a balance simulation run.
type Simulation struct {
	// Encounters per class and level.
	Encounters int      `yaml:"encounters" env:"ENCOUNTERS"`
	Workers    int      `yaml:"workers" env:"WORKERS"`
	MaxTurns   int      `yaml:"max_turns" env:"MAX_TURNS"`
	Levels     []int    `yaml:"levels" env:"LEVELS" envSeparator:","`
	Classes    []string `yaml:"classes" env:"CLASSES" envSeparator:","`
	// Journal this many encounters per run when the journal is enabled.
	JournalSamples int `yaml:"journal_samples" env:"JOURNAL_SAMPLES"`
}

func DefaultSimulation() Simulation {
	return Simulation{
		Encounters:     200,
		Workers:        8,
		MaxTurns:       100,
		Levels:         []int{1, 5, 10, 15, 20},
		Classes:        []string{"warrior", "mage", "rogue", "cleric"},
		JournalSamples: 3,
	}
}

func (s Simulation) Validate() error {
	if s.Encounters < 1 {
		return fmt.Errorf("encounters must be positive, got %d", s.Encounters)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if s.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", s.MaxTurns)
	}
	if len(s.Levels) == 0 || len(s.Classes) == 0 {
		return errors.New("levels and classes must not be empty")
	}
	for _, l := range s.Levels {
		if l < 1 {
			return fmt.Errorf("level must be positive, got %d", l)
		}
	}
	if s.JournalSamples < 0 {
		return fmt.Errorf("journal_samples must not be negative, got %d", s.JournalSamples)
	}
	return nil
}
