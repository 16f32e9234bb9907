package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/dungeoncrawl/internal/snapshot"
)

// SnapshotRepository stores one snapshot per player.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a repository on pool.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Save upserts the snapshot for playerID. The snapshot must verify.
func (r *SnapshotRepository) Save(ctx context.Context, playerID uuid.UUID, s snapshot.Snapshot) error {
	if err := s.Verify(); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", playerID, err)
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO player_snapshots
		   (player_id, level, experience, current_health, max_health, attack, defense, magic,
		    rooms_explored, monsters_defeated, dungeon_level, checksum, saved_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (player_id) DO UPDATE SET
		   level = EXCLUDED.level,
		   experience = EXCLUDED.experience,
		   current_health = EXCLUDED.current_health,
		   max_health = EXCLUDED.max_health,
		   attack = EXCLUDED.attack,
		   defense = EXCLUDED.defense,
		   magic = EXCLUDED.magic,
		   rooms_explored = EXCLUDED.rooms_explored,
		   monsters_defeated = EXCLUDED.monsters_defeated,
		   dungeon_level = EXCLUDED.dungeon_level,
		   checksum = EXCLUDED.checksum,
		   saved_at = EXCLUDED.saved_at`,
		playerID.String(), s.Level, s.Experience, s.CurrentHealth, s.MaxHealth,
		s.Attack, s.Defense, s.Magic,
		s.RoomsExplored, s.MonstersDefeated, s.DungeonLevel, s.Checksum, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", playerID, err)
	}
	return nil
}

// Load returns the snapshot for playerID, or nil, nil if none exists.
// A stored snapshot that fails its checksum returns snapshot.ErrSnapshotChecksum.
func (r *SnapshotRepository) Load(ctx context.Context, playerID uuid.UUID) (*snapshot.Snapshot, error) {
	var s snapshot.Snapshot
	err := r.pool.QueryRow(ctx,
		`SELECT level, experience, current_health, max_health, attack, defense, magic,
		        rooms_explored, monsters_defeated, dungeon_level, checksum
		 FROM player_snapshots WHERE player_id = $1`, playerID.String(),
	).Scan(&s.Level, &s.Experience, &s.CurrentHealth, &s.MaxHealth, &s.Attack, &s.Defense, &s.Magic,
		&s.RoomsExplored, &s.MonstersDefeated, &s.DungeonLevel, &s.Checksum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading snapshot %s: %w", playerID, err)
	}
	if err := s.Verify(); err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", playerID, err)
	}
	return &s, nil
}

// Delete removes the snapshot for playerID. Deleting a missing row is not an error.
func (r *SnapshotRepository) Delete(ctx context.Context, playerID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM player_snapshots WHERE player_id = $1`, playerID.String()); err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", playerID, err)
	}
	return nil
}
