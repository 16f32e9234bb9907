// Package snapshot captures and restores the persisted slice of player state.
package snapshot

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/dungeoncrawl/internal/game/progression"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// ErrSnapshotChecksum is returned when a snapshot does not match its checksum.
var ErrSnapshotChecksum = errors.New("snapshot checksum mismatch")

// Snapshot is the persisted player state: progression, health, base combat
// stats and run counters. Nothing else survives a save.
type Snapshot struct {
	Level            int    `json:"level"`
	Experience       int64  `json:"experience"`
	CurrentHealth    int    `json:"current_health"`
	MaxHealth        int    `json:"max_health"`
	Attack           int    `json:"attack"`
	Defense          int    `json:"defense"`
	Magic            int    `json:"magic"`
	RoomsExplored    int    `json:"rooms_explored"`
	MonstersDefeated int    `json:"monsters_defeated"`
	DungeonLevel     int    `json:"dungeon_level"`
	Checksum         string `json:"checksum"`
}

// Capture reads p into a sealed snapshot.
func Capture(p *model.Player) Snapshot {
	return FromState(progression.Capture(p))
}

// FromState builds a sealed snapshot from saved state.
func FromState(st progression.SavedState) Snapshot {
	s := Snapshot{
		Level:            st.Level,
		Experience:       st.Experience,
		CurrentHealth:    st.CurrentHealth,
		MaxHealth:        st.MaxHealth,
		Attack:           st.Attack,
		Defense:          st.Defense,
		Magic:            st.Magic,
		RoomsExplored:    st.RoomsExplored,
		MonstersDefeated: st.MonstersDefeated,
		DungeonLevel:     st.DungeonLevel,
	}
	s.Checksum = s.ComputeChecksum()
	return s
}

// State returns the snapshot as progression saved state.
func (s Snapshot) State() progression.SavedState {
	return progression.SavedState{
		Level:            s.Level,
		Experience:       s.Experience,
		CurrentHealth:    s.CurrentHealth,
		MaxHealth:        s.MaxHealth,
		Attack:           s.Attack,
		Defense:          s.Defense,
		Magic:            s.Magic,
		RoomsExplored:    s.RoomsExplored,
		MonstersDefeated: s.MonstersDefeated,
		DungeonLevel:     s.DungeonLevel,
	}
}

// ComputeChecksum returns the hex BLAKE2b-256 digest of the canonical
// encoding: every field as a big-endian int64, in declaration order.
func (s Snapshot) ComputeChecksum() string {
	fields := [...]int64{
		int64(s.Level),
		s.Experience,
		int64(s.CurrentHealth),
		int64(s.MaxHealth),
		int64(s.Attack),
		int64(s.Defense),
		int64(s.Magic),
		int64(s.RoomsExplored),
		int64(s.MonstersDefeated),
		int64(s.DungeonLevel),
	}
	buf := make([]byte, 0, len(fields)*8)
	for _, f := range fields {
		buf = binary.BigEndian.AppendUint64(buf, uint64(f))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Verify checks the stored checksum.
func (s Snapshot) Verify() error {
	if s.Checksum != s.ComputeChecksum() {
		return ErrSnapshotChecksum
	}
	return nil
}

// Apply verifies the snapshot and restores it onto p.
func (s Snapshot) Apply(p *model.Player) error {
	if err := s.Verify(); err != nil {
		return fmt.Errorf("restoring %s: %w", p.Name(), err)
	}
	progression.RestoreFromSnapshot(p, s.State())
	return nil
}
