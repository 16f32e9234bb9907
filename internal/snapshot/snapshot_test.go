package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/progression"
	"github.com/udisondev/dungeoncrawl/internal/model"
	"github.com/udisondev/dungeoncrawl/internal/rng"
)

func leveledPlayer(t *testing.T) *model.Player {
	t.Helper()
	p, err := model.NewPlayer("Ilyra", data.ClassMage, 0)
	require.NoError(t, err)
	progression.NewEngine(rng.New(4)).GrantExperience(p, 500)
	p.TakeDamage(17)
	p.ExploreRoom()
	p.RecordKill()
	p.SetDungeonLevel(2)
	return p
}

func TestCaptureApply(t *testing.T) {
	src := leveledPlayer(t)
	snap := Capture(src)
	require.NoError(t, snap.Verify())

	dst, err := model.NewPlayer("Ilyra", data.ClassMage, 0)
	require.NoError(t, err)
	require.NoError(t, snap.Apply(dst))

	assert.Equal(t, progression.Capture(src), progression.Capture(dst))
	assert.Equal(t, src.ExperienceToNextLevel(), dst.ExperienceToNextLevel())
}

func TestChecksumDetectsTampering(t *testing.T) {
	snap := Capture(leveledPlayer(t))
	snap.Level = 99

	assert.ErrorIs(t, snap.Verify(), ErrSnapshotChecksum)

	p, err := model.NewPlayer("Cheater", data.ClassRogue, 0)
	require.NoError(t, err)
	assert.ErrorIs(t, snap.Apply(p), ErrSnapshotChecksum)
	assert.Equal(t, 1, p.Level(), "player untouched on failure")
}

func TestChecksumStable(t *testing.T) {
	st := progression.SavedState{Level: 3, Experience: 10, CurrentHealth: 50, MaxHealth: 90, DungeonLevel: 1}
	a, b := FromState(st), FromState(st)

	assert.Equal(t, a.Checksum, b.Checksum)
	assert.Len(t, a.Checksum, 64)

	st.Experience++
	assert.NotEqual(t, a.Checksum, FromState(st).Checksum)
}

func TestJSONRoundTripKeepsChecksum(t *testing.T) {
	snap := Capture(leveledPlayer(t))

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var got Snapshot
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.NoError(t, got.Verify())
	assert.Contains(t, string(raw), `"dungeon_level":2`)
}
