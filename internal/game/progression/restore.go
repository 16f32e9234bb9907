package progression

import (
	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

// SavedState is the persisted slice of player state.
type SavedState struct {
	Level            int
	Experience       int64
	CurrentHealth    int
	MaxHealth        int
	Attack           int
	Defense          int
	Magic            int
	RoomsExplored    int
	MonstersDefeated int
	DungeonLevel     int
}

// Capture reads the persisted fields from p.
func Capture(p *model.Player) SavedState {
	s := p.Stats()
	return SavedState{
		Level:            p.Level(),
		Experience:       p.Experience(),
		CurrentHealth:    p.CurrentHP(),
		MaxHealth:        p.MaxHP(),
		Attack:           s.Attack,
		Defense:          s.Defense,
		Magic:            s.Magic,
		RoomsExplored:    p.RoomsExplored(),
		MonstersDefeated: p.MonstersDefeated(),
		DungeonLevel:     p.DungeonLevel(),
	}
}

// RestoreFromSnapshot overwrites p with saved state. Experience to next level
// is recomputed from the level with the same curve organic leveling uses, so a
// loaded character matches a freshly leveled one. Out-of-range values are
// clamped; no level-ups are triggered.
func RestoreFromSnapshot(p *model.Player, st SavedState) {
	level := min(max(st.Level, 1), data.MaxPlayerLevel)
	p.SetLevel(level)
	p.SetExperienceToNextLevel(data.ExperienceToNextLevel(level))
	p.SetExperience(st.Experience)

	p.SetMaxHP(st.MaxHealth)
	p.SetCurrentHP(st.CurrentHealth)

	s := p.Stats()
	s.Attack = max(st.Attack, 0)
	s.Defense = max(st.Defense, 0)
	s.Magic = max(st.Magic, 0)
	p.SetStats(s)

	p.SetRoomsExplored(st.RoomsExplored)
	p.SetMonstersDefeated(st.MonstersDefeated)
	p.SetDungeonLevel(st.DungeonLevel)
}
