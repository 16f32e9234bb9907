package sim

import (
	"slices"
	"time"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/encounter"
)

// Row aggregates the fights of one class at one level.
// Level is 0 in per-class summaries.
type Row struct {
	Class       data.Class
	Level       int
	Encounters  int
	Wins        int
	Defeats     int
	Fled        int
	TimedOut    int
	TotalTurns  int
	DamageDealt int
	DamageTaken int
}

func (r Row) WinRate() float64 { return ratio(r.Wins, r.Encounters) }

func (r Row) AvgTurns() float64 { return ratio(r.TotalTurns, r.Encounters) }

func (r Row) AvgDamageDealt() float64 { return ratio(r.DamageDealt, r.Encounters) }

func (r Row) AvgDamageTaken() float64 { return ratio(r.DamageTaken, r.Encounters) }

func (r *Row) add(res Result) {
	r.Encounters++
	r.TotalTurns += res.Turns
	r.DamageDealt += res.DamageDealt
	r.DamageTaken += res.DamageTaken
	switch {
	case res.TimedOut:
		r.TimedOut++
	case res.Won():
		r.Wins++
	case res.State == encounter.StateFled:
		r.Fled++
	default:
		r.Defeats++
	}
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// Report is the aggregated outcome of a run, ordered by class then level.
type Report struct {
	Rows    []Row
	Elapsed time.Duration
}

// Encounters returns the total number of simulated fights.
func (r Report) Encounters() int {
	n := 0
	for _, row := range r.Rows {
		n += row.Encounters
	}
	return n
}

// ByClass sums the rows of each class across levels.
func (r Report) ByClass() []Row {
	var out []Row
	for _, row := range r.Rows {
		i := slices.IndexFunc(out, func(s Row) bool { return s.Class == row.Class })
		if i < 0 {
			out = append(out, Row{Class: row.Class})
			i = len(out) - 1
		}
		s := &out[i]
		s.Encounters += row.Encounters
		s.Wins += row.Wins
		s.Defeats += row.Defeats
		s.Fled += row.Fled
		s.TimedOut += row.TimedOut
		s.TotalTurns += row.TotalTurns
		s.DamageDealt += row.DamageDealt
		s.DamageTaken += row.DamageTaken
	}
	return out
}

type rowKey struct {
	class data.Class
	level int
}

func aggregate(results []Result) Report {
	index := make(map[rowKey]int)
	var rows []Row
	for _, res := range results {
		k := rowKey{res.Class, res.Level}
		i, ok := index[k]
		if !ok {
			i = len(rows)
			index[k] = i
			rows = append(rows, Row{Class: res.Class, Level: res.Level})
		}
		rows[i].add(res)
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		if a.Class != b.Class {
			return int(a.Class) - int(b.Class)
		}
		return a.Level - b.Level
	})
	return Report{Rows: rows}
}
