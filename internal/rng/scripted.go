package rng

// Scripted replays a fixed list of values in order, cycling when exhausted.
// IntN maps the next value onto [0, n).
//
// Used by tests and by replays of recorded encounters.
type Scripted struct {
	values []float64
	pos    int
}

// NewScripted returns a Source that yields values in order.
// With no values it always yields 0.
func NewScripted(values ...float64) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) next() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return 0.999999
	}
	return v
}

func (s *Scripted) Float64() float64 { return s.next() }

func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Consumed returns how many values have been drawn so far.
func (s *Scripted) Consumed() int {
	return s.pos
}
