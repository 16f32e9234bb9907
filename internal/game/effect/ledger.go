package effect

// Ledger maps active effect kinds to remaining turns.
// Entries are always > 0; an entry reaching 0 is removed immediately.
type Ledger struct {
	remaining map[Kind]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{remaining: make(map[Kind]int)}
}

// Has reports whether k is active.
func (l *Ledger) Has(k Kind) bool {
	if l == nil {
		return false
	}
	_, ok := l.remaining[k]
	return ok
}

// Remaining returns turns left for k (0 if inactive).
func (l *Ledger) Remaining(k Kind) int {
	if l == nil {
		return 0
	}
	return l.remaining[k]
}

// Len returns the number of active effects.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.remaining)
}

// Active returns active kinds in tick order.
func (l *Ledger) Active() []Kind {
	if l == nil {
		return nil
	}
	out := make([]Kind, 0, len(l.remaining))
	for _, k := range Kinds {
		if _, ok := l.remaining[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// set stores turns for k, removing the entry when turns <= 0.
func (l *Ledger) set(k Kind, turns int) {
	if turns <= 0 {
		delete(l.remaining, k)
		return
	}
	l.remaining[k] = turns
}

// refresh applies the no-stack policy: duration = max(existing, turns).
func (l *Ledger) refresh(k Kind, turns int) {
	if cur, ok := l.remaining[k]; ok && cur >= turns {
		return
	}
	l.set(k, turns)
}

// Clear drops every entry.
func (l *Ledger) Clear() {
	clear(l.remaining)
}
