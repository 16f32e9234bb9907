package effect

import "fmt"

// Holder is anything that carries a ledger and health.
type Holder interface {
	Name() string
	Ledger() *Ledger
	IsDead() bool
	Heal(amount int) int
	TakeDamage(amount int) int
}

// Message describes what happened to one effect during a tick.
type Message struct {
	Kind    Kind
	Amount  int  // health restored (>0) or lost (<0) this tick
	Expired bool // effect was removed by this tick
	Text    string
}

// Apply adds k to the holder's ledger with its catalog duration.
// Applying to a dead holder is a no-op. Returns whether the ledger changed.
func Apply(h Holder, k Kind) bool {
	def, ok := Lookup(k)
	if !ok || h.IsDead() {
		return false
	}
	l := h.Ledger()
	before := l.Remaining(k)
	l.refresh(k, def.Duration)
	return l.Remaining(k) != before
}

// Remove drops k from the holder's ledger. Returns whether it was active.
func Remove(h Holder, k Kind) bool {
	l := h.Ledger()
	if !l.Has(k) {
		return false
	}
	l.set(k, 0)
	return true
}

// Tick advances every active effect by one turn.
//
// Health-channel effects heal (positive) or damage (negative) the holder, then
// every duration is decremented and expired entries are removed. Health is not
// touched once the holder is dead, but durations still decay.
func Tick(h Holder) []Message {
	l := h.Ledger()
	name := h.Name()
	active := l.Active()
	if len(active) == 0 {
		return nil
	}

	msgs := make([]Message, 0, len(active))
	for _, k := range active {
		def := catalog[k]
		msg := Message{Kind: k}

		if def.Channel == ChannelHealth && !h.IsDead() {
			switch {
			case def.PerTurn > 0:
				msg.Amount = h.Heal(def.PerTurn)
				msg.Text = fmt.Sprintf("%s recovers %d health from %s", name, msg.Amount, k)
			case def.PerTurn < 0:
				msg.Amount = -h.TakeDamage(-def.PerTurn)
				msg.Text = fmt.Sprintf("%s takes %d damage from %s", name, -msg.Amount, k)
			}
		}

		left := l.Remaining(k) - 1
		l.set(k, left)
		if left <= 0 {
			msg.Expired = true
			if msg.Text == "" {
				msg.Text = fmt.Sprintf("%s's %s wears off", name, k)
			} else {
				msg.Text += fmt.Sprintf("; %s wears off", k)
			}
		}
		if msg.Text != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Modifiers sums the stat modifiers of every active effect.
func Modifiers(l *Ledger) map[Stat]int {
	mods := make(map[Stat]int)
	for _, k := range l.Active() {
		def := catalog[k]
		if def.Channel == ChannelAttack {
			mods[StatAttack] += def.PerTurn
		}
		for _, m := range def.Modifiers {
			mods[m.Stat] += m.Value
		}
	}
	return mods
}

// ClearHarmful removes every harmful effect. Returns the removed kinds.
func ClearHarmful(h Holder) []Kind {
	var removed []Kind
	for _, k := range h.Ledger().Active() {
		if catalog[k].Harmful {
			Remove(h, k)
			removed = append(removed, k)
		}
	}
	return removed
}
