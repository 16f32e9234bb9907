// Package effect holds the status effect catalog and the per-combatant ledger.
//
// Effects are pure data: a kind, a duration in turns, a per-turn magnitude and
// the channel that magnitude feeds (health tick, attack modifier, or nothing).
// Resolution code never attaches behavior to a kind beyond its table entry.
package effect

import "fmt"

// Kind identifies a status effect.
type Kind int8

const (
	Poison Kind = iota
	Burn
	Freeze
	Stun
	Rage
	Blessed
	Cursed
	Haste
	Shield
	Regeneration

	kindCount
)

// Kinds lists every effect in tick order.
var Kinds = [...]Kind{Poison, Burn, Freeze, Stun, Rage, Blessed, Cursed, Haste, Shield, Regeneration}

// String returns the display name of the effect.
func (k Kind) String() string {
	switch k {
	case Poison:
		return "Poison"
	case Burn:
		return "Burn"
	case Freeze:
		return "Freeze"
	case Stun:
		return "Stun"
	case Rage:
		return "Rage"
	case Blessed:
		return "Blessed"
	case Cursed:
		return "Cursed"
	case Haste:
		return "Haste"
	case Shield:
		return "Shield"
	case Regeneration:
		return "Regeneration"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// Valid reports whether k is a catalogued effect.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind resolves a display name back to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown effect %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid effect kind %d", int8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
