package combat

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
)

// AttackType selects the damage formula and side effects of an attack.
type AttackType int8

const (
	AttackNormal AttackType = iota
	AttackHeavy
	AttackQuick
	AttackMagic
	AttackSpecial
	AttackDefensive
	attackTypeCount
)

func (a AttackType) String() string {
	switch a {
	case AttackNormal:
		return "NORMAL"
	case AttackHeavy:
		return "HEAVY"
	case AttackQuick:
		return "QUICK"
	case AttackMagic:
		return "MAGIC"
	case AttackSpecial:
		return "SPECIAL_ABILITY"
	case AttackDefensive:
		return "DEFENSIVE_STANCE"
	default:
		return fmt.Sprintf("AttackType(%d)", int8(a))
	}
}

// Valid reports whether a is a known attack type.
func (a AttackType) Valid() bool { return a >= 0 && a < attackTypeCount }

// Normalize maps unknown attack types to AttackNormal.
func (a AttackType) Normalize() AttackType {
	if !a.Valid() {
		return AttackNormal
	}
	return a
}

// ParseAttackType parses names like "heavy" or "SPECIAL_ABILITY".
func ParseAttackType(s string) (AttackType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for a := AttackNormal; a < attackTypeCount; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	switch s {
	case "SPECIAL":
		return AttackSpecial, nil
	case "DEFEND", "DEFENSIVE":
		return AttackDefensive, nil
	}
	return AttackNormal, fmt.Errorf("unknown attack type %q", s)
}

// label renders an attack type for descriptions, e.g. "Special Ability".
func (a AttackType) label() string {
	// Casers are stateful and must not be shared across goroutines.
	return cases.Title(language.English).String(strings.ToLower(strings.ReplaceAll(a.String(), "_", " ")))
}

// ResultKind classifies an attack resolution.
type ResultKind int8

const (
	ResultMiss ResultKind = iota
	ResultHit
	ResultCriticalHit
	ResultBlocked
	// Reserved; no attack type produces these yet.
	ResultParried
	ResultCountered
)

func (r ResultKind) String() string {
	switch r {
	case ResultMiss:
		return "MISS"
	case ResultHit:
		return "HIT"
	case ResultCriticalHit:
		return "CRITICAL_HIT"
	case ResultBlocked:
		return "BLOCKED"
	case ResultParried:
		return "PARRIED"
	case ResultCountered:
		return "COUNTERED"
	default:
		return fmt.Sprintf("ResultKind(%d)", int8(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r ResultKind) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ResultKind) UnmarshalText(text []byte) error {
	s := string(text)
	for k := ResultMiss; k <= ResultCountered; k++ {
		if k.String() == s {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("unknown result kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a AttackType) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AttackType) UnmarshalText(text []byte) error {
	parsed, err := ParseAttackType(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Outcome is the result of one attack action.
type Outcome struct {
	Attacker   string     `json:"attacker"`
	Defender   string     `json:"defender"`
	AttackType AttackType `json:"attack_type"`
	Result     ResultKind `json:"result"`
	Damage     int        `json:"damage"`
	Critical   bool       `json:"critical,omitempty"`
	// Ability names the special ability used, if any.
	Ability string `json:"ability,omitempty"`
	// EffectsApplied landed on the defender, SelfEffects on the attacker.
	EffectsApplied []effect.Kind `json:"effects_applied,omitempty"`
	SelfEffects    []effect.Kind `json:"self_effects,omitempty"`
	TargetDefeated bool          `json:"target_defeated"`
	Description    string        `json:"description"`
}

// Landed reports whether the attack connected.
func (o Outcome) Landed() bool {
	return o.Result == ResultHit || o.Result == ResultCriticalHit || (o.Result == ResultBlocked && o.Damage > 0)
}
