package effect

// Channel says what an effect's per-turn magnitude feeds.
type Channel int8

const (
	ChannelNone   Channel = iota // pure flag read by stat/combat code
	ChannelHealth                // heal (+) or damage (-) on every tick
	ChannelAttack                // additive attack power modifier
)

// Stat names used by StatModifier.
type Stat string

const (
	StatAttack  Stat = "attack"
	StatDefense Stat = "defense"
	StatMagic   Stat = "magic"
	StatAgility Stat = "agility"
)

// StatModifier is an additive bonus an active effect contributes to a stat.
type StatModifier struct {
	Stat  Stat
	Value int
}

// Definition is the canonical data for one effect kind.
type Definition struct {
	Kind      Kind
	Duration  int // turns
	PerTurn   int // magnitude, interpreted through Channel
	Channel   Channel
	Modifiers []StatModifier // flat bonuses independent of PerTurn
	Harmful   bool
}

// ShieldDefenseBonus is the defense granted while Shield is active.
const ShieldDefenseBonus = 8

var catalog = [kindCount]Definition{
	Poison:       {Kind: Poison, Duration: 3, PerTurn: -5, Channel: ChannelHealth, Harmful: true},
	Burn:         {Kind: Burn, Duration: 2, PerTurn: -8, Channel: ChannelHealth, Harmful: true},
	Freeze:       {Kind: Freeze, Duration: 1, Harmful: true},
	Stun:         {Kind: Stun, Duration: 1, Harmful: true},
	Rage:         {Kind: Rage, Duration: 3, PerTurn: 10, Channel: ChannelAttack},
	Blessed:      {Kind: Blessed, Duration: 5, PerTurn: 5, Channel: ChannelHealth},
	Cursed:       {Kind: Cursed, Duration: 4, PerTurn: -10, Channel: ChannelAttack, Harmful: true},
	Haste:        {Kind: Haste, Duration: 3},
	Shield:       {Kind: Shield, Duration: 2, Modifiers: []StatModifier{{Stat: StatDefense, Value: ShieldDefenseBonus}}},
	Regeneration: {Kind: Regeneration, Duration: 4, PerTurn: 3, Channel: ChannelHealth},
}

// Lookup returns the definition for k. ok is false for unknown kinds.
func Lookup(k Kind) (Definition, bool) {
	if !k.Valid() {
		return Definition{}, false
	}
	return catalog[k], true
}

// Elemental effects a MAGIC attack may roll.
var Elemental = []Kind{Burn, Freeze, Poison}
