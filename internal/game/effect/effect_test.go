package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHolder is a minimal Holder with clamped health.
type testHolder struct {
	hp, maxHP int
	ledger    *Ledger
}

func newTestHolder(hp, maxHP int) *testHolder {
	return &testHolder{hp: hp, maxHP: maxHP, ledger: NewLedger()}
}

func (h *testHolder) Name() string    { return "Tester" }
func (h *testHolder) Ledger() *Ledger { return h.ledger }
func (h *testHolder) IsDead() bool    { return h.hp <= 0 }

func (h *testHolder) Heal(n int) int {
	if n <= 0 || h.IsDead() {
		return 0
	}
	before := h.hp
	h.hp = min(h.hp+n, h.maxHP)
	return h.hp - before
}

func (h *testHolder) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	before := h.hp
	h.hp = max(h.hp-n, 0)
	return before - h.hp
}

func TestCatalog_EveryKindHasEntry(t *testing.T) {
	for _, k := range Kinds {
		def, ok := Lookup(k)
		require.True(t, ok, "kind %s missing", k)
		assert.Equal(t, k, def.Kind)
		assert.Positive(t, def.Duration, "kind %s", k)
		assert.NotContains(t, k.String(), "Kind(")
	}
	assert.Len(t, Kinds, int(kindCount))
}

func TestCatalog_CanonicalValues(t *testing.T) {
	tests := []struct {
		kind     Kind
		duration int
		perTurn  int
	}{
		{Poison, 3, -5},
		{Burn, 2, -8},
		{Freeze, 1, 0},
		{Stun, 1, 0},
		{Rage, 3, 10},
		{Blessed, 5, 5},
		{Cursed, 4, -10},
		{Haste, 3, 0},
		{Shield, 2, 0},
		{Regeneration, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			def, _ := Lookup(tt.kind)
			assert.Equal(t, tt.duration, def.Duration)
			assert.Equal(t, tt.perTurn, def.PerTurn)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup(Kind(99))
	assert.False(t, ok)
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("Petrify")
	assert.Error(t, err)
}

func TestApply_RefreshNotStack(t *testing.T) {
	h := newTestHolder(100, 100)

	require.True(t, Apply(h, Poison))
	assert.Equal(t, 3, h.ledger.Remaining(Poison))

	Tick(h)
	assert.Equal(t, 2, h.ledger.Remaining(Poison))

	// Reapplying refreshes to max(existing, new) = 3, never 5.
	require.True(t, Apply(h, Poison))
	assert.Equal(t, 3, h.ledger.Remaining(Poison))

	// Already at full duration: nothing changes.
	assert.False(t, Apply(h, Poison))
	assert.Equal(t, 3, h.ledger.Remaining(Poison))
}

func TestApply_DeadHolderIsNoOp(t *testing.T) {
	h := newTestHolder(0, 100)
	assert.False(t, Apply(h, Burn))
	assert.Equal(t, 0, h.ledger.Len())
}

func TestApply_UnknownKind(t *testing.T) {
	h := newTestHolder(10, 10)
	assert.False(t, Apply(h, Kind(42)))
}

func TestTick_DamageOverTime(t *testing.T) {
	h := newTestHolder(100, 100)
	Apply(h, Burn)

	msgs := Tick(h)
	require.Len(t, msgs, 1)
	assert.Equal(t, -8, msgs[0].Amount)
	assert.False(t, msgs[0].Expired)
	assert.Equal(t, 92, h.hp)

	msgs = Tick(h)
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].Expired)
	assert.Equal(t, 84, h.hp)
	assert.False(t, h.ledger.Has(Burn))
}

func TestTick_HealOverTimeClampsAtMax(t *testing.T) {
	h := newTestHolder(98, 100)
	Apply(h, Blessed)

	msgs := Tick(h)
	require.Len(t, msgs, 1)
	assert.Equal(t, 2, msgs[0].Amount)
	assert.Equal(t, 100, h.hp)
}

func TestTick_RageDoesNotTouchHealth(t *testing.T) {
	h := newTestHolder(50, 100)
	Apply(h, Rage)

	Tick(h)
	assert.Equal(t, 50, h.hp)
	assert.Equal(t, 2, h.ledger.Remaining(Rage))
}

func TestTick_UntilExpiryLeavesNoEntries(t *testing.T) {
	h := newTestHolder(1000, 1000)
	for _, k := range Kinds {
		Apply(h, k)
	}

	for range 10 {
		Tick(h)
		for _, k := range h.ledger.Active() {
			assert.Positive(t, h.ledger.Remaining(k))
		}
	}
	assert.Equal(t, 0, h.ledger.Len())
}

func TestTick_DeadHolderStillDecays(t *testing.T) {
	h := newTestHolder(3, 100)
	Apply(h, Poison)
	Apply(h, Regeneration)

	Tick(h) // poison kills before regeneration in tick order
	assert.Equal(t, 0, h.hp)

	Tick(h)
	Tick(h)
	assert.Equal(t, 0, h.hp, "dead holder must not be healed")
	assert.False(t, h.ledger.Has(Poison))
	assert.True(t, h.ledger.Has(Regeneration))
}

func TestTick_EmptyLedger(t *testing.T) {
	h := newTestHolder(10, 10)
	assert.Nil(t, Tick(h))
}

func TestModifiers(t *testing.T) {
	l := NewLedger()
	assert.Empty(t, Modifiers(l))

	l.refresh(Rage, 3)
	l.refresh(Shield, 2)
	mods := Modifiers(l)
	assert.Equal(t, 10, mods[StatAttack])
	assert.Equal(t, ShieldDefenseBonus, mods[StatDefense])

	l.refresh(Cursed, 4)
	assert.Equal(t, 0, Modifiers(l)[StatAttack])
}

func TestRemoveAndClearHarmful(t *testing.T) {
	h := newTestHolder(100, 100)
	Apply(h, Poison)
	Apply(h, Burn)
	Apply(h, Haste)

	assert.True(t, Remove(h, Burn))
	assert.False(t, Remove(h, Burn))

	removed := ClearHarmful(h)
	assert.Equal(t, []Kind{Poison}, removed)
	assert.Equal(t, []Kind{Haste}, h.ledger.Active())
}

func TestKind_TextRoundTrip(t *testing.T) {
	b, err := Rage.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Rage", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("Shield")))
	assert.Equal(t, Shield, k)

	_, err = Kind(77).MarshalText()
	assert.Error(t, err)
}
