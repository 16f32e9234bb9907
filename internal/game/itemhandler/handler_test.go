package itemhandler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeoncrawl/internal/data"
	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

func newPlayer(t *testing.T, class data.Class, items ...string) *model.Player {
	t.Helper()
	p, err := model.NewPlayer("Tester", class, 0)
	require.NoError(t, err)
	for _, id := range items {
		require.NoError(t, p.Inventory().Add(NewConsumable(id)))
	}
	return p
}

func TestNewRegistry_RegistersBuiltins(t *testing.T) {
	t.Parallel()
	r := NewRegistry(nil)
	for _, id := range []string{HealthPotion, ManaPotion, Antidote, RageTonic, BlessingScroll, HasteDraught} {
		assert.NotNil(t, r.Get(id), id)
	}
	assert.Nil(t, r.Get("NonExistent"))
}

func TestDisplayName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Health Potion", DisplayName(HealthPotion))
	assert.Equal(t, "Antidote", DisplayName(Antidote))
	assert.Equal(t, "Health Potion", NewConsumable(HealthPotion).Name())
}

func TestUse_HealthPotion(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassWarrior, HealthPotion)
	p.TakeDamage(80)

	res, err := NewRegistry(nil).UseByTemplate(p, HealthPotion)

	require.NoError(t, err)
	assert.Equal(t, 50, res.Healed)
	assert.Equal(t, 90, p.CurrentHP())
	assert.Zero(t, p.Inventory().Count(), "potion consumed")
}

func TestUse_HealthPotionCapsAtMax(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassWarrior, HealthPotion)
	p.TakeDamage(10)

	res, err := NewRegistry(nil).UseByTemplate(p, HealthPotion)

	require.NoError(t, err)
	assert.Equal(t, 10, res.Healed)
	assert.Equal(t, p.MaxHP(), p.CurrentHP())
}

func TestUse_HealthPotionAtFullHealth(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassWarrior, HealthPotion)

	_, err := NewRegistry(nil).UseByTemplate(p, HealthPotion)

	assert.ErrorIs(t, err, ErrCannotUse)
	assert.Equal(t, 1, p.Inventory().Count(), "not consumed")
}

func TestUse_DeadPlayer(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassMage, HealthPotion)
	p.TakeDamage(p.MaxHP())

	_, err := NewRegistry(nil).UseByTemplate(p, HealthPotion)

	assert.ErrorIs(t, err, ErrCannotUse)
	assert.True(t, p.IsDead())
}

func TestUse_ManaPotion(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassMage, ManaPotion)
	p.SpendMana(40)

	res, err := NewRegistry(nil).UseByTemplate(p, ManaPotion)

	require.NoError(t, err)
	assert.Equal(t, 30, res.ManaRestored)
	assert.Equal(t, 90, p.Mana())
}

func TestUse_Antidote(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassRogue, Antidote, Antidote)
	effect.Apply(p, effect.Poison)
	effect.Apply(p, effect.Burn)
	effect.Apply(p, effect.Rage)

	res, err := NewRegistry(nil).UseByTemplate(p, Antidote)

	require.NoError(t, err)
	assert.ElementsMatch(t, []effect.Kind{effect.Poison, effect.Burn}, res.EffectsRemoved)
	assert.False(t, p.HasEffect(effect.Poison))
	assert.False(t, p.HasEffect(effect.Burn))
	assert.True(t, p.HasEffect(effect.Rage))

	_, err = NewRegistry(nil).UseByTemplate(p, Antidote)
	assert.ErrorIs(t, err, ErrCannotUse, "nothing left to cure")
	assert.Equal(t, 1, p.Inventory().Count())
}

func TestUse_EffectItems(t *testing.T) {
	t.Parallel()
	tests := []struct {
		item string
		want effect.Kind
	}{
		{RageTonic, effect.Rage},
		{BlessingScroll, effect.Blessed},
		{HasteDraught, effect.Haste},
	}
	for _, tt := range tests {
		p := newPlayer(t, data.ClassCleric, tt.item)
		res, err := NewRegistry(nil).UseByTemplate(p, tt.item)
		require.NoError(t, err, tt.item)
		assert.Equal(t, []effect.Kind{tt.want}, res.EffectsApplied)
		assert.True(t, p.HasEffect(tt.want))
		assert.Zero(t, p.Inventory().Count())
	}
}

func TestUse_Errors(t *testing.T) {
	t.Parallel()
	p := newPlayer(t, data.ClassWarrior)
	r := NewRegistry(nil)

	_, err := r.Use(p, uuid.New())
	assert.ErrorIs(t, err, model.ErrItemNotFound)

	sword := model.NewItem("iron_sword", "Iron Sword", model.ItemWeapon, model.ItemBonus{Attack: 5})
	require.NoError(t, p.Inventory().Add(sword))
	_, err = r.Use(p, sword.ID())
	assert.ErrorIs(t, err, ErrNoHandler)

	_, err = r.UseByTemplate(p, HealthPotion)
	assert.ErrorIs(t, err, model.ErrItemNotFound)
}
