// Package itemhandler implements consumable item use.
// Each consumable template id maps to an ItemHandler.
package itemhandler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/udisondev/dungeoncrawl/internal/game/effect"
	"github.com/udisondev/dungeoncrawl/internal/model"
)

var (
	ErrNoHandler = errors.New("item has no use handler")
	ErrCannotUse = errors.New("item cannot be used now")
)

// Consumable template ids.
const (
	HealthPotion   = "health_potion"
	ManaPotion     = "mana_potion"
	Antidote       = "antidote"
	RageTonic      = "rage_tonic"
	BlessingScroll = "blessing_scroll"
	HasteDraught   = "haste_draught"
)

// UseResult describes the outcome of an item use.
type UseResult struct {
	Consume        bool // remove the item from the inventory
	Healed         int
	ManaRestored   int
	EffectsApplied []effect.Kind
	EffectsRemoved []effect.Kind
	Message        string
}

// ItemHandler processes use of one kind of consumable.
type ItemHandler interface {
	// UseItem applies the item to the player. Returns nil if the item
	// cannot be used right now.
	UseItem(player *model.Player, item *model.Item) *UseResult
}

// Registry maps template ids to handlers.
type Registry struct {
	handlers map[string]ItemHandler
	logger   *slog.Logger
}

// NewRegistry creates a registry with every built-in handler registered.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		handlers: make(map[string]ItemHandler),
		logger:   logger,
	}
	r.Register(HealthPotion, &healHandler{amount: 50})
	r.Register(ManaPotion, &manaHandler{amount: 30})
	r.Register(Antidote, &cureHandler{kinds: []effect.Kind{effect.Poison, effect.Burn}})
	r.Register(RageTonic, &effectHandler{kind: effect.Rage})
	r.Register(BlessingScroll, &effectHandler{kind: effect.Blessed})
	r.Register(HasteDraught, &effectHandler{kind: effect.Haste})
	return r
}

// Register adds or replaces the handler for templateID.
func (r *Registry) Register(templateID string, h ItemHandler) {
	r.handlers[templateID] = h
}

// Get returns the handler for templateID, or nil.
func (r *Registry) Get(templateID string) ItemHandler {
	return r.handlers[templateID]
}

// Use applies an inventory item to its owner and consumes it if the handler
// says so.
func (r *Registry) Use(player *model.Player, itemID uuid.UUID) (*UseResult, error) {
	item := player.Inventory().Find(itemID)
	if item == nil {
		return nil, fmt.Errorf("using item %s: %w", itemID, model.ErrItemNotFound)
	}
	h := r.Get(item.TemplateID())
	if h == nil {
		return nil, fmt.Errorf("using %s: %w", item.Name(), ErrNoHandler)
	}

	res := h.UseItem(player, item)
	if res == nil {
		return nil, fmt.Errorf("using %s: %w", item.Name(), ErrCannotUse)
	}
	if res.Consume {
		if _, err := player.Inventory().Remove(item.ID()); err != nil {
			return nil, fmt.Errorf("consuming %s: %w", item.Name(), err)
		}
	}

	r.logger.Debug("item used",
		"player", player.Name(),
		"item", item.TemplateID(),
		"healed", res.Healed,
		"mana", res.ManaRestored)
	return res, nil
}

// UseByTemplate uses the first inventory item with the given template id.
func (r *Registry) UseByTemplate(player *model.Player, templateID string) (*UseResult, error) {
	item := player.Inventory().FindByTemplate(templateID)
	if item == nil {
		return nil, fmt.Errorf("using %s: %w", templateID, model.ErrItemNotFound)
	}
	return r.Use(player, item.ID())
}

// NewConsumable creates a consumable item instance for templateID.
func NewConsumable(templateID string) *model.Item {
	return model.NewItem(templateID, DisplayName(templateID), model.ItemConsumable, model.ItemBonus{})
}

// DisplayName turns a template id like "health_potion" into "Health Potion".
func DisplayName(templateID string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(templateID, "_", " "))
}
