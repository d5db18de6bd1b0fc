// Package hud keeps the inventory panel shown below the game area and composes the
// translated lines it displays.
package hud

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"stonesnspells/pkg/engine/input"
	"stonesnspells/pkg/game/entities"
)

// Inventory is told about every item the player picks up.
type Inventory struct {
	items []*entities.Item
	dirty bool
}

// NewInventory returns an empty inventory that needs its first paint.
func NewInventory() *Inventory {
	return &Inventory{dirty: true}
}

// AddItem appends an item to the list. Adding the same item twice is a no-op.
func (i *Inventory) AddItem(item *entities.Item) {
	for _, have := range i.items {
		if have == item {
			return
		}
	}
	i.items = append(i.items, item)
}

// RequestRepaint marks the panel stale.
func (i *Inventory) RequestRepaint() {
	i.dirty = true
}

// TakeRepaint reports whether a repaint was requested and clears the request.
func (i *Inventory) TakeRepaint() bool {
	dirty := i.dirty
	i.dirty = false
	return dirty
}

// Items returns the picked-up items in pickup order.
func (i *Inventory) Items() []*entities.Item {
	return i.items
}

// Panel is the text content of the HUD for one frame.
type Panel struct {
	HPLabel   string
	HP        int
	MaxHP     int
	RoomLabel string
	Title     string
	Items     []string
	Status    string
}

// Compose builds the panel for the player's current state. Status is empty while
// the game is running.
func Compose(p *entities.Player, inv *Inventory, roomID int, won bool) Panel {
	panel := Panel{
		HPLabel:   fmt.Sprintf("%s %d/%d", Text("HP_LABEL"), max(p.HP, 0), p.MaxHP),
		HP:        max(p.HP, 0),
		MaxHP:     p.MaxHP,
		RoomLabel: fmt.Sprintf("%s %d", Text("ROOM_LABEL"), roomID),
		Title:     Text("INVENTORY"),
	}
	for _, item := range inv.Items() {
		panel.Items = append(panel.Items, ItemName(item.Kind))
	}
	switch {
	case p.IsDead():
		panel.Status = Text("GAME_OVER")
	case won:
		panel.Status = Text("YOU_WIN")
	}
	return panel
}

// ItemName returns the translated display name of an item kind.
func ItemName(kind entities.ItemKind) string {
	info, ok := entities.ItemTypes[kind]
	if !ok {
		return kind.String()
	}
	if s := gotext.Get(info.NameKey); s != info.NameKey {
		return s
	}
	return info.Name
}

// fallbacks are shown when the catalogue is not loaded or misses a key.
var fallbacks = map[string]string{
	"YOU_WIN":    "YOU WIN!",
	"GAME_OVER":  "GAME OVER",
	"PAUSED":     "PAUSED",
	"PAUSE_HINT": "Press Esc to resume",
	"BOSS_NAME":  "Golem",
	"HP_LABEL":   "HP",
	"INVENTORY":  "Inventory",
	"ROOM_LABEL": "Room",
}

// Text translates a UI key.
func Text(key string) string {
	if s := gotext.Get(key); s != key {
		return s
	}
	if s, ok := fallbacks[key]; ok {
		return s
	}
	return key
}

// controlsOrder is the order actions are listed on the pause screen.
var controlsOrder = []input.Action{
	input.ActionMoveNorth,
	input.ActionMoveSouth,
	input.ActionMoveWest,
	input.ActionMoveEast,
	input.ActionAttack,
	input.ActionCast,
	input.ActionPause,
	input.ActionReset,
	input.ActionDumpState,
}

// Controls returns one "Action: code, code" line per action for the pause screen.
func Controls() []string {
	byAction := input.GetBindingsByAction()
	lines := make([]string, 0, len(controlsOrder))
	for _, act := range controlsOrder {
		codes := strings.Join(byAction[act], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", input.ActionName(act), codes))
	}
	return lines
}
