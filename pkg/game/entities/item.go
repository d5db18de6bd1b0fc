package entities

import "fmt"

// ItemKind identifies an item.
type ItemKind int

const (
	ItemWhetstone ItemKind = iota
	ItemStoneHeart
	ItemWingBoots
	ItemFireballScroll
)

// ItemPool is every item a chest can hold.
var ItemPool = []ItemKind{ItemWhetstone, ItemStoneHeart, ItemWingBoots, ItemFireballScroll}

// ItemInfo contains display information for each item kind.
type ItemInfo struct {
	Name    string // Fallback display name
	NameKey string // Translation key
	Sprite  string
	Passive bool
}

// ItemTypes maps item kinds to their display information
var ItemTypes = map[ItemKind]ItemInfo{
	ItemWhetstone:      {Name: "Whetstone", NameKey: "ITEM_WHETSTONE", Sprite: "item_whetstone", Passive: true},
	ItemStoneHeart:     {Name: "Stone Heart", NameKey: "ITEM_STONE_HEART", Sprite: "item_stone_heart", Passive: true},
	ItemWingBoots:      {Name: "Wing Boots", NameKey: "ITEM_WING_BOOTS", Sprite: "item_wing_boots", Passive: true},
	ItemFireballScroll: {Name: "Fireball Scroll", NameKey: "ITEM_FIREBALL_SCROLL", Sprite: "item_fireball_scroll"},
}

// String returns the name of the item kind
func (k ItemKind) String() string {
	if info, ok := ItemTypes[k]; ok {
		return info.Name
	}
	return fmt.Sprintf("Item(%d)", int(k))
}

// IsPassive reports whether the item is a stat modifier.
func (k ItemKind) IsPassive() bool {
	info, ok := ItemTypes[k]
	return ok && info.Passive
}

// IsActive reports whether the item is triggered by input while owned.
func (k ItemKind) IsActive() bool {
	info, ok := ItemTypes[k]
	return ok && !info.Passive
}

// StoneHeartBonus is the max HP granted by a Stone Heart.
const StoneHeartBonus = 2

// Item is a single equippable item.
type Item struct {
	Kind   ItemKind
	active bool
	owner  *Creature
}

// NewItem creates an unequipped item.
func NewItem(kind ItemKind) *Item {
	return &Item{Kind: kind}
}

// IsActive reports whether a passive item's effect is currently applied.
func (i *Item) IsActive() bool {
	return i.active
}

// Owner returns the creature an active item is bound to.
func (i *Item) Owner() *Creature {
	return i.owner
}

// AssignOwner binds an active item to c (nil unbinds).
func (i *Item) AssignOwner(c *Creature) {
	i.owner = c
}

// Activate applies a passive item's stat change to c. A second call without an
// intervening Deactivate does nothing.
func (i *Item) Activate(c *Creature) {
	if i.active || !i.Kind.IsPassive() {
		return
	}
	i.active = true
	switch i.Kind {
	case ItemWhetstone:
		c.Attack++
	case ItemStoneHeart:
		c.MaxHP += StoneHeartBonus
		c.HP = c.MaxHP
	case ItemWingBoots:
		c.Speed++
	}
}

// Deactivate reverts Activate.
func (i *Item) Deactivate(c *Creature) {
	if !i.active {
		return
	}
	i.active = false
	switch i.Kind {
	case ItemWhetstone:
		c.Attack--
	case ItemStoneHeart:
		c.MaxHP -= StoneHeartBonus
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
	case ItemWingBoots:
		c.Speed--
	}
}
