package entities

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"stonesnspells/pkg/engine/physics"
)

// Stats are the combat numbers a creature is created with.
type Stats struct {
	HP     int
	Attack int
	Speed  int
}

// DefaultStats apply to any creature that does not set its own.
var DefaultStats = Stats{HP: 1, Attack: 1, Speed: 1}

// Creature is the stat-bearing, movable part shared by the player and enemies.
type Creature struct {
	MaxHP  int
	HP     int
	Attack int
	Speed  int

	body  physics.Body
	self  physics.Collidable // the Player or Enemy embedding this creature
	items mapset.Set[*Item]
}

func newCreature(self physics.Collidable, body physics.Body, stats Stats) Creature {
	return Creature{
		MaxHP:  stats.HP,
		HP:     stats.HP,
		Attack: stats.Attack,
		Speed:  stats.Speed,
		body:   body,
		self:   self,
		items:  mapset.New[*Item](),
	}
}

// Body returns the creature's geometry.
func (c *Creature) Body() physics.Body {
	return c.body
}

// IsDead reports whether the creature has run out of HP.
func (c *Creature) IsDead() bool {
	return c.HP <= 0
}

// Place moves the creature to (x, y) unconditionally.
func (c *Creature) Place(x, y int) {
	c.body.X = x
	c.body.Y = y
}

// SetPos moves the creature to (x, y) if that point lies strictly inside the arena.
// Knockback uses it, so a hit towards a wall is simply not displaced.
func (c *Creature) SetPos(x, y int, a Arena) bool {
	w, h := a.Size()
	if x <= 0 || x >= w || y <= 0 || y >= h {
		return false
	}
	c.Place(x, y)
	return true
}

// Move takes one step of Speed pixels towards d. The step is silently dropped when it
// would leave the arena or run into something the creature cannot pass.
func (c *Creature) Move(d physics.Direction, a Arena) bool {
	if !c.CanMove(d, a.Collidables()) {
		return false
	}
	w, h := a.Size()
	next, ok := c.body.StepWithin(d, c.Speed, w, h)
	if !ok {
		return false
	}
	c.body = next
	return true
}

// CanMove reports whether a step towards d is clear of every collidable.
func (c *Creature) CanMove(d physics.Direction, collidables []physics.Collidable) bool {
	physics.MustBeValid(d)
	proxy := physics.NewProxy(c.body.Step(d, c.Speed), c.self)
	for _, other := range collidables {
		if !c.canMovePast(proxy, other) {
			return false
		}
	}
	return true
}

func (c *Creature) canMovePast(proxy *physics.Proxy, other physics.Collidable) bool {
	mover, target := c.self.Kind(), other.Kind()
	switch {
	case mover == physics.KindPlayer && target == physics.KindEnemy:
		return true
	case mover == physics.KindEnemy && target == physics.KindPlayer:
		return true
	case mover == physics.KindEnemy && target == physics.KindProjectile:
		return true
	case !c.self.IsObstacle() && !other.IsObstacle():
		return true
	}
	return !physics.Collides(proxy, other)
}

// AddItem equips an item: passive items apply their stat change, active items bind
// to this creature. Any other item kind is a programming error.
func (c *Creature) AddItem(item *Item) {
	switch {
	case item.Kind.IsPassive():
		item.Activate(c)
	case item.Kind.IsActive():
		item.AssignOwner(c)
	default:
		panic("entities: item " + item.Kind.String() + " is not covered by the equip dispatch")
	}
	c.items.Put(item)
}

// RemoveItem unequips an item and reverts its effect.
func (c *Creature) RemoveItem(item *Item) {
	if !c.items.Has(item) {
		return
	}
	c.items.Remove(item)
	if item.Kind.IsPassive() {
		item.Deactivate(c)
	} else {
		item.AssignOwner(nil)
	}
}

// HasItem reports whether an item of the given kind is equipped.
func (c *Creature) HasItem(kind ItemKind) bool {
	found := false
	c.items.Each(func(item *Item) {
		if item.Kind == kind {
			found = true
		}
	})
	return found
}

// Items returns the equipped items ordered by kind.
func (c *Creature) Items() []*Item {
	items := make([]*Item, 0, c.items.Size())
	c.items.Each(func(item *Item) {
		items = append(items, item)
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Kind < items[j].Kind
	})
	return items
}
