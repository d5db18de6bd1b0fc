package entities

import "stonesnspells/pkg/engine/physics"

// Sprite ids of the room furniture.
const (
	SpriteWall        = "wall"
	SpriteMinecart    = "minecart"
	SpriteChestClosed = "chest_closed"
	SpriteChestOpen   = "chest_open"
	SpriteStairs      = "stairs"
)

// Obstacle is a static block that stops obstacle-flagged movers.
type Obstacle struct {
	body   physics.Body
	Sprite string
}

// NewObstacle creates a one-cell obstacle at (x, y).
func NewObstacle(x, y int, sprite string) *Obstacle {
	return &Obstacle{
		body:   physics.NewBody(x, y, physics.PixelConstant, physics.PixelConstant),
		Sprite: sprite,
	}
}

func (o *Obstacle) Body() physics.Body { return o.body }
func (o *Obstacle) Kind() physics.Kind { return physics.KindObstacle }
func (o *Obstacle) IsObstacle() bool   { return true }

// Chest is an obstacle that may hold one item. A chest without an item is open.
type Chest struct {
	body physics.Body
	item *Item
}

// NewChest creates a one-cell chest at (x, y) holding item (nil for an empty chest).
func NewChest(x, y int, item *Item) *Chest {
	return &Chest{
		body: physics.NewBody(x, y, physics.PixelConstant, physics.PixelConstant),
		item: item,
	}
}

func (c *Chest) Body() physics.Body { return c.body }
func (c *Chest) Kind() physics.Kind { return physics.KindChest }
func (c *Chest) IsObstacle() bool   { return true }

// Peek returns the contained item without taking it.
func (c *Chest) Peek() *Item {
	return c.item
}

// Open returns the contained item and empties the chest.
// Only the first call returns an item.
func (c *Chest) Open() *Item {
	item := c.item
	c.item = nil
	return item
}

// IsOpen reports whether the chest is empty.
func (c *Chest) IsOpen() bool {
	return c.item == nil
}

// Sprite returns the sprite id for the chest's state.
func (c *Chest) Sprite() string {
	if c.IsOpen() {
		return SpriteChestOpen
	}
	return SpriteChestClosed
}

// Stairs link a room to its neighbour in one direction. They never block movement.
type Stairs struct {
	body      physics.Body
	Direction physics.Direction
	NextRoom  int
}

// NewStairs creates stairs at (x, y) leading to nextRoom.
func NewStairs(x, y int, d physics.Direction, nextRoom int) *Stairs {
	return &Stairs{
		body:      physics.NewBody(x, y, physics.PixelConstant, physics.PixelConstant),
		Direction: d,
		NextRoom:  nextRoom,
	}
}

func (s *Stairs) Body() physics.Body { return s.body }
func (s *Stairs) Kind() physics.Kind { return physics.KindStairs }
func (s *Stairs) IsObstacle() bool   { return false }
