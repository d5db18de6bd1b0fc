// Package physics provides the pixel-space geometry shared by every entity in a room:
// directions, headings, bodies and the collision predicates built on top of them.
package physics

// PixelConstant is the edge length of one layout cell and of most sprites.
const PixelConstant = 50

// Body is the geometry of a collidable. X and Y are the top-left corner, W and H the
// hitbox used for collision half-extents, and ImageW/ImageH the full sprite box whose
// centre is the collision origin.
type Body struct {
	X, Y   int
	W, H   int
	ImageW int
	ImageH int
}

// NewBody creates a body whose sprite box equals its hitbox.
func NewBody(x, y, w, h int) Body {
	return Body{X: x, Y: y, W: w, H: h, ImageW: w, ImageH: h}
}

// Center returns the image centre of the body.
func (b Body) Center() (cx, cy int) {
	return b.X + b.ImageW/2, b.Y + b.ImageH/2
}

// HitboxCenter returns the centre of the hitbox, ignoring sprite padding.
func (b Body) HitboxCenter() (cx, cy int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Radii returns the collision half-extents.
func (b Body) Radii() (rx, ry int) {
	return b.W / 2, b.H / 2
}

// Translate returns a copy of the body moved by (dx, dy).
func (b Body) Translate(dx, dy int) Body {
	b.X += dx
	b.Y += dy
	return b
}

// Step returns a copy of the body moved distance pixels towards d.
func (b Body) Step(d Direction, distance int) Body {
	dx, dy := d.Delta()
	return b.Translate(dx*distance, dy*distance)
}

// StepWithin is Step limited to a width x height area. ok is false, and the body is
// returned unchanged, when the step would leave the area.
func (b Body) StepWithin(d Direction, distance, width, height int) (next Body, ok bool) {
	switch d {
	case North:
		ok = b.Y-distance >= 0
	case East:
		ok = b.X+distance+b.W <= width
	case South:
		ok = b.Y+distance+b.H <= height
	case West:
		ok = b.X-distance >= 0
	default:
		MustBeValid(d)
	}
	if !ok {
		return b, false
	}
	return b.Step(d, distance), true
}

// Kind tags what a collidable is, so movement and damage rules can dispatch on it
// without knowing the concrete type.
type Kind int

const (
	KindObstacle Kind = iota
	KindChest
	KindStairs
	KindPlayer
	KindEnemy
	KindProjectile
	KindProxy
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindChest:
		return "Chest"
	case KindStairs:
		return "Stairs"
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		return "Projectile"
	case KindProxy:
		return "Proxy"
	default:
		return "Unknown"
	}
}

// IsCreature reports whether the kind carries combat stats.
func (k Kind) IsCreature() bool {
	return k == KindPlayer || k == KindEnemy
}

// Collidable is implemented by everything that occupies space in a room.
// Implementations must be pointer types so identity comparison is meaningful.
type Collidable interface {
	Body() Body
	Kind() Kind
	// IsObstacle reports whether the collidable blocks other obstacle-flagged movers.
	IsObstacle() bool
}

// Owned is implemented by collidables that stand in for another one (proxies, weapon
// hitboxes). Collision treats them as the same identity as their owner.
type Owned interface {
	Owner() Collidable
}

// Proxy is a synthetic collidable used to test a prospective position or an attack area.
type Proxy struct {
	body  Body
	owner Collidable
}

// NewProxy creates a proxy with the given geometry that counts as owner for identity.
func NewProxy(body Body, owner Collidable) *Proxy {
	return &Proxy{body: body, owner: owner}
}

func (p *Proxy) Body() Body            { return p.body }
func (p *Proxy) Kind() Kind            { return KindProxy }
func (p *Proxy) IsObstacle() bool      { return false }
func (p *Proxy) Owner() Collidable     { return p.owner }
func (p *Proxy) SetBody(body Body)     { p.body = body }
func (p *Proxy) SetOwner(o Collidable) { p.owner = o }
