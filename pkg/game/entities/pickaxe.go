package entities

import (
	"fmt"
	"strings"

	"stonesnspells/pkg/engine/physics"
)

// Pickaxe timings and geometry
const (
	PickaxeAnimationDelay = 15
	PickaxeDuration       = PickaxeAnimationDelay * 3
	PickaxeKnockback      = 50

	pickaxeReach   = 37 // handle to head
	pickaxeSpacing = -2
	pickaxeWestGap = 10
)

// Pickaxe is the player's melee weapon. While a swing is running its hitbox sits next
// to the player on the facing side and is tested against the room every tick.
type Pickaxe struct {
	owner *Player
	count int
	body  physics.Body
}

func newPickaxe(owner *Player) *Pickaxe {
	return &Pickaxe{owner: owner}
}

func (k *Pickaxe) Body() physics.Body        { return k.body }
func (k *Pickaxe) Kind() physics.Kind        { return physics.KindProxy }
func (k *Pickaxe) IsObstacle() bool          { return false }
func (k *Pickaxe) Owner() physics.Collidable { return k.owner }

// Start begins a swing. It fails while the previous swing is still running.
func (k *Pickaxe) Start() bool {
	if k.count > 0 {
		return false
	}
	k.count = PickaxeDuration
	k.body = k.attackBody()
	return true
}

// Count returns the ticks left in the current swing.
func (k *Pickaxe) Count() int {
	return k.count
}

// Attacking reports whether a swing is running.
func (k *Pickaxe) Attacking() bool {
	return k.count > 0
}

// Phase returns the swing animation phase 1..3, or 0 when idle.
func (k *Pickaxe) Phase() int {
	switch {
	case k.count <= 0:
		return 0
	case k.count >= PickaxeDuration*2/3:
		return 1
	case k.count >= PickaxeDuration/3:
		return 2
	default:
		return 3
	}
}

func (k *Pickaxe) attackBody() physics.Body {
	ob := k.owner.Body()
	switch k.owner.Facing {
	case physics.North:
		return physics.NewBody(ob.X, ob.Y-pickaxeSpacing-pickaxeReach, physics.PixelConstant, pickaxeReach)
	case physics.East:
		return physics.NewBody(ob.X+physics.PixelConstant, ob.Y, pickaxeReach, physics.PixelConstant)
	case physics.South:
		return physics.NewBody(ob.X, ob.Y+pickaxeSpacing+pickaxeReach, physics.PixelConstant, pickaxeReach)
	case physics.West:
		return physics.NewBody(ob.X-pickaxeReach-pickaxeWestGap, ob.Y, pickaxeReach, physics.PixelConstant)
	}
	physics.MustBeValid(k.owner.Facing)
	return ob
}

// Update advances a running swing: the hitbox follows the player and everything it
// touches this tick is hit.
func (k *Pickaxe) Update(t Tick) {
	if k.count <= 0 {
		return
	}
	k.body = k.attackBody()
	for _, c := range t.Arena.Collidables() {
		if physics.Collides(k, c) {
			k.hit(c, t)
		}
	}
	k.count--
}

func (k *Pickaxe) hit(c physics.Collidable, t Tick) {
	switch target := c.(type) {
	case *Enemy:
		knockback := PickaxeKnockback
		if target.Variant == EnemyGolemBoss {
			knockback = 0
		}
		target.TakeHit(t, k.owner.Attack, knockback)
	case *Chest:
		item := target.Open()
		if item == nil {
			return
		}
		k.owner.AddItem(item)
		if t.HUD != nil {
			t.HUD.AddItem(item)
			t.HUD.RequestRepaint()
		}
	}
}

// Sprite returns the sprite id and draw position: the idle pickaxe beside the player,
// or the slash frame for the current phase.
func (k *Pickaxe) Sprite() (id string, x, y int) {
	ob := k.owner.Body()
	dir := strings.ToLower(k.owner.Facing.Token())
	if k.count > 0 {
		return fmt.Sprintf("slash_%s_%d", dir, k.Phase()), k.body.X, k.body.Y
	}
	switch k.owner.Facing {
	case physics.North:
		x, y = ob.X+ob.W+pickaxeSpacing, ob.Y-ob.H/24
	case physics.East:
		x, y = ob.X+ob.W/6, ob.Y+ob.H/3+pickaxeSpacing
	case physics.West:
		x, y = ob.X-ob.W/6, ob.Y+ob.H/3+pickaxeSpacing
	default:
		x, y = ob.X+ob.W+pickaxeSpacing, ob.Y+ob.H/3
	}
	return "pickaxe_" + dir, x, y
}
