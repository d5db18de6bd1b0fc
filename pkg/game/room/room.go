// Package room holds the Room container: the entities, obstacles and stairs of one
// room, the collidables registry they share with the player, and the per-tick update
// that advances them.
package room

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
)

// StairsWaitTime is how many ticks stairs stay inert after they become usable.
const StairsWaitTime = 10

// arrivalInset is how far from the edge a player lands after taking stairs.
const arrivalInset = 2*physics.PixelConstant + 5

// Room is one screen of the level.
type Room struct {
	ID int

	width, height int
	player        *entities.Player

	collidables *registry[physics.Collidable]
	enemies     *registry[*entities.Enemy]
	projectiles *registry[*entities.Projectile]
	obstacles   *registry[physics.Collidable]

	deadEnemies *stack.Stack[*entities.Enemy]
	spent       *stack.Stack[*entities.Projectile]

	stairs        map[physics.Direction]*entities.Stairs
	active        bool
	stairsActive  bool
	stairsCounter int
	boss          bool
	combat        bool
}

// New creates an empty, inactive room. The player is registered straight away.
func New(id, width, height int, player *entities.Player) *Room {
	r := &Room{
		ID:          id,
		width:       width,
		height:      height,
		player:      player,
		collidables: newRegistry[physics.Collidable](),
		enemies:     newRegistry[*entities.Enemy](),
		projectiles: newRegistry[*entities.Projectile](),
		obstacles:   newRegistry[physics.Collidable](),
		deadEnemies: stack.New[*entities.Enemy](),
		spent:       stack.New[*entities.Projectile](),
		stairs:      make(map[physics.Direction]*entities.Stairs),
	}
	r.collidables.Put(player)
	return r
}

// Size returns the room's playable area.
func (r *Room) Size() (width, height int) {
	return r.width, r.height
}

// Collidables returns every collidable in the room, the player included.
func (r *Room) Collidables() []physics.Collidable {
	return r.collidables.Items()
}

// Player returns the player registered in the room.
func (r *Room) Player() *entities.Player {
	return r.player
}

// AddEnemy places an enemy in the room.
func (r *Room) AddEnemy(e *entities.Enemy) {
	r.enemies.Put(e)
	r.collidables.Put(e)
}

// AddProjectile registers a projectile; it is purged at the end of the tick it
// terminates in.
func (r *Room) AddProjectile(p *entities.Projectile) {
	p.OnTerminate(func(p *entities.Projectile) {
		r.spent.Push(p)
	})
	r.projectiles.Put(p)
	r.collidables.Put(p)
}

// AddObstacle places an obstacle or chest.
func (r *Room) AddObstacle(o physics.Collidable) {
	r.obstacles.Put(o)
	r.collidables.Put(o)
}

// AddSimpleObstacle places a wall on the layout cell (gridX, gridY).
func (r *Room) AddSimpleObstacle(gridX, gridY int) {
	x, y := level.Cell{X: gridX, Y: gridY}.Pixels(r.width, r.height)
	r.AddObstacle(entities.NewObstacle(x, y, entities.SpriteWall))
}

// SetStairs installs stairs on the d edge of the room leading to next.
func (r *Room) SetStairs(d physics.Direction, next int) {
	x, y := StairsPosition(d, r.width, r.height)
	r.stairs[d] = entities.NewStairs(x, y, d, next)
}

// StairsPosition returns the top-left corner of the stairs on the d edge.
func StairsPosition(d physics.Direction, width, height int) (x, y int) {
	switch d {
	case physics.North:
		return 7 * width / 16, 0
	case physics.South:
		return 7 * width / 16, 11 * height / 12
	case physics.West:
		return 0, 5 * height / 12
	case physics.East:
		return 15 * width / 16, 5 * height / 12
	}
	physics.MustBeValid(d)
	return 0, 0
}

// Arrival returns where a player at (x, y) lands in this room after leaving the
// previous one through stairs facing d: the opposite edge, keeping the other axis.
func (r *Room) Arrival(d physics.Direction, x, y int) (int, int) {
	switch d {
	case physics.North:
		return x, r.height - arrivalInset
	case physics.South:
		return x, arrivalInset - physics.PixelConstant
	case physics.West:
		return r.width - arrivalInset, y
	case physics.East:
		return arrivalInset - physics.PixelConstant, y
	}
	physics.MustBeValid(d)
	return x, y
}

// Stairs returns the room's stairs in North, East, South, West order.
func (r *Room) Stairs() []*entities.Stairs {
	var out []*entities.Stairs
	for _, d := range physics.AllDirections() {
		if s, ok := r.stairs[d]; ok {
			out = append(out, s)
		}
	}
	return out
}

// StairsTo returns the stairs on the d edge, or nil.
func (r *Room) StairsTo(d physics.Direction) *entities.Stairs {
	return r.stairs[d]
}

// Enemies returns the living enemies, plus a dead boss.
func (r *Room) Enemies() []*entities.Enemy {
	return r.enemies.Items()
}

// Obstacles returns the walls, minecarts and chests.
func (r *Room) Obstacles() []physics.Collidable {
	return r.obstacles.Items()
}

// Projectiles returns every live projectile in the room, including ones a boss tracks
// itself.
func (r *Room) Projectiles() []*entities.Projectile {
	out := append([]*entities.Projectile(nil), r.projectiles.Items()...)
	for _, e := range r.enemies.Items() {
		out = append(out, e.Projectiles()...)
	}
	return out
}

// Activate starts simulating the room. Stairs that are already usable wait
// StairsWaitTime ticks again.
func (r *Room) Activate() {
	r.active = true
	if r.stairsActive {
		r.stairsCounter = StairsWaitTime
	}
}

// Deactivate stops simulating the room.
func (r *Room) Deactivate() {
	r.active = false
}

// IsActive reports whether the room is being simulated.
func (r *Room) IsActive() bool {
	return r.active
}

// ActivateStairs makes the stairs visible and usable after StairsWaitTime ticks.
func (r *Room) ActivateStairs() {
	r.stairsActive = true
	r.stairsCounter = StairsWaitTime
}

// StairsActive reports whether the stairs are shown.
func (r *Room) StairsActive() bool {
	return r.stairsActive
}

// StairsCounter returns the ticks left before the stairs react to the player.
func (r *Room) StairsCounter() int {
	return r.stairsCounter
}

// IsBoss reports whether this is the boss room.
func (r *Room) IsBoss() bool {
	return r.boss
}

// Boss returns the boss of a boss room, or nil.
func (r *Room) Boss() *entities.Enemy {
	for _, e := range r.enemies.Items() {
		if e.IsBoss() {
			return e
		}
	}
	return nil
}

// BossDefeated reports whether the room's boss has died.
func (r *Room) BossDefeated() bool {
	b := r.Boss()
	return b != nil && b.IsDead()
}

// Tick builds the update context for this room.
func (r *Room) Tick(hud entities.HUD, rng *rand.Rand) entities.Tick {
	return entities.Tick{Arena: r, Player: r.player, HUD: hud, Rand: rng}
}

// Update advances the room by one tick and returns the stairs the player is standing
// on once they are usable, or nil. Enemies move before projectiles; dead enemies and
// spent projectiles are purged after both passes.
func (r *Room) Update(t entities.Tick) *entities.Stairs {
	if r.stairsActive && r.active {
		if r.stairsCounter > 0 {
			r.stairsCounter--
		} else if s := r.touchedStairs(); s != nil {
			return s
		}
	}

	if r.active {
		for _, e := range r.enemies.Items() {
			e.Update(t)
			if e.IsDead() && !e.IsBoss() {
				r.deadEnemies.Push(e)
			}
		}
		for _, p := range r.projectiles.Items() {
			p.Update(t)
		}
	}
	r.purge()

	if r.combat && !r.stairsActive && r.enemies.Size() == 0 {
		r.ActivateStairs()
	}
	return nil
}

func (r *Room) touchedStairs() *entities.Stairs {
	for _, s := range r.Stairs() {
		if physics.Collides(r.player, s) {
			return s
		}
	}
	return nil
}

func (r *Room) purge() {
	for r.deadEnemies.Size() > 0 {
		e := r.deadEnemies.Pop()
		r.enemies.Remove(e)
		r.collidables.Remove(e)
	}
	for r.spent.Size() > 0 {
		p := r.spent.Pop()
		r.projectiles.Remove(p)
		r.collidables.Remove(p)
	}
}
