package entities

import (
	"fmt"
	"strings"

	"stonesnspells/pkg/engine/physics"
)

// ProjectileKind selects a projectile's stats and behaviour.
type ProjectileKind int

const (
	ProjectileBatWave ProjectileKind = iota
	ProjectileGolemBlast
	ProjectileFireball
)

// Projectile constants
const (
	BatWaveSize = 15

	GolemBlastSize       = 50
	GolemBlastSpeed      = 3
	GolemBlastFrameDelay = 10

	FireballSize            = 50
	FireballSpeed           = 2
	FireballDamage          = 3
	FireballExplosionRadius = 150
	FireballKnockback       = 100
	FireballFramePeriod     = 10
)

// ProjectileInfo holds the per-kind hooks. Animate runs before movement each tick;
// Hit runs for every creature the projectile overlaps after moving.
type ProjectileInfo struct {
	Name    string
	Animate func(p *Projectile, t Tick)
	Hit     func(p *Projectile, target physics.Collidable, t Tick)
	Sprite  func(p *Projectile) string
}

// ProjectileTypes maps projectile kinds to their behaviour
var ProjectileTypes map[ProjectileKind]ProjectileInfo

func init() {
	ProjectileTypes = map[ProjectileKind]ProjectileInfo{
		ProjectileBatWave: {
			Name:   "Bat Wave",
			Hit:    hitPlayerOnce,
			Sprite: func(p *Projectile) string { return p.sprite },
		},
		ProjectileGolemBlast: {
			Name:    "Golem Blast",
			Animate: animateGolemBlast,
			Hit:     hitPlayerOnce,
			Sprite:  golemBlastSprite,
		},
		ProjectileFireball: {
			Name:    "Fireball",
			Animate: animateFireball,
			Hit:     explodeFireball,
			Sprite:  fireballSprite,
		},
	}
}

// Projectile is a moving hazard travelling along a fixed heading. It leaves play
// through Terminate, either at the room edge or from its own hit behaviour.
type Projectile struct {
	Variant ProjectileKind
	Speed   int
	Damage  int

	body       physics.Body
	heading    physics.Heading
	owner      physics.Collidable
	terminated bool
	// onTerminate is set by whoever keeps the projectile (room or boss) so it can be
	// purged after the current pass.
	onTerminate func(*Projectile)

	sprite   string
	frame    int
	frameCD  int
	exploded bool
}

func newProjectile(kind ProjectileKind, body physics.Body, speed, damage int, heading physics.Heading, owner physics.Collidable) *Projectile {
	return &Projectile{
		Variant: kind,
		Speed:   speed,
		Damage:  damage,
		body:    body,
		heading: heading,
		owner:   owner,
		frame:   1,
	}
}

// NewBatWave spawns a wave at the bat's corner aimed at the player's hitbox centre.
func NewBatWave(bat *Enemy, target *Player) *Projectile {
	bb := bat.Body()
	body := physics.NewBody(bb.X, bb.Y, BatWaveSize, BatWaveSize)
	tx, ty := target.AimPoint()
	cx, cy := body.Center()
	p := newProjectile(ProjectileBatWave, body, bat.Speed, bat.Attack, physics.ResolveHeading(cx, cy, tx, ty), bat)
	// The sprite is picked from the bat's mouth, which can differ from the travel heading.
	aim := physics.ResolveHeading(bb.X+bb.W/2, bb.Y+bb.H/3, tx, ty)
	p.sprite = "bat_wave_" + strings.ToLower(aim.String())
	return p
}

// NewGolemBlast spawns a blast at the golem's corner aimed at the player's hitbox centre.
func NewGolemBlast(golem *Enemy, target *Player) *Projectile {
	gb := golem.Body()
	body := physics.NewBody(gb.X, gb.Y, GolemBlastSize, GolemBlastSize)
	tx, ty := target.AimPoint()
	cx, cy := body.Center()
	p := newProjectile(ProjectileGolemBlast, body, GolemBlastSpeed, golem.Attack, physics.ResolveHeading(cx, cy, tx, ty), golem)
	p.frameCD = GolemBlastFrameDelay
	return p
}

// NewFireball spawns a fireball centred on the caster, travelling towards facing.
func NewFireball(caster *Player, facing physics.Direction) *Projectile {
	cx, cy := caster.Body().Center()
	body := physics.NewBody(cx-FireballSize/2, cy-FireballSize/2, FireballSize, FireballSize)
	p := newProjectile(ProjectileFireball, body, FireballSpeed, FireballDamage, physics.NewHeading(facing), caster)
	p.frameCD = FireballFramePeriod
	return p
}

func (p *Projectile) Body() physics.Body { return p.body }
func (p *Projectile) Kind() physics.Kind { return physics.KindProjectile }
func (p *Projectile) IsObstacle() bool   { return false }

// Heading returns the directions the projectile travels in.
func (p *Projectile) Heading() physics.Heading {
	return p.heading
}

// Owner returns the creature that spawned the projectile.
func (p *Projectile) Owner() physics.Collidable {
	return p.owner
}

// OnTerminate registers the callback run once when the projectile leaves play.
func (p *Projectile) OnTerminate(fn func(*Projectile)) {
	p.onTerminate = fn
}

// Terminated reports whether the projectile has left play.
func (p *Projectile) Terminated() bool {
	return p.terminated
}

// Exploded reports whether a fireball has gone off.
func (p *Projectile) Exploded() bool {
	return p.exploded
}

// Terminate removes the projectile from play. Only the first call has any effect.
func (p *Projectile) Terminate() {
	if p.terminated {
		return
	}
	p.terminated = true
	if p.onTerminate != nil {
		p.onTerminate(p)
	}
}

// Sprite returns the sprite id for the current frame.
func (p *Projectile) Sprite() string {
	return ProjectileTypes[p.Variant].Sprite(p)
}

// Update advances the projectile one tick: animate, move along every heading direction,
// then run the hit behaviour against each overlapping creature. A step that would leave
// the room terminates the projectile instead, and nothing else happens that tick.
func (p *Projectile) Update(t Tick) {
	if p.terminated {
		return
	}
	info := ProjectileTypes[p.Variant]
	if info.Animate != nil {
		info.Animate(p, t)
		if p.terminated {
			return
		}
	}
	if p.exploded {
		return
	}

	w, h := t.Arena.Size()
	next := p.body
	for _, d := range p.heading.Directions() {
		var ok bool
		if next, ok = next.StepWithin(d, p.Speed, w, h); !ok {
			p.Terminate()
			return
		}
	}
	p.body = next

	for _, c := range t.Arena.Collidables() {
		if p.terminated || p.exploded {
			return
		}
		if !c.Kind().IsCreature() {
			continue
		}
		if physics.CollidesSized(p, c, p.body.W, c.Body().ImageW) {
			info.Hit(p, c, t)
		}
	}
}

func hitPlayerOnce(p *Projectile, target physics.Collidable, t Tick) {
	player, ok := target.(*Player)
	if !ok {
		return
	}
	player.Damage(p.Damage)
	p.Terminate()
}

func animateGolemBlast(p *Projectile, _ Tick) {
	p.frameCD--
	if p.frameCD <= 0 {
		p.frameCD = GolemBlastFrameDelay
		p.frame = 3 - p.frame
	}
}

func golemBlastSprite(p *Projectile) string {
	return fmt.Sprintf("golem_blast_%d", p.frame)
}

func animateFireball(p *Projectile, _ Tick) {
	p.frameCD--
	if p.frameCD > 0 {
		return
	}
	if p.exploded {
		p.Terminate()
		return
	}
	p.frameCD = FireballFramePeriod
	p.frame = p.frame%3 + 1
}

func fireballSprite(p *Projectile) string {
	if p.exploded {
		return "fireball_explosion"
	}
	return fmt.Sprintf("fireball_%d", p.frame)
}

// explodeFireball turns the fireball into an area hit on every enemy inside the
// explosion circle.
func explodeFireball(p *Projectile, target physics.Collidable, t Tick) {
	if p.exploded || physics.SameIdentity(target, p.owner) {
		return
	}
	p.exploded = true
	p.frameCD = FireballFramePeriod

	cx, cy := p.body.Center()
	blast := physics.NewProxy(physics.NewBody(cx-FireballExplosionRadius, cy-FireballExplosionRadius,
		FireballExplosionRadius*2, FireballExplosionRadius*2), p)
	for _, c := range t.Arena.Collidables() {
		enemy, ok := c.(*Enemy)
		if !ok || !physics.CircleSquareCollides(blast, c) {
			continue
		}
		enemy.TakeHit(t, p.Damage, FireballKnockback)
	}
}
