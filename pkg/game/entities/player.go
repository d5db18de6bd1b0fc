package entities

import (
	"strings"
	"time"

	"stonesnspells/pkg/engine/physics"
)

// Player defaults
const (
	PlayerSpawnX    = 200
	PlayerSpawnY    = 300
	PlayerWidth     = 24
	PlayerHeight    = 45
	PlayerImageSize = physics.PixelConstant

	// PlayerInvulnerability is the real-time window after a hit in which further hits are dropped.
	PlayerInvulnerability = 2 * time.Second
)

// PlayerStats are the player's starting stats.
var PlayerStats = Stats{HP: 7, Attack: 1, Speed: 3}

// Player is the creature driven by input.
type Player struct {
	Creature
	Facing  physics.Direction
	Pickaxe *Pickaxe

	lock *ClockLock
}

// NewPlayer creates a player at the spawn point facing south. invulnerability is the
// window after a hit (PlayerInvulnerability when zero); now is the clock it is measured
// with (time.Now when nil).
func NewPlayer(invulnerability time.Duration, now func() time.Time) *Player {
	if invulnerability <= 0 {
		invulnerability = PlayerInvulnerability
	}
	p := &Player{
		Facing: physics.South,
		lock:   NewClockLock(invulnerability, now),
	}
	body := physics.Body{
		X: PlayerSpawnX, Y: PlayerSpawnY,
		W: PlayerWidth, H: PlayerHeight,
		ImageW: PlayerImageSize, ImageH: PlayerImageSize,
	}
	p.Creature = newCreature(p, body, PlayerStats)
	p.Pickaxe = newPickaxe(p)
	return p
}

func (p *Player) Kind() physics.Kind { return physics.KindPlayer }
func (p *Player) IsObstacle() bool   { return true }

// Walk turns the player towards d and tries to step that way. The player turns even
// when the step is blocked.
func (p *Player) Walk(d physics.Direction, a Arena) bool {
	p.Facing = d
	return p.Move(d, a)
}

// Damage takes amount HP off the player unless a previous hit is still inside its
// invulnerability window, in which case the hit is dropped.
func (p *Player) Damage(amount int) bool {
	if !p.lock.TryAcquire() {
		return false
	}
	p.HP -= amount
	return true
}

// AimPoint is where enemies chase and aim: the centre of the player's hitbox.
func (p *Player) AimPoint() (x, y int) {
	return p.body.HitboxCenter()
}

// Invulnerable reports whether hits are currently dropped.
func (p *Player) Invulnerable() bool {
	return p.lock.Held()
}

// StartAttack starts a pickaxe swing unless one is already running.
func (p *Player) StartAttack() bool {
	return p.Pickaxe.Start()
}

// Cast fires every owned active item and returns how many fired.
func (p *Player) Cast(t Tick) int {
	fired := 0
	for _, item := range p.Items() {
		if item.Kind != ItemFireballScroll || item.Owner() != &p.Creature {
			continue
		}
		t.Arena.AddProjectile(NewFireball(p, p.Facing))
		fired++
	}
	return fired
}

// Sprite returns the sprite id for the player's facing.
func (p *Player) Sprite() string {
	return "player_" + strings.ToLower(p.Facing.Token())
}
