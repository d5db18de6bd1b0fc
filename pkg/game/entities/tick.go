// Package entities contains the actors of Stones n Spells: the player and the pickaxe,
// enemies, projectiles, items and the static room furniture (obstacles, chests, stairs).
// Every entity is advanced by an Update call that receives an explicit Tick context.
package entities

import (
	"math/rand"

	"stonesnspells/pkg/engine/physics"
)

// Arena is the room an entity is being simulated in.
type Arena interface {
	// Size returns the playable area in pixels.
	Size() (width, height int)
	// Collidables returns the room's registry, the player included.
	Collidables() []physics.Collidable
	// AddProjectile hands a newly spawned projectile to the room.
	AddProjectile(p *Projectile)
}

// HUD is the inventory panel that is told about picked-up items.
type HUD interface {
	AddItem(item *Item)
	RequestRepaint()
}

// Tick carries everything an update needs for one simulation step.
type Tick struct {
	Arena  Arena
	Player *Player
	HUD    HUD
	Rand   *rand.Rand
}
