package state

import (
	"math/rand"

	"github.com/zyedidia/generic/queue"

	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/hud"
	"stonesnspells/pkg/game/room"
)

// Game area in pixels. The HUD strip is drawn below it.
const (
	Width  = 800
	Height = 600
)

const maxMessages = 5

// Game represents one play session of Stones n Spells
type Game struct {
	Rooms   map[int]*room.Room
	Current *room.Room
	Player  *entities.Player
	HUD     *hud.Inventory

	// ChestItems holds the items still waiting for a chest while rooms are built.
	ChestItems *queue.Queue[*entities.Item]
	ChestRooms []int

	Paused bool
	Ticks  int
	Seed   int64
	Rand   *rand.Rand

	Messages []string
}

// NewGame creates an empty session whose randomness is derived from seed
func NewGame(seed int64) *Game {
	return &Game{
		Rooms:      make(map[int]*room.Room),
		HUD:        hud.NewInventory(),
		ChestItems: queue.New[*entities.Item](),
		Seed:       seed,
		Rand:       rand.New(rand.NewSource(seed)),
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// AddRoom registers a built room
func (g *Game) AddRoom(r *room.Room) {
	g.Rooms[r.ID] = r
}

// EnterRoom makes id the current room: the old room stops and the new one starts
func (g *Game) EnterRoom(id int) *room.Room {
	next, ok := g.Rooms[id]
	if !ok {
		return nil
	}
	if g.Current != nil {
		g.Current.Deactivate()
	}
	g.Current = next
	next.Activate()
	return next
}

// Tick returns the update context for the current room
func (g *Game) Tick() entities.Tick {
	return g.Current.Tick(g.HUD, g.Rand)
}

// IsOver reports whether the player has died
func (g *Game) IsOver() bool {
	return g.Player != nil && g.Player.IsDead()
}

// Won reports whether the boss has been defeated
func (g *Game) Won() bool {
	for _, r := range g.Rooms {
		if r.IsBoss() && r.BossDefeated() {
			return true
		}
	}
	return false
}
