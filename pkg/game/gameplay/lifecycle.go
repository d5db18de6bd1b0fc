// Package gameplay drives a Stones n Spells session: it builds the rooms, steps the
// simulation once per tick and moves the player between rooms.
package gameplay

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
	"stonesnspells/pkg/game/room"
	"stonesnspells/pkg/game/state"
)

// Options configure a session.
type Options struct {
	// Seed drives every random choice. Zero picks a time based seed.
	Seed int64
	// Chests is how many rooms get a chest.
	Chests int
	// PlayerIFrames is the real-time window after the player is hit.
	PlayerIFrames time.Duration
	// Now is the clock used for the player's invulnerability; nil means time.Now.
	Now func() time.Time
	// DumpDir is where state dumps are written.
	DumpDir string
}

// World owns the current session and rebuilds it on reset.
type World struct {
	Game *state.Game
	Log  logrus.FieldLogger

	level *level.Level
	opts  Options
}

// New loads the level data and builds the first session.
func New(opts Options, log logrus.FieldLogger) (*World, error) {
	lvl, err := level.Load()
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	w := &World{Log: log, level: lvl, opts: opts}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w.Game = BuildGame(lvl, opts, seed)
	w.Log.WithFields(logrus.Fields{"seed": seed, "chests": w.Game.ChestRooms}).Info("session built")
	return w, nil
}

// State returns the current session.
func (w *World) State() *state.Game {
	return w.Game
}

// Reset throws the session away and builds a fresh one from a seed drawn from the
// old session.
func (w *World) Reset() {
	seed := w.Game.Rand.Int63()
	w.Game = BuildGame(w.level, w.opts, seed)
	w.Log.WithFields(logrus.Fields{"seed": seed, "chests": w.Game.ChestRooms}).Info("session reset")
}

// BuildGame creates the player and every room of the level, then enters the start room.
func BuildGame(lvl *level.Level, opts Options, seed int64) *state.Game {
	g := state.NewGame(seed)
	g.Player = entities.NewPlayer(opts.PlayerIFrames, opts.Now)

	for i := 0; i < opts.Chests; i++ {
		kind := entities.ItemPool[g.Rand.Intn(len(entities.ItemPool))]
		g.ChestItems.Enqueue(entities.NewItem(kind))
	}
	g.ChestRooms = drawChestRooms(g, lvl, opts.Chests)
	chestRooms := make(map[int]bool, len(g.ChestRooms))
	for _, id := range g.ChestRooms {
		chestRooms[id] = true
	}

	for _, id := range lvl.Graph.RoomIDs() {
		plan := room.Plan{
			ID:     id,
			Stairs: lvl.Graph.Stairs(id),
			Width:  state.Width,
			Height: state.Height,
		}
		switch id {
		case lvl.Graph.Start:
			plan.Template = lvl.Start
		case lvl.Graph.Boss:
			plan.Template = lvl.Boss
		default:
			plan.Template = lvl.CombatTemplate(g.Rand.Intn(len(lvl.Combat)))
			if chestRooms[id] && !g.ChestItems.Empty() {
				plan.Item = g.ChestItems.Dequeue()
			}
		}
		g.AddRoom(room.Build(plan, g.Player, g.Rand))
	}

	g.EnterRoom(lvl.Graph.Start)
	logMessage(g, "Find the golem and defeat it.")
	return g
}

// drawChestRooms picks n distinct room ids in [start, boss-1). A draw of the start room
// still counts, so fewer than n rooms may end up with a chest.
func drawChestRooms(g *state.Game, lvl *level.Level, n int) []int {
	lo, hi := lvl.Graph.Start, lvl.Graph.Boss-1
	if span := hi - lo; n > span {
		n = span
	}
	picked := make(map[int]bool, n)
	for len(picked) < n {
		picked[lo+g.Rand.Intn(hi-lo)] = true
	}
	rooms := make([]int, 0, n)
	for id := range picked {
		rooms = append(rooms, id)
	}
	sort.Ints(rooms)
	return rooms
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
