// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/hud"
	"stonesnspells/pkg/game/renderer"
	"stonesnspells/pkg/game/renderer/tui"
	"stonesnspells/pkg/game/state"
)

const stateDumpFilename = "state_dump.txt"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                3,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type entitySnapshot struct {
	Kind   string
	X, Y   int
	HP     int
	Damage int
	Sprite string
}

type roomSnapshot struct {
	ID            int
	Active        bool
	StairsActive  bool
	StairsCounter int
	Boss          bool
	Enemies       []entitySnapshot
	Projectiles   []entitySnapshot
	Obstacles     int
	Collidables   int
}

type playerSnapshot struct {
	X, Y          int
	HP, MaxHP     int
	Attack, Speed int
	Facing        string
	Invulnerable  bool
	PickaxeCount  int
	Items         []string
}

func snapshotPlayer(g *state.Game) playerSnapshot {
	p := g.Player
	b := p.Body()
	snap := playerSnapshot{
		X:            b.X,
		Y:            b.Y,
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Attack:       p.Attack,
		Speed:        p.Speed,
		Facing:       p.Facing.String(),
		Invulnerable: p.Invulnerable(),
		PickaxeCount: p.Pickaxe.Count(),
	}
	for _, item := range p.Items() {
		snap.Items = append(snap.Items, hud.ItemName(item.Kind))
	}
	return snap
}

func snapshotRoom(g *state.Game) roomSnapshot {
	r := g.Current
	snap := roomSnapshot{
		ID:            r.ID,
		Active:        r.IsActive(),
		StairsActive:  r.StairsActive(),
		StairsCounter: r.StairsCounter(),
		Boss:          r.IsBoss(),
		Obstacles:     len(r.Obstacles()),
		Collidables:   len(r.Collidables()),
	}
	for _, e := range r.Enemies() {
		b := e.Body()
		snap.Enemies = append(snap.Enemies, entitySnapshot{Kind: e.Info().Name, X: b.X, Y: b.Y, HP: e.HP, Sprite: e.Sprite()})
	}
	for _, p := range r.Projectiles() {
		b := p.Body()
		snap.Projectiles = append(snap.Projectiles, entitySnapshot{Kind: entities.ProjectileTypes[p.Variant].Name, X: b.X, Y: b.Y, Damage: p.Damage, Sprite: p.Sprite()})
	}
	return snap
}

// DumpState writes a human-readable snapshot of the session: metadata, a character
// grid of the current room and a structured dump of the player and room.
func DumpState(w io.Writer, g *state.Game) error {
	if g.Current == nil || g.Player == nil {
		return fmt.Errorf("no session to dump")
	}

	var b strings.Builder
	fmt.Fprintln(&b, "=== STATE DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "seed: %d\n", g.Seed)
	fmt.Fprintf(&b, "tick: %d\n", g.Ticks)
	fmt.Fprintf(&b, "room: %d\n", g.Current.ID)
	fmt.Fprintf(&b, "paused: %v\n", g.Paused)
	fmt.Fprintf(&b, "chest_rooms: %v\n", g.ChestRooms)
	fmt.Fprintf(&b, "won: %v\n", g.Won())
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintf(&b, "%s player  %s wall  %s minecart  %s chest  %s open chest  %s stairs  %s rock  %s bat  %s golem  %s wave  %s blast  %s fireball\n",
		tui.IconPlayer, tui.IconWall, tui.IconMinecart, tui.IconChestClosed, tui.IconChestOpen, tui.IconStairs,
		tui.IconRock, tui.IconBat, tui.IconGolem, tui.IconWave, tui.IconBlast, tui.IconFireball)
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Room ---")
	grid := tui.New(false)
	renderer.DrawRoom(grid, g.Current)
	renderer.DrawPlayer(grid, g.Player)
	if err := grid.Render(&b, 0); err != nil {
		return err
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Player ---")
	dumpConfig.Fdump(&b, snapshotPlayer(g))
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Room state ---")
	dumpConfig.Fdump(&b, snapshotRoom(g))

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteStateDump writes DumpState to state_dump.txt in dir and returns its absolute path.
func WriteStateDump(dir string, g *state.Game) (string, error) {
	if dir == "" {
		dir = "."
	}
	absPath, err := filepath.Abs(filepath.Join(dir, stateDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpState(f, g); err != nil {
		return "", fmt.Errorf("dump state: %w", err)
	}
	return absPath, nil
}
