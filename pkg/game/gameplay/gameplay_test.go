package gameplay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stonesnspells/pkg/engine/input"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
	"stonesnspells/pkg/game/logging"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newTestWorld(t *testing.T) (*World, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	w, err := New(Options{Seed: 11, Chests: 3, Now: clock.Now, DumpDir: t.TempDir()}, logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w, clock
}

// step samples the given actions and advances one tick.
func step(w *World, src *input.State, actions ...input.Action) {
	src.SampleActions(actions...)
	w.Step(src)
}

func TestBuildGame(t *testing.T) {
	w, _ := newTestWorld(t)
	g := w.Game

	if len(g.Rooms) != 13 {
		t.Errorf("rooms = %d, want 13", len(g.Rooms))
	}
	if g.Current == nil || g.Current.ID != 24 || !g.Current.IsActive() {
		t.Fatalf("current room = %+v, want active room 24", g.Current)
	}
	if !g.Current.StairsActive() {
		t.Error("start room stairs should be active")
	}
	active := 0
	for _, r := range g.Rooms {
		if r.IsActive() {
			active++
		}
	}
	if active != 1 {
		t.Errorf("%d active rooms, want exactly 1", active)
	}
	if !g.Rooms[36].IsBoss() || g.Rooms[36].Boss() == nil {
		t.Error("room 36 should hold the boss")
	}

	if len(g.ChestRooms) != 3 {
		t.Errorf("ChestRooms = %v, want 3 distinct rooms", g.ChestRooms)
	}
	want := 0
	for _, id := range g.ChestRooms {
		if id < 24 || id >= 35 {
			t.Errorf("chest room %d outside [24,35)", id)
		}
		if id != 24 {
			want++
		}
	}
	chests := 0
	for _, r := range g.Rooms {
		for _, o := range r.Obstacles() {
			if _, ok := o.(*entities.Chest); ok {
				chests++
			}
		}
	}
	if chests != want {
		t.Errorf("chests placed = %d, want %d", chests, want)
	}
}

func TestBuildGame_SameSeedSameLayout(t *testing.T) {
	lvl, err := level.Load()
	if err != nil {
		t.Fatalf("level.Load() error = %v", err)
	}
	a := BuildGame(lvl, Options{Chests: 3}, 99)
	b := BuildGame(lvl, Options{Chests: 3}, 99)
	for i := range a.ChestRooms {
		if a.ChestRooms[i] != b.ChestRooms[i] {
			t.Fatalf("ChestRooms = %v and %v, want equal", a.ChestRooms, b.ChestRooms)
		}
	}
	for id, r := range a.Rooms {
		if len(r.Enemies()) != len(b.Rooms[id].Enemies()) || len(r.Obstacles()) != len(b.Rooms[id].Obstacles()) {
			t.Errorf("room %d differs between builds with the same seed", id)
		}
	}
}

func TestStep_EastStairsMirrorIntoRoom25(t *testing.T) {
	w, _ := newTestWorld(t)
	src := input.NewState()
	w.Game.Player.Place(750, 250)

	steps := 0
	for w.Game.Current.ID == 24 && steps < 50 {
		step(w, src)
		steps++
	}

	g := w.Game
	if g.Current.ID != 25 {
		t.Fatalf("current room = %d, want 25", g.Current.ID)
	}
	if steps != 11 {
		t.Errorf("transition after %d ticks, want 11", steps)
	}
	if b := g.Player.Body(); b.X != 55 || b.Y != 250 {
		t.Errorf("player at (%d,%d), want (55,250)", b.X, b.Y)
	}
	if g.Rooms[24].IsActive() || !g.Current.IsActive() {
		t.Error("room 24 should be inactive and room 25 active")
	}
}

func TestStep_Movement(t *testing.T) {
	tests := []struct {
		name   string
		held   []input.Action
		x, y   int
		facing string
	}{
		{"east", []input.Action{input.ActionMoveEast}, 203, 300, "East"},
		{"west then east", []input.Action{input.ActionMoveEast, input.ActionMoveWest}, 200, 300, "East"},
		{"diagonal", []input.Action{input.ActionMoveNorth, input.ActionMoveWest}, 197, 297, "North"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			step(w, input.NewState(), tt.held...)
			p := w.Game.Player
			if b := p.Body(); b.X != tt.x || b.Y != tt.y {
				t.Errorf("player at (%d,%d), want (%d,%d)", b.X, b.Y, tt.x, tt.y)
			}
			if p.Facing.String() != tt.facing {
				t.Errorf("Facing = %v, want %s", p.Facing, tt.facing)
			}
		})
	}
}

func TestStep_DeadPlayerIgnoresInput(t *testing.T) {
	w, _ := newTestWorld(t)
	p := w.Game.Player
	p.HP = 0
	step(w, input.NewState(), input.ActionMoveEast, input.ActionAttack)
	if b := p.Body(); b.X != 200 || p.Pickaxe.Attacking() {
		t.Errorf("dead player moved to x=%d (attacking %v), want no reaction", b.X, p.Pickaxe.Attacking())
	}
}

func TestStep_PauseToggles(t *testing.T) {
	w, _ := newTestWorld(t)
	src := input.NewState()
	g := w.Game

	step(w, src, input.ActionPause)
	if !g.Paused || g.Current.IsActive() || g.Ticks != 0 {
		t.Fatalf("after pause: paused %v active %v ticks %d, want true false 0", g.Paused, g.Current.IsActive(), g.Ticks)
	}
	step(w, src, input.ActionPause, input.ActionMoveEast)
	if g.Player.Body().X != 200 {
		t.Error("held pause must not toggle again or move the player")
	}
	step(w, src)
	step(w, src, input.ActionPause)
	if g.Paused || !g.Current.IsActive() || g.Ticks != 1 {
		t.Errorf("after resume: paused %v active %v ticks %d, want false true 1", g.Paused, g.Current.IsActive(), g.Ticks)
	}
}

func TestStep_ContactDamage(t *testing.T) {
	t.Run("rock hurts once per window", func(t *testing.T) {
		w, clock := newTestWorld(t)
		src := input.NewState()
		w.Game.Current.AddEnemy(entities.NewEnemy(entities.EnemyEvilRock, 200, 300))

		step(w, src)
		step(w, src)
		if hp := w.Game.Player.HP; hp != 6 {
			t.Errorf("HP = %d after two touching ticks, want 6", hp)
		}
		clock.now = clock.now.Add(entities.PlayerInvulnerability)
		step(w, src)
		if hp := w.Game.Player.HP; hp != 5 {
			t.Errorf("HP = %d after the window, want 5", hp)
		}
	})
	t.Run("idle boss does not hurt", func(t *testing.T) {
		w, _ := newTestWorld(t)
		w.Game.Current.AddEnemy(entities.NewEnemy(entities.EnemyGolemBoss, 175, 275))
		step(w, input.NewState())
		if hp := w.Game.Player.HP; hp != 7 {
			t.Errorf("HP = %d, want 7", hp)
		}
	})
}

func TestStep_PickaxeOpensChestIntoHUD(t *testing.T) {
	w, _ := newTestWorld(t)
	item := entities.NewItem(entities.ItemWhetstone)
	w.Game.Current.AddObstacle(entities.NewChest(200, 350, item))

	step(w, input.NewState(), input.ActionAttack)

	if items := w.Game.HUD.Items(); len(items) != 1 || items[0] != item {
		t.Fatalf("HUD items = %v, want the whetstone", items)
	}
	if w.Game.Player.Attack != 2 {
		t.Errorf("Attack = %d, want 2 with the whetstone", w.Game.Player.Attack)
	}
	if last := w.Game.Messages[len(w.Game.Messages)-1]; last != "Picked up Whetstone." {
		t.Errorf("last message = %q", last)
	}
}

func TestStep_ResetBuildsFreshSession(t *testing.T) {
	w, _ := newTestWorld(t)
	old := w.Game
	old.Player.HP = 1
	step(w, input.NewState(), input.ActionReset)

	if w.Game == old {
		t.Fatal("Reset kept the old session")
	}
	if w.Game.Player.HP != 7 || w.Game.Current.ID != 24 {
		t.Errorf("fresh session hp %d room %d, want 7 and 24", w.Game.Player.HP, w.Game.Current.ID)
	}
}

func TestStep_DumpState(t *testing.T) {
	w, _ := newTestWorld(t)
	step(w, input.NewState(), input.ActionDumpState)
	if _, err := os.Stat(filepath.Join(w.opts.DumpDir, "state_dump.txt")); err != nil {
		t.Errorf("state dump missing: %v", err)
	}
}
