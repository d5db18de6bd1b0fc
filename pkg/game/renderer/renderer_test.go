package renderer

import (
	"image/color"
	"testing"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
	"stonesnspells/pkg/game/room"
	"stonesnspells/pkg/game/state"
)

type call struct {
	kind string // sprite, rect or text
	id   string
	x, y int
	w, h int
}

type recorder struct {
	calls []call
}

func (r *recorder) DrawSprite(id string, x, y int) {
	r.calls = append(r.calls, call{kind: "sprite", id: id, x: x, y: y})
}

func (r *recorder) DrawRect(x, y, w, h int, _ color.Color) {
	r.calls = append(r.calls, call{kind: "rect", x: x, y: y, w: w, h: h})
}

func (r *recorder) DrawText(s string, x, y int, _ Font) {
	r.calls = append(r.calls, call{kind: "text", id: s, x: x, y: y})
}

func (r *recorder) count(kind, id string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind && c.id == id {
			n++
		}
	}
	return n
}

func (r *recorder) find(kind, id string) (call, bool) {
	for _, c := range r.calls {
		if c.kind == kind && c.id == id {
			return c, true
		}
	}
	return call{}, false
}

func newTestGame(t *testing.T, boss bool) *state.Game {
	t.Helper()
	lvl, err := level.Load()
	if err != nil {
		t.Fatalf("level.Load() error = %v", err)
	}
	g := state.NewGame(1)
	g.Player = entities.NewPlayer(0, nil)
	plan := room.Plan{ID: 24, Template: lvl.Start, Stairs: lvl.Graph.Stairs(24), Width: state.Width, Height: state.Height}
	if boss {
		plan = room.Plan{ID: 36, Template: lvl.Boss, Width: state.Width, Height: state.Height}
	}
	g.AddRoom(room.Build(plan, g.Player, g.Rand))
	g.EnterRoom(plan.ID)
	return g
}

func TestDrawFrame_StartRoom(t *testing.T) {
	g := newTestGame(t, false)
	r := &recorder{}
	DrawFrame(r, g)

	if first := r.calls[0]; first.kind != "rect" || first.w != 800 || first.h != 600 {
		t.Errorf("first call = %+v, want the 800x600 floor", first)
	}
	if n := r.count("sprite", entities.SpriteStairs); n != 4 {
		t.Errorf("stairs drawn = %d, want 4", n)
	}
	if c, ok := r.find("sprite", "player_s"); !ok || c.x != 200 || c.y != 300 {
		t.Errorf("player sprite = %+v, want player_s at (200,300)", c)
	}
	if n := r.count("sprite", "heart_full"); n != 7 {
		t.Errorf("full hearts = %d, want 7", n)
	}
	if _, ok := r.find("text", "PAUSED"); ok {
		t.Error("pause overlay drawn while running")
	}
}

func TestDrawFrame_Paused(t *testing.T) {
	g := newTestGame(t, false)
	g.Paused = true
	r := &recorder{}
	DrawFrame(r, g)
	if _, ok := r.find("text", "PAUSED"); !ok {
		t.Error("pause overlay missing")
	}
	if _, ok := r.find("text", "Attack: gamepad_a, space"); !ok {
		t.Error("pause overlay does not list the attack controls")
	}
}

func TestDrawFrame_BossOverlay(t *testing.T) {
	g := newTestGame(t, true)
	boss := g.Current.Boss()
	boss.HP = 10

	r := &recorder{}
	DrawFrame(r, g)
	bar, ok := r.find("text", "Golem")
	if !ok {
		t.Fatal("boss name missing")
	}
	var found bool
	for _, c := range r.calls {
		if c.kind == "rect" && c.x == 250 && c.y == 600/32 {
			found = true
			if c.w != 200 || c.h != 600/40 {
				t.Errorf("boss bar %dx%d, want 200x%d", c.w, c.h, 600/40)
			}
		}
	}
	if !found {
		t.Errorf("boss bar missing near %+v", bar)
	}

	boss.HP = 0
	r = &recorder{}
	DrawFrame(r, g)
	if c, ok := r.find("text", "YOU WIN!"); !ok || c.x != 300 || c.y != 300 {
		t.Errorf("win banner = %+v, want YOU WIN! at (300,300)", c)
	}
	if n := r.count("sprite", boss.Sprite()); n != 0 {
		t.Error("dead boss should not be drawn")
	}
}

func TestProjectileOrigin_BeforeExplosion(t *testing.T) {
	g := newTestGame(t, false)
	p := g.Player
	fb := entities.NewFireball(p, physics.East)
	g.Current.AddProjectile(fb)

	x, y := projectileOrigin(fb)
	if b := fb.Body(); x != b.X || y != b.Y {
		t.Errorf("projectileOrigin() = (%d,%d), want the body corner before exploding", x, y)
	}
}

func TestSprite(t *testing.T) {
	tests := []struct {
		id   string
		w, h int
	}{
		{"golem_blast_1", 50, 50},
		{"golem_walk_2", 100, 100},
		{"slash_e_2", 37, 50},
		{"bat_wave_ne", 15, 15},
		{"unknown", 50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if info := Sprite(tt.id); info.W != tt.w || info.H != tt.h {
				t.Errorf("Sprite(%q) = %dx%d, want %dx%d", tt.id, info.W, info.H, tt.w, tt.h)
			}
		})
	}
	if Sprite("unknown").Fallback != ColorFallback {
		t.Error("unknown sprites should use ColorFallback")
	}
}
