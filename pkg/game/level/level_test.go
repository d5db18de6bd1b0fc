package level

import (
	"strings"
	"testing"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
)

func loadLevel(t *testing.T) *Level {
	t.Helper()
	lvl, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return lvl
}

func TestLoad_Graph(t *testing.T) {
	lvl := loadLevel(t)
	g := &lvl.Graph

	if g.Start != 24 || g.Boss != 36 {
		t.Errorf("start %d boss %d, want 24 and 36", g.Start, g.Boss)
	}
	if ids := g.RoomIDs(); len(ids) != 13 || ids[0] != 24 || ids[12] != 36 {
		t.Errorf("RoomIDs() = %v, want 24..36", ids)
	}

	start := g.Stairs(24)
	want := map[physics.Direction]int{physics.North: 27, physics.South: 31, physics.West: 29, physics.East: 25}
	for d, next := range want {
		if start[d] != next {
			t.Errorf("Stairs(24)[%v] = %d, want %d", d, start[d], next)
		}
	}
	if len(g.Stairs(36)) != 0 {
		t.Errorf("boss room has stairs %v, want none", g.Stairs(36))
	}
	if _, ok := g.Stairs(26)[physics.North]; ok {
		t.Error("corner room 26 should have no north stairs")
	}
}

// Every stair edge between two non-boss rooms has a matching edge back.
func TestLoad_GraphIsReciprocal(t *testing.T) {
	lvl := loadLevel(t)
	g := &lvl.Graph
	for _, id := range g.RoomIDs() {
		for d, next := range g.Stairs(id) {
			if next == g.Boss {
				continue
			}
			if back := g.Stairs(next)[d.Opposite()]; back != id {
				t.Errorf("room %d %v -> %d, but %d %v -> %d", id, d, next, next, d.Opposite(), back)
			}
		}
	}
}

func TestLoad_Templates(t *testing.T) {
	lvl := loadLevel(t)

	if !lvl.Start.StairsActive || len(lvl.Start.Enemies) != 0 {
		t.Error("start room should be empty with its stairs active")
	}
	if !lvl.Boss.Boss || len(lvl.Boss.Enemies) != 1 {
		t.Fatalf("boss template = %+v, want one boss enemy", lvl.Boss)
	}
	if kind, _ := lvl.Boss.Enemies[0].EnemyKind(); kind != entities.EnemyGolemBoss {
		t.Errorf("boss enemy kind = %v, want golem", kind)
	}
	if x := lvl.Boss.Enemies[0].X.Of(800); x != 300 {
		t.Errorf("boss x = %d, want 300", x)
	}

	tests := []struct {
		name       string
		enemies    int
		obstacles  int
		chestSlots int
	}{
		{"combat1", 4, 11 + 8, 1},
		{"combat2", 6, 4 + 2 + 4 + 2 + 3 + 3 + 3 + 3, 4},
		{"combat3", 4, 5 + 5 + 2 + 5 + 5 + 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, ok := lvl.Templates[tt.name]
			if !ok {
				t.Fatalf("template %s missing", tt.name)
			}
			if len(tmpl.Enemies) != tt.enemies {
				t.Errorf("enemies = %d, want %d", len(tmpl.Enemies), tt.enemies)
			}
			if n := len(tmpl.ObstacleCells()); n != tt.obstacles {
				t.Errorf("obstacle cells = %d, want %d", n, tt.obstacles)
			}
			if n := len(tmpl.ChestCells()); n != tt.chestSlots {
				t.Errorf("chest cells = %d, want %d", n, tt.chestSlots)
			}
		})
	}
}

func TestCell_Pixels(t *testing.T) {
	x, y := Cell{X: 15, Y: 11}.Pixels(800, 600)
	if x != 750 || y != 550 {
		t.Errorf("Cell{15,11}.Pixels(800,600) = (%d,%d), want (750,550)", x, y)
	}
}

func TestParse_Errors(t *testing.T) {
	rooms := "start: {}\nboss: {}\ncombat: [a]\na: {}\n"
	tests := []struct {
		name    string
		graph   string
		rooms   string
		wantErr string
	}{
		{"bad direction", "start: 1\nboss: 1\nrooms:\n  1: {Q: 1}\n", rooms, "invalid direction"},
		{"dangling edge", "start: 1\nboss: 1\nrooms:\n  1: {N: 2}\n", rooms, "unknown room 2"},
		{"missing start", "start: 5\nboss: 1\nrooms:\n  1: {}\n", rooms, "start room 5"},
		{"unknown layout", "start: 1\nboss: 1\nrooms:\n  1: {}\n", "combat: [nope]\n", "\"nope\" is not defined"},
		{"unknown enemy", "start: 1\nboss: 1\nrooms:\n  1: {}\n",
			"combat: [a]\na:\n  enemies:\n    - {kind: dragon, x: 1/2, y: 1/2}\n", "unknown enemy kind"},
		{"bad fraction", "start: 1\nboss: 1\nrooms:\n  1: {}\n",
			"combat: [a]\na:\n  enemies:\n    - {kind: evil_rock, x: half, y: 1/2}\n", "not num/den"},
		{"reversed range", "start: 1\nboss: 1\nrooms:\n  1: {}\n",
			"combat: [a]\na:\n  obstacles: [\"5..2,1\"]\n", "reversed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.graph), []byte(tt.rooms))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
