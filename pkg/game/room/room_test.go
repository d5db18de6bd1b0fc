package room

import (
	"math/rand"
	"testing"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/entities"
	"stonesnspells/pkg/game/level"
)

func loadTemplate(t *testing.T, name string) level.Template {
	t.Helper()
	lvl, err := level.Load()
	if err != nil {
		t.Fatalf("level.Load() error = %v", err)
	}
	switch name {
	case "start":
		return lvl.Start
	case "boss":
		return lvl.Boss
	}
	tmpl, ok := lvl.Templates[name]
	if !ok {
		t.Fatalf("template %q missing", name)
	}
	return tmpl
}

func buildRoom(t *testing.T, id int, tmpl level.Template, item *entities.Item, stairs map[physics.Direction]int) (*Room, *entities.Player, *rand.Rand) {
	t.Helper()
	p := entities.NewPlayer(0, nil)
	rng := rand.New(rand.NewSource(7))
	r := Build(Plan{ID: id, Template: tmpl, Stairs: stairs, Width: 800, Height: 600, Item: item}, p, rng)
	return r, p, rng
}

func TestRegistry_RemoveKeepsOrderAndRunningPass(t *testing.T) {
	r := newRegistry[int]()
	for _, v := range []int{3, 1, 2, 1} {
		r.Put(v)
	}
	if got := r.Items(); len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("Items() = %v, want [3 1 2]", got)
	}

	var seen []int
	for _, v := range r.Items() {
		seen = append(seen, v)
		r.Remove(1)
	}
	if len(seen) != 3 {
		t.Errorf("pass saw %v, want all three members", seen)
	}
	if r.Has(1) || r.Size() != 2 {
		t.Errorf("after Remove(1): Has = %v, Size = %d, want false and 2", r.Has(1), r.Size())
	}
}

func TestBuild_CombatRoom(t *testing.T) {
	r, p, _ := buildRoom(t, 25, loadTemplate(t, "combat1"), entities.NewItem(entities.ItemWhetstone), nil)

	if len(r.Enemies()) != 4 {
		t.Errorf("Enemies() = %d, want 4", len(r.Enemies()))
	}
	// 19 walls and one chest.
	if len(r.Obstacles()) != 20 {
		t.Errorf("Obstacles() = %d, want 20", len(r.Obstacles()))
	}
	if got := len(r.Collidables()); got != 1+4+20 {
		t.Errorf("Collidables() = %d, want 25", got)
	}
	if r.Collidables()[0] != p {
		t.Error("player should be the first registered collidable")
	}
	if r.StairsActive() || r.IsActive() {
		t.Error("a fresh combat room should be inactive with its stairs hidden")
	}
}

func TestBuild_ChestSlots(t *testing.T) {
	tests := []struct {
		name      string
		item      *entities.Item
		chests    int
		minecarts int
	}{
		{"with item", entities.NewItem(entities.ItemWingBoots), 1, 3},
		{"without item", nil, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := buildRoom(t, 26, loadTemplate(t, "combat2"), tt.item, nil)
			var chests, minecarts int
			for _, o := range r.Obstacles() {
				switch o := o.(type) {
				case *entities.Chest:
					chests++
					if o.Peek() != tt.item {
						t.Errorf("chest holds %v, want %v", o.Peek(), tt.item)
					}
				case *entities.Obstacle:
					if o.Sprite == entities.SpriteMinecart {
						minecarts++
					}
				}
			}
			if chests != tt.chests || minecarts != tt.minecarts {
				t.Errorf("chests, minecarts = %d, %d, want %d, %d", chests, minecarts, tt.chests, tt.minecarts)
			}
		})
	}
}

func TestUpdate_ClearedCombatRoomOpensStairs(t *testing.T) {
	r, _, rng := buildRoom(t, 25, loadTemplate(t, "combat1"), nil, map[physics.Direction]int{physics.West: 24})
	r.Activate()
	for _, e := range r.Enemies() {
		e.HP = 0
	}
	if s := r.Update(r.Tick(nil, rng)); s != nil {
		t.Fatalf("Update() = %v, want no stairs", s)
	}
	if len(r.Enemies()) != 0 {
		t.Errorf("Enemies() = %d after purge, want 0", len(r.Enemies()))
	}
	if !r.StairsActive() || r.StairsCounter() != StairsWaitTime {
		t.Errorf("stairs active %v counter %d, want true and %d", r.StairsActive(), r.StairsCounter(), StairsWaitTime)
	}
	for _, c := range r.Collidables() {
		if c.Kind() == physics.KindEnemy {
			t.Fatal("dead enemy still registered as a collidable")
		}
	}
}

func TestUpdate_BossStaysWhenDead(t *testing.T) {
	r, _, rng := buildRoom(t, 36, loadTemplate(t, "boss"), nil, nil)
	r.Activate()
	if r.BossDefeated() {
		t.Fatal("BossDefeated() = true before the fight")
	}
	r.Boss().HP = 0
	r.Update(r.Tick(nil, rng))

	if len(r.Enemies()) != 1 || !r.BossDefeated() {
		t.Errorf("boss room has %d enemies, defeated %v, want the dead boss kept", len(r.Enemies()), r.BossDefeated())
	}
	if r.StairsActive() {
		t.Error("boss room should never open stairs")
	}
}

func TestUpdate_PurgesSpentProjectiles(t *testing.T) {
	p := entities.NewPlayer(0, nil)
	r := New(30, 800, 600, p)
	r.Activate()
	p.Place(770, 300)
	r.AddProjectile(entities.NewFireball(p, physics.East))

	r.Update(r.Tick(nil, rand.New(rand.NewSource(1))))

	if n := len(r.Projectiles()); n != 0 {
		t.Errorf("Projectiles() = %d, want 0", n)
	}
	if n := len(r.Collidables()); n != 1 {
		t.Errorf("Collidables() = %d, want only the player", n)
	}
}

func TestUpdate_StairsWaitBeforeTriggering(t *testing.T) {
	r, p, rng := buildRoom(t, 24, loadTemplate(t, "start"), nil, map[physics.Direction]int{physics.East: 25})
	x, y := StairsPosition(physics.East, 800, 600)
	p.Place(x, y)

	if s := r.Update(r.Tick(nil, rng)); s != nil {
		t.Fatalf("inactive room returned stairs %v", s)
	}

	r.Activate()
	tick := r.Tick(nil, rng)
	for i := 0; i < StairsWaitTime; i++ {
		if s := r.Update(tick); s != nil {
			t.Fatalf("Update() #%d = stairs, want nil during the wait", i+1)
		}
	}
	s := r.Update(tick)
	if s == nil || s.Direction != physics.East || s.NextRoom != 25 {
		t.Fatalf("Update() after wait = %+v, want east stairs to 25", s)
	}
}

func TestStairsPosition(t *testing.T) {
	tests := []struct {
		d    physics.Direction
		x, y int
	}{
		{physics.North, 350, 0},
		{physics.South, 350, 550},
		{physics.West, 0, 250},
		{physics.East, 750, 250},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if x, y := StairsPosition(tt.d, 800, 600); x != tt.x || y != tt.y {
				t.Errorf("StairsPosition(%v) = (%d,%d), want (%d,%d)", tt.d, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestArrival_MirrorsEdge(t *testing.T) {
	r := New(25, 800, 600, entities.NewPlayer(0, nil))
	tests := []struct {
		d    physics.Direction
		x, y int
	}{
		{physics.North, 360, 495},
		{physics.South, 360, 55},
		{physics.West, 695, 260},
		{physics.East, 55, 260},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			if x, y := r.Arrival(tt.d, 360, 260); x != tt.x || y != tt.y {
				t.Errorf("Arrival(%v, 360, 260) = (%d,%d), want (%d,%d)", tt.d, x, y, tt.x, tt.y)
			}
		})
	}
}
