package hud

import (
	"testing"

	"stonesnspells/pkg/game/entities"
)

func TestInventory_AddItemAndRepaint(t *testing.T) {
	inv := NewInventory()
	if !inv.TakeRepaint() {
		t.Error("a new inventory should ask for its first paint")
	}
	if inv.TakeRepaint() {
		t.Error("TakeRepaint() should clear the request")
	}

	item := entities.NewItem(entities.ItemWhetstone)
	inv.AddItem(item)
	inv.AddItem(item)
	inv.RequestRepaint()

	if n := len(inv.Items()); n != 1 {
		t.Errorf("Items() = %d, want 1", n)
	}
	if !inv.TakeRepaint() {
		t.Error("TakeRepaint() = false after RequestRepaint")
	}
}

func TestCompose(t *testing.T) {
	p := entities.NewPlayer(0, nil)
	inv := NewInventory()
	inv.AddItem(entities.NewItem(entities.ItemWingBoots))

	tests := []struct {
		name   string
		hp     int
		won    bool
		status string
		label  string
	}{
		{"running", 7, false, "", "HP 7/7"},
		{"won", 3, true, "YOU WIN!", "HP 3/7"},
		{"dead", -2, false, "GAME OVER", "HP 0/7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.HP = tt.hp
			panel := Compose(p, inv, 24, tt.won)
			if panel.Status != tt.status {
				t.Errorf("Status = %q, want %q", panel.Status, tt.status)
			}
			if panel.HPLabel != tt.label {
				t.Errorf("HPLabel = %q, want %q", panel.HPLabel, tt.label)
			}
			if panel.RoomLabel != "Room 24" {
				t.Errorf("RoomLabel = %q, want %q", panel.RoomLabel, "Room 24")
			}
			if len(panel.Items) != 1 || panel.Items[0] != "Wing Boots" {
				t.Errorf("Items = %v, want [Wing Boots]", panel.Items)
			}
		})
	}
}

func TestText_UnknownKeyRendersAsItself(t *testing.T) {
	if got := Text("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Text(NOT_A_KEY) = %q, want the key", got)
	}
}

func TestControls(t *testing.T) {
	lines := Controls()
	if len(lines) != 9 {
		t.Fatalf("Controls() returned %d lines, want 9", len(lines))
	}
	if want := "Move North: arrow_up, gamepad_dpad_up, w"; lines[0] != want {
		t.Errorf("Controls()[0] = %q, want %q", lines[0], want)
	}
	if want := "Dump State: f9"; lines[8] != want {
		t.Errorf("Controls()[8] = %q, want %q", lines[8], want)
	}
}
