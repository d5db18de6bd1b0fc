// Package tui rasterises frames onto a character grid for terminals and text dumps.
// Every grid cell covers one 50 px layout cell of the room.
package tui

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"

	gcolor "github.com/gookit/color"

	"stonesnspells/pkg/engine/physics"
	"stonesnspells/pkg/game/renderer"
	"stonesnspells/pkg/game/state"
)

// Icon constants for Stones n Spells
const (
	IconFloor       = "·"
	IconWall        = "▒"
	IconMinecart    = "▭"
	IconChestClosed = "▣"
	IconChestOpen   = "□"
	IconStairs      = "≡"
	IconPlayer      = "@"
	IconSlash       = "/"
	IconRock        = "o"
	IconBat         = "v"
	IconGolem       = "G"
	IconWave        = "~"
	IconBlast       = "*"
	IconFireball    = "•"
	IconExplosion   = "✸"
	IconUnknown     = "?"
)

type icon struct {
	prefix string
	glyph  string
	style  gcolor.Style
}

// icons is matched by sprite id prefix, first match wins. Sprites without an icon are
// not drawn on the grid.
var icons = []icon{
	{"player_", IconPlayer, gcolor.Style{gcolor.FgGreen, gcolor.OpBold}},
	{"slash_", IconSlash, gcolor.Style{gcolor.FgWhite, gcolor.OpBold}},
	{"evil_rock", IconRock, gcolor.Style{gcolor.FgGray, gcolor.OpBold}},
	{"bat_wings_", IconBat, gcolor.Style{gcolor.FgMagenta}},
	{"bat_wave_", IconWave, gcolor.Style{gcolor.FgMagenta, gcolor.OpBold}},
	{"golem_blast_", IconBlast, gcolor.Style{gcolor.FgYellow, gcolor.OpBold}},
	{"golem_", IconGolem, gcolor.Style{gcolor.FgYellow}},
	{"fireball_explosion", IconExplosion, gcolor.Style{gcolor.FgRed, gcolor.OpBold}},
	{"fireball_", IconFireball, gcolor.Style{gcolor.FgRed}},
	{"wall", IconWall, gcolor.Style{gcolor.FgGray}},
	{"minecart", IconMinecart, gcolor.Style{gcolor.FgYellow}},
	{"chest_closed", IconChestClosed, gcolor.Style{gcolor.FgYellow, gcolor.OpBold}},
	{"chest_open", IconChestOpen, gcolor.Style{gcolor.FgYellow}},
	{"stairs", IconStairs, gcolor.Style{gcolor.FgCyan, gcolor.OpBold}},
}

// skipped sprites belong to the HUD or are too small to matter on the grid.
var skipped = []string{"pickaxe_", "heart_", "item_"}

func lookup(id string) (icon, bool) {
	for _, p := range skipped {
		if strings.HasPrefix(id, p) {
			return icon{}, false
		}
	}
	for _, ic := range icons {
		if strings.HasPrefix(id, ic.prefix) {
			return ic, true
		}
	}
	return icon{glyph: IconUnknown, style: gcolor.Style{gcolor.FgRed}}, true
}

type cell struct {
	glyph string
	style gcolor.Style
}

type textLine struct {
	text string
	x, y int
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	cols, rows int
	grid       [][]cell
	text       []textLine
	colour     bool
}

// New creates a grid for a game area of state.Width x state.Height.
// colour enables ANSI styling.
func New(colour bool) *TUIRenderer {
	t := &TUIRenderer{
		cols:   state.Width / physics.PixelConstant,
		rows:   state.Height / physics.PixelConstant,
		colour: colour,
	}
	t.Clear()
	return t
}

// Clear resets the grid to bare floor and drops collected text.
func (t *TUIRenderer) Clear() {
	t.grid = make([][]cell, t.rows)
	for r := range t.grid {
		t.grid[r] = make([]cell, t.cols)
		for c := range t.grid[r] {
			t.grid[r][c] = cell{glyph: IconFloor, style: gcolor.Style{gcolor.FgDarkGray}}
		}
	}
	t.text = nil
}

// DrawSprite marks every grid cell the sprite covers.
func (t *TUIRenderer) DrawSprite(id string, x, y int) {
	ic, ok := lookup(id)
	if !ok {
		return
	}
	info := renderer.Sprite(id)
	c0, r0 := x/physics.PixelConstant, y/physics.PixelConstant
	c1 := (x + info.W - 1) / physics.PixelConstant
	r1 := (y + info.H - 1) / physics.PixelConstant
	for r := max(r0, 0); r <= r1 && r < t.rows; r++ {
		for c := max(c0, 0); c <= c1 && c < t.cols; c++ {
			t.grid[r][c] = cell{glyph: ic.glyph, style: ic.style}
		}
	}
}

// DrawRect is a no-op: the grid has no fills.
func (t *TUIRenderer) DrawRect(x, y, w, h int, c color.Color) {}

// DrawText collects a text line; lines are printed under the grid top to bottom.
func (t *TUIRenderer) DrawText(s string, x, y int, font renderer.Font) {
	t.text = append(t.text, textLine{text: s, x: x, y: y})
}

// Glyph returns the glyph at grid cell (col, row).
func (t *TUIRenderer) Glyph(col, row int) string {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return ""
	}
	return t.grid[row][col].glyph
}

// Render writes the grid and then the collected text. Lines wider than width runes
// are cut; width <= 0 disables clipping.
func (t *TUIRenderer) Render(w io.Writer, width int) error {
	for _, row := range t.grid {
		var b strings.Builder
		for i, c := range row {
			if width > 0 && i >= width {
				break
			}
			if t.colour {
				b.WriteString(c.style.Sprint(c.glyph))
			} else {
				b.WriteString(c.glyph)
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}

	lines := append([]textLine(nil), t.text...)
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].y != lines[j].y {
			return lines[i].y < lines[j].y
		}
		return lines[i].x < lines[j].x
	})
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, clip(l.text, width)); err != nil {
			return err
		}
	}
	return nil
}

// String renders without clipping or colour codes.
func (t *TUIRenderer) String() string {
	var b strings.Builder
	colour := t.colour
	t.colour = false
	_ = t.Render(&b, 0)
	t.colour = colour
	return b.String()
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
