// Package renderer composes a game frame from draw calls on a Renderer. Backends
// live in the ebiten and tui subpackages.
package renderer

import (
	"image/color"
	"strings"
)

// Screen layout: the room on top, the HUD strip below it.
const (
	HUDHeight    = 200
	ScreenWidth  = 800
	ScreenHeight = 600 + HUDHeight
)

var (
	ColorFloor    = color.RGBA{0x3b, 0x33, 0x2b, 0xff}
	ColorHUD      = color.RGBA{0x1e, 0x1a, 0x16, 0xff}
	ColorBossBar  = color.RGBA{0xd0, 0x20, 0x20, 0xff}
	ColorOverlay  = color.RGBA{0x00, 0x00, 0x00, 0xa0}
	ColorFallback = color.RGBA{0xff, 0x00, 0xff, 0xff}
)

// SpriteInfo is the size of a sprite and the colour it is drawn with when its image
// is missing.
type SpriteInfo struct {
	W, H     int
	Fallback color.Color
}

// sprites is matched by id prefix, first match wins.
var sprites = []struct {
	prefix string
	info   SpriteInfo
}{
	{"player_", SpriteInfo{50, 50, color.RGBA{0x40, 0xc0, 0x40, 0xff}}},
	{"pickaxe_", SpriteInfo{25, 25, color.RGBA{0xa0, 0xa0, 0xa0, 0xff}}},
	{"slash_n_", SpriteInfo{50, 37, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}}},
	{"slash_s_", SpriteInfo{50, 37, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}}},
	{"slash_e_", SpriteInfo{37, 50, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}}},
	{"slash_w_", SpriteInfo{37, 50, color.RGBA{0xe0, 0xe0, 0xe0, 0xff}}},
	{"evil_rock", SpriteInfo{50, 50, color.RGBA{0x70, 0x70, 0x70, 0xff}}},
	{"bat_wings_", SpriteInfo{50, 50, color.RGBA{0x80, 0x40, 0xa0, 0xff}}},
	{"bat_wave_", SpriteInfo{15, 15, color.RGBA{0xc0, 0x80, 0xff, 0xff}}},
	{"golem_blast_", SpriteInfo{50, 50, color.RGBA{0xff, 0x80, 0x20, 0xff}}},
	{"golem_", SpriteInfo{100, 100, color.RGBA{0x90, 0x60, 0x30, 0xff}}},
	{"fireball_explosion", SpriteInfo{300, 300, color.RGBA{0xff, 0x60, 0x00, 0x80}}},
	{"fireball_", SpriteInfo{50, 50, color.RGBA{0xff, 0x40, 0x00, 0xff}}},
	{"wall", SpriteInfo{50, 50, color.RGBA{0x50, 0x48, 0x40, 0xff}}},
	{"minecart", SpriteInfo{50, 50, color.RGBA{0x60, 0x50, 0x30, 0xff}}},
	{"chest_", SpriteInfo{50, 50, color.RGBA{0xc0, 0x90, 0x20, 0xff}}},
	{"stairs", SpriteInfo{50, 50, color.RGBA{0x20, 0x20, 0x20, 0xff}}},
	{"item_", SpriteInfo{40, 40, color.RGBA{0x40, 0x80, 0xff, 0xff}}},
	{"heart_full", SpriteInfo{25, 25, color.RGBA{0xe0, 0x20, 0x40, 0xff}}},
	{"heart_empty", SpriteInfo{25, 25, color.RGBA{0x50, 0x20, 0x20, 0xff}}},
}

// Sprite returns the size and fallback colour of a sprite id. Unknown ids are one
// cell in ColorFallback.
func Sprite(id string) SpriteInfo {
	for _, s := range sprites {
		if strings.HasPrefix(id, s.prefix) {
			return s.info
		}
	}
	return SpriteInfo{50, 50, ColorFallback}
}
