package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stonesnspells/pkg/game/renderer"
)

// DrawSprite draws the sprite scaled to its layout size, or a filled rectangle when
// the sprite has no image.
func (e *EbitenRenderer) DrawSprite(id string, x, y int) {
	if e.target == nil {
		return
	}
	info := renderer.Sprite(id)
	img := e.sprites.Get(id)
	if img == nil {
		e.DrawRect(x, y, info.W, info.H, info.Fallback)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(info.W)/float64(b.Dx()), float64(info.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	e.target.DrawImage(img, op)
}

// DrawRect fills a rectangle
func (e *EbitenRenderer) DrawRect(x, y, w, h int, c color.Color) {
	if e.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(e.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText draws s in white with its top-left corner at (x, y).
func (e *EbitenRenderer) DrawText(s string, x, y int, font renderer.Font) {
	if e.target == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(e.target, s, e.fonts.face(font), op)
}
