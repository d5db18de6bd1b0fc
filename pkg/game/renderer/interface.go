package renderer

import "image/color"

// Font selects the face text is drawn with
type Font int

const (
	FontBody Font = iota
	FontTitle
	FontHUD
)

// Renderer is the drawing surface a frame is painted onto.
// Backends include the Ebiten window and the terminal grid.
type Renderer interface {
	// DrawSprite draws the sprite with the given id with its top-left corner at (x, y).
	// Unknown ids are drawn as a placeholder rectangle.
	DrawSprite(id string, x, y int)

	// DrawRect fills a rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y int, font Font)
}
