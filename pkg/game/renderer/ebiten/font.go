package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"stonesnspells/pkg/game/renderer"
)

// Font sizes in logical pixels
const (
	bodyFontSize  = 16
	titleFontSize = 36
	hudFontSize   = 18
)

type fontSet struct {
	faces map[renderer.Font]*text.GoTextFace
}

func newFontSet() (*fontSet, error) {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load sans font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono font: %w", err)
	}
	return &fontSet{faces: map[renderer.Font]*text.GoTextFace{
		renderer.FontBody:  {Source: sans, Size: bodyFontSize},
		renderer.FontTitle: {Source: bold, Size: titleFontSize},
		renderer.FontHUD:   {Source: mono, Size: hudFontSize},
	}}, nil
}

// face returns the face for f, falling back to the body face.
func (s *fontSet) face(f renderer.Font) *text.GoTextFace {
	if face, ok := s.faces[f]; ok {
		return face
	}
	return s.faces[renderer.FontBody]
}
