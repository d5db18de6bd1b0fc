// Package ebiten runs the game in a window: it polls the keyboard and gamepads once per
// tick, steps the simulation and paints each frame through the renderer package.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	engineinput "stonesnspells/pkg/engine/input"
	"stonesnspells/pkg/game/config"
	"stonesnspells/pkg/game/renderer"
	"stonesnspells/pkg/game/state"
)

// WindowTitle is shown in the title bar
const WindowTitle = "Stones n Spells"

// Simulation is the session the window drives.
type Simulation interface {
	// Step advances the session by one tick.
	Step(src engineinput.Source)
	// State returns the session to draw.
	State() *state.Game
}

// EbitenRenderer implements ebiten.Game and renderer.Renderer.
type EbitenRenderer struct {
	sim     Simulation
	input   *engineinput.State
	sprites *spriteCache
	fonts   *fontSet
	log     logrus.FieldLogger

	// target is the image being drawn during Draw, nil otherwise.
	target *ebiten.Image

	windowOpenedLogged bool
}

// New creates the windowed backend for sim. Sprites are read from cfg.Assets.Dir.
func New(sim Simulation, cfg *config.Config, log logrus.FieldLogger) (*EbitenRenderer, error) {
	sprites, err := newSpriteCache(cfg.Assets.Dir, log)
	if err != nil {
		return nil, err
	}
	fonts, err := newFontSet()
	if err != nil {
		sprites.Close()
		return nil, err
	}
	return &EbitenRenderer{
		sim:     sim,
		input:   engineinput.NewState(),
		sprites: sprites,
		fonts:   fonts,
		log:     log,
	}, nil
}

// Update samples input and steps the simulation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}
	e.input.Sample(pollInputs())
	e.sim.Step(e.input)
	return nil
}

// Draw paints the current frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	e.target = screen
	renderer.DrawFrame(e, e.sim.State())
	e.target = nil
}

// Layout returns the fixed logical screen; Ebiten scales it to the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return renderer.ScreenWidth, renderer.ScreenHeight
}

// Run opens the window and blocks until it is closed.
func (e *EbitenRenderer) Run(cfg *config.Config) error {
	defer e.sprites.Close()

	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowSize(int(float64(cfg.Window.Width)*cfg.Window.Scale), int(float64(cfg.Window.Height)*cfg.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.TPS)

	e.log.WithField("tps", cfg.Game.TPS).Debug("starting game loop")
	return ebiten.RunGame(e)
}
