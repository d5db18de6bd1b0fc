package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	engineinput "stonesnspells/pkg/engine/input"
	"stonesnspells/pkg/engine/terminal"
	"stonesnspells/pkg/game/config"
	"stonesnspells/pkg/game/gameplay"
	"stonesnspells/pkg/game/logging"
	"stonesnspells/pkg/game/renderer"
	ebitenrenderer "stonesnspells/pkg/game/renderer/ebiten"
	"stonesnspells/pkg/game/renderer/tui"
)

func initGettext(cfg config.Locale) {
	gotext.Configure(cfg.Dir, cfg.Lang, "default")
}

// runHeadless steps the session without input and prints the final frame as text.
func runHeadless(w *gameplay.World, ticks int) error {
	idle := engineinput.NewState()
	for i := 0; i < ticks; i++ {
		idle.SampleActions()
		w.Step(idle)
	}

	t := tui.New(terminal.IsTerminal(os.Stdout))
	renderer.DrawFrame(t, w.State())
	return t.Render(os.Stdout, terminal.Columns(os.Stdout))
}

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search for stonesnspells.yaml)")
	seed := flag.Int64("seed", 0, "session seed, overrides game.seed (0 keeps the configured seed)")
	dump := flag.Bool("dump", false, "run without a window and print the frame as text")
	ticks := flag.Int("ticks", 0, "ticks to simulate before printing with -dump")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stonesnspells: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	log, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stonesnspells: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	if cfg.Source != "" {
		log.WithField("file", cfg.Source).Debug("config loaded")
	}

	initGettext(cfg.Locale)

	w, err := gameplay.New(gameplay.Options{
		Seed:          cfg.Game.Seed,
		Chests:        cfg.Game.Chests,
		PlayerIFrames: cfg.Game.PlayerIFrames,
		DumpDir:       cfg.Dev.DumpDir,
	}, log)
	if err != nil {
		log.WithError(err).Fatal("cannot build session")
	}

	if *dump {
		if err := runHeadless(w, *ticks); err != nil {
			log.WithError(err).Fatal("headless dump failed")
		}
		return
	}

	win, err := ebitenrenderer.New(w, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("cannot create window")
	}
	if err := win.Run(cfg); err != nil {
		log.WithError(err).Error("game loop stopped")
		closer.Close()
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{"ticks": w.State().Ticks, "won": w.State().Won()}).Info("window closed")
}
