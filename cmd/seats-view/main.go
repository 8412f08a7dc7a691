//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seat-ca/internal/app"
	"seat-ca/internal/automaton"
	"seat-ca/internal/config"
	"seat-ca/internal/core"
	"seat-ca/internal/logging"
	"seat-ca/internal/textio"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig(nil)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	base, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Apply(base, flag.CommandLine)
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.Layout == "" {
		log.Fatal("a layout file is required (-layout)")
	}

	lines, err := textio.ReadFile(cfg.Layout)
	if err != nil {
		log.Fatal(err)
	}
	grid, err := core.Load(lines)
	if err != nil {
		log.Fatalf("loading layout: %v", err)
	}

	strategy, err := base.Simulation.ParsedStrategy()
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.NewLogger(base.Logging.Level, log.Writer())
	engine, err := automaton.New(strategy, base.Simulation.EffectiveThreshold(),
		automaton.WithWorkers(base.Simulation.Workers),
		automaton.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	sim := automaton.NewSeating(engine, grid)
	game := app.New(sim, base.Display.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("seats: " + sim.Name())
	ebiten.SetTPS(base.Display.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
