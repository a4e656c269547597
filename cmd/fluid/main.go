//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"fluid-ca/internal/app"
	"fluid-ca/internal/core"
	_ "fluid-ca/internal/sims/fluid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.Options)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Fluid — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Printf("running %s: %dx%d cells at %d ticks/s", sim.Name(), sim.Size().W, sim.Size().H, cfg.SimTPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
