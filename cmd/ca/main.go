//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rulescroll/internal/app"
	"rulescroll/internal/core"
	_ "rulescroll/internal/sims/elementary"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfgPath := flag.String("config", "", "optional YAML config file")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *cfgPath != "" {
		if err := cfg.LoadFile(*cfgPath); err != nil {
			log.Fatal(err)
		}
		// flags given on the command line win over the file
		flag.Visit(func(f *flag.Flag) { _ = flag.Set(f.Name, f.Value.String()) })
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("rulescroll — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
