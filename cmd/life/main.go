//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/universe"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := app.Load(flag.NewFlagSet("life", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(os.Stderr)

	sim, err := universe.New(universe.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Layout: cfg.Layout,
		Seed:   cfg.Seed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "w", cfg.Width, "h", cfg.Height, "layout", cfg.Layout, "seed", sim.Seed())

	game := app.New(sim, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("life — %dx%d", cfg.Width, cfg.Height))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
