package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/term"
	"lifegrid/internal/universe"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args and either prints a snapshot after -print generations or
// starts the interactive terminal UI.
func run(stdout io.Writer, args []string) error {
	fs := flag.NewFlagSet("lifeterm", flag.ContinueOnError)
	printGens := fs.Int("print", -1, "advance N generations, print the grid and exit")
	cfg, err := app.Load(fs, args)
	if err != nil {
		return err
	}
	interactive := *printGens < 0

	// The screen owns the terminal while the UI runs, so logs are held
	// until it is released.
	var held bytes.Buffer
	var logOut io.Writer = os.Stderr
	if interactive {
		logOut = &held
		defer io.Copy(os.Stderr, &held)
	}
	logger := cfg.NewLogger(logOut)

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

	if !interactive {
		sim.Advance(*printGens)
		_, err := io.WriteString(stdout, sim.Snapshot())
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	host := term.New(screen, sim, term.Options{Rate: cfg.Rate, Paused: cfg.Paused})
	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
