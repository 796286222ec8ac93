// Package term drives a universe in a terminal using tcell. Each cell takes
// one column; the status line sits below the grid.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/ui"
	"lifegrid/internal/universe"
	pkgcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Options controls the terminal loop.
type Options struct {
	// Rate is the number of generations per second while running.
	Rate   int
	Paused bool
}

// Host owns the screen loop. Only the Run goroutine touches the universe.
type Host struct {
	screen   tcell.Screen
	sim      *universe.Universe
	interval time.Duration
	paused   bool
	pressed  bool
	seed     int64
}

// New returns a Host for an initialized screen.
func New(screen tcell.Screen, sim *universe.Universe, opts Options) *Host {
	rate := opts.Rate
	if rate <= 0 {
		rate = core.DefaultRate
	}
	return &Host{
		screen:   screen,
		sim:      sim,
		interval: time.Second / time.Duration(rate),
		paused:   opts.Paused,
		seed:     sim.Seed(),
	}
}

// Run draws and advances the universe until the user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	h.screen.EnableMouse()
	defer h.screen.DisableMouse()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go h.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	log.Info("terminal host started", "interval", h.interval, "paused", h.paused)
	h.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handle(ev) {
				log.Info("terminal host stopped", "generation", h.sim.Generation())
				return nil
			}
		case <-ticker.C:
			if h.paused {
				continue
			}
			h.sim.Step()
		}
		h.draw()
	}
}

// handle applies one input event and reports whether the loop should exit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			x, y := ev.Position()
			size := h.sim.Size()
			if y < size.H && x < size.W {
				// Coordinates are inside the grid, so Toggle cannot fail.
				_ = h.sim.Toggle(y, x)
			}
		}
		h.pressed = down
	}
	return false
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case ' ':
		h.paused = !h.paused
	case 'n':
		h.sim.Step()
	case 'r':
		h.sim.Reset(h.seed)
	case 's':
		h.seed = pkgcore.ClockSeed()
		h.sim.Reset(h.seed)
	case 'e':
		h.sim.Clear()
	}
	return false
}

func (h *Host) draw() {
	h.screen.Clear()
	size := h.sim.Size()
	cells := h.sim.Cells()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			c := life.Cell(cells[row*size.W+col])
			style := deadStyle
			if c == life.Alive {
				style = aliveStyle
			}
			h.screen.SetContent(col, row, c.Glyph(), nil, style)
		}
	}
	for i, r := range []rune(ui.StatusLine(h.sim, h.paused)) {
		h.screen.SetContent(i, size.H, r, nil, statusStyle)
	}
	h.screen.Show()
}
