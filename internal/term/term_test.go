package term

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/ctxlog"
	"lifegrid/internal/universe"
	"lifegrid/pkg/life"
)

func newHost(t *testing.T, layout string, opts Options) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	sim, err := universe.New(universe.Options{
		Width: 8, Height: 8, Layout: layout, Seed: 3,
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)
	return New(screen, sim, opts), screen
}

func runeAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	runes := cells[y*w+x].Runes
	require.NotEmpty(t, runes, "no content at (%d,%d)", x, y)
	return runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		if r := cells[y*w+x].Runes; len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}

func TestDrawRendersGridAndStatus(t *testing.T) {
	h, screen := newHost(t, universe.LayoutGlider, Options{Paused: true})
	h.draw()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := h.sim.Grid().At(row, col).Glyph()
			require.Equal(t, want, runeAt(t, screen, col, row), "cell (%d,%d)", row, col)
		}
	}
	require.Equal(t, life.Alive.Glyph(), runeAt(t, screen, 2, 1))
	status := rowText(screen, 8)
	require.Contains(t, status, "life 8x8")
	require.Contains(t, status, "gen 0")
	require.Contains(t, status, "[paused]")
}

func TestHandleKeys(t *testing.T) {
	h, _ := newHost(t, universe.LayoutGlider, Options{})

	require.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	require.Equal(t, 1, h.sim.Generation())

	require.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)))
	require.True(t, h.paused)

	require.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone)))
	require.Zero(t, h.sim.Population())

	require.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	require.Equal(t, universe.LayoutRandom, h.sim.Layout())
	require.Greater(t, h.sim.Population(), len(life.Glider))
	require.Equal(t, int64(3), h.sim.Seed())
	seeded := h.sim.Snapshot()

	require.False(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)))
	require.NotEqual(t, int64(3), h.sim.Seed())
	require.NotEqual(t, seeded, h.sim.Snapshot())

	require.True(t, h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	require.True(t, h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestHandleMouseTogglesOncePerPress(t *testing.T) {
	h, _ := newHost(t, universe.LayoutEmpty, Options{})

	h.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	require.Equal(t, life.Alive, h.sim.Grid().At(2, 3))

	// Held button reports more events; the cell must not flip back.
	h.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	require.Equal(t, life.Alive, h.sim.Grid().At(2, 3))

	h.handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	require.Equal(t, life.Dead, h.sim.Grid().At(2, 3))

	// Clicks on the status line or right of the grid are ignored.
	h.handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(3, 8, tcell.Button1, tcell.ModNone))
	h.handle(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(20, 2, tcell.Button1, tcell.ModNone))
	require.Zero(t, h.sim.Population())
}

func TestRunQuitsOnKey(t *testing.T) {
	h, screen := newHost(t, universe.LayoutGlider, Options{Rate: 1000})
	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, h.Run(ctx))
	require.Contains(t, logs.String(), "terminal host stopped")
}

func TestRunStopsOnCancel(t *testing.T) {
	h, _ := newHost(t, universe.LayoutGlider, Options{Rate: 1000})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := h.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Positive(t, h.sim.Generation())
}
