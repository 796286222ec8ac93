package universe

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

func newTestUniverse(t *testing.T, opts Options) *Universe {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	}
	u, err := New(opts)
	require.NoError(t, err)
	return u
}

var _ core.Sim = (*Universe)(nil)
var _ core.Toggler = (*Universe)(nil)
var _ core.ParameterProvider = (*Universe)(nil)

func TestNewRandomIsReproducible(t *testing.T) {
	a := newTestUniverse(t, Options{Width: 20, Height: 12, Seed: 42})
	b := newTestUniverse(t, Options{Width: 20, Height: 12, Seed: 42})

	require.Equal(t, LayoutRandom, a.Layout())
	require.Equal(t, int64(42), a.Seed())
	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Fatalf("same seed produced different universes (-a +b):\n%s", diff)
	}
	for _, c := range life.Glider {
		require.Equal(t, life.Alive, a.Grid().At(c.Row, c.Col), "glider cell %v", c)
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Width: 0, Height: 4, Layout: LayoutEmpty})
	require.ErrorIs(t, err, life.ErrInvalidSize)

	_, err = New(Options{Width: 4, Height: 4, Layout: "spiral"})
	require.ErrorIs(t, err, core.ErrUnknownLayout)

	_, err = New(Options{Width: 3, Height: 3, Layout: LayoutGlider})
	require.ErrorIs(t, err, life.ErrOutOfBounds)
}

func TestZeroSeedPicksClockSeed(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 8, Height: 8, Layout: LayoutEmpty})
	require.NotZero(t, u.Seed())
}

func TestStepCountsGenerations(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 8, Height: 8, Layout: LayoutGlider, Seed: 1})
	start := u.Grid().Clone()

	u.Advance(4)
	require.Equal(t, 4, u.Generation())
	require.Equal(t, len(life.Glider), u.Population())
	require.False(t, u.Grid().Equal(start))

	u.Advance(28)
	require.True(t, u.Grid().Equal(start), "glider should wrap back after 32 generations:\n%s", u.Snapshot())
}

func TestCellsIsRowMajorView(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 6, Height: 4, Layout: LayoutEmpty, Seed: 1})
	require.NoError(t, u.Toggle(2, 5))

	cells := u.Cells()
	require.Len(t, cells, 24)
	for i, c := range cells {
		want := uint8(0)
		if i == 2*6+5 {
			want = 1
		}
		require.Equal(t, want, c, "cell %d", i)
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 5, Height: 5, Layout: LayoutEmpty, Seed: 1})
	err := u.Toggle(5, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, life.ErrOutOfBounds))
	require.Zero(t, u.Population())
}

func TestResetAndClear(t *testing.T) {
	var logs bytes.Buffer
	u := newTestUniverse(t, Options{
		Width: 16, Height: 16, Seed: 9,
		Logger: slog.New(slog.NewTextHandler(&logs, nil)),
	})
	first := u.Snapshot()
	u.Advance(3)

	u.Reset(9)
	require.Equal(t, 0, u.Generation())
	require.Equal(t, first, u.Snapshot())

	u.Reset(10)
	require.Equal(t, int64(10), u.Seed())
	require.NotEqual(t, first, u.Snapshot())

	u.Clear()
	require.Zero(t, u.Population())
	require.Equal(t, LayoutEmpty, u.Layout())
	u.Advance(5)
	require.Zero(t, u.Population())

	require.Contains(t, logs.String(), "universe reset")
	require.Contains(t, logs.String(), "universe cleared")
}

func TestResetRandomizesNonRandomLayouts(t *testing.T) {
	for _, layout := range []string{LayoutEmpty, LayoutGlider} {
		u := newTestUniverse(t, Options{Width: 16, Height: 16, Layout: layout, Seed: 4})
		require.Equal(t, layout, u.Layout())

		u.Reset(4)
		require.Equal(t, LayoutRandom, u.Layout(), layout)
		require.Greater(t, u.Population(), len(life.Glider), "reset from %s left no random cells", layout)
		first := u.Snapshot()

		u.Reset(5)
		require.NotEqual(t, first, u.Snapshot(), "fresh seed from %s did not change the grid", layout)

		u.Clear()
		u.Reset(4)
		require.Equal(t, first, u.Snapshot(), "same seed from %s is not reproducible", layout)
	}
}

func TestParameters(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 8, Height: 6, Layout: LayoutGlider, Seed: 5})
	u.Step()

	snap := u.Parameters()
	for key, want := range map[string]string{
		"w": "8", "h": "6", "layout": "glider", "seed": "5",
		"generation": "1", "population": "5",
	} {
		p, ok := snap.Lookup(key)
		require.True(t, ok, key)
		require.Equal(t, want, p.Value, key)
	}
}

func TestSnapshotShape(t *testing.T) {
	u := newTestUniverse(t, Options{Width: 7, Height: 3, Seed: 2, Layout: LayoutEmpty})
	lines := strings.Split(strings.TrimSuffix(u.Snapshot(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Equal(t, strings.Repeat("◻", 7), line)
	}
}
