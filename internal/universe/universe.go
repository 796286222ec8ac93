// Package universe wraps a life.Grid with the state a host needs to drive it:
// the layout it was last built from, the seed, and a generation counter.
package universe

import (
	"fmt"
	"log/slog"

	"lifegrid/internal/core"
	pkgcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// Name identifies the simulation to hosts.
const Name = "life"

// Options configures a Universe.
type Options struct {
	Width  int
	Height int
	// Layout names a registered core.Layout. Defaults to LayoutRandom.
	Layout string
	// Seed feeds the randomness source. Zero picks a clock-derived seed.
	Seed   int64
	Logger *slog.Logger
}

// Universe is the host-facing handle on a grid. Like the grid it wraps, it
// has a single owner and is not safe for concurrent use.
type Universe struct {
	w, h       int
	layoutName string
	rng        *pkgcore.RNG
	grid       *life.Grid
	generation int
	log        *slog.Logger
}

// New builds a universe using the configured layout.
func New(opts Options) (*Universe, error) {
	if opts.Layout == "" {
		opts.Layout = LayoutRandom
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	u := &Universe{
		w:   opts.Width,
		h:   opts.Height,
		log: logger.With("sim", Name),
	}
	if err := u.rebuild(opts.Layout, opts.Seed); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Universe) rebuild(name string, seed int64) error {
	layout, err := core.LookupLayout(name)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = pkgcore.ClockSeed()
	}
	rng := pkgcore.NewRNG(seed)
	grid, err := layout(u.w, u.h, rng)
	if err != nil {
		return fmt.Errorf("build %q universe: %w", name, err)
	}
	u.layoutName = name
	u.rng = rng
	u.grid = grid
	u.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return Name }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Reset replaces the grid with a randomized one seeded with the glider,
// whatever layout the universe started from. A zero seed picks a
// clock-derived one.
func (u *Universe) Reset(seed int64) {
	if err := u.rebuild(LayoutRandom, seed); err != nil {
		u.log.Error("reset failed", "err", err)
		return
	}
	u.log.Info("universe reset", "layout", u.layoutName, "seed", u.rng.Seed())
}

// Clear replaces the grid with an empty one of the same size.
func (u *Universe) Clear() {
	grid, err := life.NewEmpty(u.w, u.h)
	if err != nil {
		u.log.Error("clear failed", "err", err)
		return
	}
	u.grid = grid
	u.layoutName = LayoutEmpty
	u.generation = 0
	u.log.Info("universe cleared")
}

// Step advances one generation.
func (u *Universe) Step() {
	u.grid.Tick()
	u.generation++
}

// Advance runs n generations.
func (u *Universe) Advance(n int) {
	for i := 0; i < n; i++ {
		u.Step()
	}
}

// Toggle flips the cell at (row, col).
func (u *Universe) Toggle(row, col int) error {
	if err := u.grid.ToggleCell(row, col); err != nil {
		return err
	}
	u.log.Debug("cell toggled", "row", row, "col", col, "state", u.grid.At(row, col))
	return nil
}

// Cells exposes the raw cell bytes in row-major order. The slice is borrowed:
// it must not be modified and is invalid after the next Step, Toggle, Reset
// or Clear.
func (u *Universe) Cells() []uint8 { return u.grid.Bytes() }

// Snapshot renders the current generation as text.
func (u *Universe) Snapshot() string { return u.grid.String() }

// Grid returns the underlying grid.
func (u *Universe) Grid() *life.Grid { return u.grid }

// Generation returns the number of steps since the last reset or clear.
func (u *Universe) Generation() int { return u.generation }

// Population returns the number of alive cells.
func (u *Universe) Population() int { return u.grid.Population() }

// Seed returns the seed of the current randomness source.
func (u *Universe) Seed() int64 { return u.rng.Seed() }

// Layout returns the name of the layout the current grid was built from.
func (u *Universe) Layout() string { return u.layoutName }

// Parameters reports the universe status for HUDs.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", u.w),
				core.IntParam("h", "Height", u.h),
				core.StringParam("layout", "Layout", u.layoutName),
				core.Int64Param("seed", "Seed", u.rng.Seed()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", u.generation),
				core.IntParam("population", "Population", u.Population()),
			},
		},
	}}
}
