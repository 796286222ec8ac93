// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
//
// A Grid has a single owner. None of its methods are safe for concurrent use.
package life

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unsafe"
)

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("life: width and height must be positive")
	// ErrOutOfBounds is returned when coordinates fall outside the grid.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)

// Source supplies uniformly distributed values in [0, 1). Both *rand.Rand
// and *core.RNG satisfy it.
type Source interface {
	Float64() float64
}

// Grid is a Life board with toroidal wrapping, stored row-major.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns a grid where each cell is alive with probability 0.5, with the
// glider seeded on top.
func New(w, h int, src Source) (*Grid, error) {
	g, err := NewEmpty(w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.cur {
		if src.Float64() < 0.5 {
			g.cur[i] = Alive
		}
	}
	if err := g.Place(Glider); err != nil {
		return nil, err
	}
	return g, nil
}

// NewEmpty returns a grid with every cell dead.
func NewEmpty(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new %dx%d grid: %w", w, h, ErrInvalidSize)
	}
	n := w * h
	return &Grid{w: w, h: h, cur: make([]Cell, n), nxt: make([]Cell, n)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Index returns the linear slice index for (row, col). It does not validate
// its arguments.
func (g *Grid) Index(row, col int) int { return row*g.w + col }

// Contains reports whether (row, col) lies inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) mustContain(op string, row, col int) {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("life: %s(%d, %d) outside %dx%d grid", op, row, col, g.w, g.h))
	}
}

// At returns the state of a cell. It panics if the coordinates are out of range.
func (g *Grid) At(row, col int) Cell {
	g.mustContain("At", row, col)
	return g.cur[g.Index(row, col)]
}

// LiveNeighbors counts alive cells in the Moore neighborhood of (row, col),
// wrapping at the edges. Adding size-1 instead of subtracting one keeps the
// modulo operands non-negative.
func (g *Grid) LiveNeighbors(row, col int) int {
	g.mustContain("LiveNeighbors", row, col)
	return g.liveNeighbors(row, col)
}

func (g *Grid) liveNeighbors(row, col int) int {
	count := 0
	for _, dr := range [3]int{g.h - 1, 0, 1} {
		for _, dc := range [3]int{g.w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % g.h
			c := (col + dc) % g.w
			count += int(g.cur[g.Index(r, c)])
		}
	}
	return count
}

// Tick advances the grid by one generation. Every cell is computed from the
// previous generation before the buffers are swapped.
func (g *Grid) Tick() {
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := g.Index(row, col)
			g.nxt[idx] = next(g.cur[idx], g.liveNeighbors(row, col))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// ToggleCell flips a single cell between dead and alive.
func (g *Grid) ToggleCell(row, col int) error {
	if !g.Contains(row, col) {
		return fmt.Errorf("toggle (%d, %d) on %dx%d grid: %w", row, col, g.w, g.h, ErrOutOfBounds)
	}
	idx := g.Index(row, col)
	g.cur[idx] = g.cur[idx].Toggled()
	return nil
}

// Population returns the number of alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c)
	}
	return n
}

// Cells exposes the current generation without copying. The slice must be
// treated as read-only and is invalidated by the next Tick or ToggleCell.
func (g *Grid) Cells() []Cell { return g.cur }

// Bytes is Cells reinterpreted as bytes, one per cell in row-major order,
// with the same lifetime rules.
func (g *Grid) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&g.cur[0])), len(g.cur))
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, cur: make([]Cell, len(g.cur)), nxt: make([]Cell, len(g.nxt))}
	copy(c.cur, g.cur)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.w == o.w && g.h == o.h && slices.Equal(g.cur, o.cur)
}

// String renders one line per row, terminating each row with a newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.h * (g.w*len(string(aliveGlyph)) + 1))
	for row := 0; row < g.h; row++ {
		for _, c := range g.cur[row*g.w : (row+1)*g.w] {
			b.WriteRune(c.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
