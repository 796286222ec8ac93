package life

import "fmt"

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Pattern is a set of absolute coordinates that should be set alive.
type Pattern []Coord

// Glider is the five-cell spaceship seeded into randomized grids. It travels
// one row down and one column right every four generations.
var Glider = Pattern{
	{Row: 1, Col: 2},
	{Row: 2, Col: 3},
	{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
}

// Fits reports whether every coordinate lies inside a w*h grid.
func (p Pattern) Fits(w, h int) bool {
	for _, c := range p {
		if c.Row < 0 || c.Row >= h || c.Col < 0 || c.Col >= w {
			return false
		}
	}
	return true
}

// Place sets every cell of the pattern alive. The grid is left untouched when
// any coordinate is out of range.
func (g *Grid) Place(p Pattern) error {
	if !p.Fits(g.w, g.h) {
		return fmt.Errorf("place pattern on %dx%d grid: %w", g.w, g.h, ErrOutOfBounds)
	}
	for _, c := range p {
		g.cur[g.Index(c.Row, c.Col)] = Alive
	}
	return nil
}
